// Vyops - VyOS/EdgeOS Configuration Tool
//
// A CLI for managing VyOS-family routers over SSH:
//   - Structured models rendered to canonical set/delete statements
//   - Transactional apply with commit, save, and automatic rollback
//   - Dry-run by default (preview statements, require -x to execute)
//   - Pre-change configuration backup and audit logging
//
// Context flags select the device; commands act on it:
//
//	vyops -d <device> <command> [args] [-x]
//
// Examples:
//
//	vyops device add edge1 --host 192.0.2.1 -u admin
//	vyops -d edge1 show interfaces
//	vyops -d edge1 interface set eth1 --description "LAN Interface" -a 192.168.1.1/24 -x
//	vyops -d edge1 apply change.yaml -x
//	vyops -d edge1 backup now
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vyops/vyops/pkg/audit"
	"github.com/vyops/vyops/pkg/backup"
	"github.com/vyops/vyops/pkg/command"
	"github.com/vyops/vyops/pkg/device"
	"github.com/vyops/vyops/pkg/session"
	"github.com/vyops/vyops/pkg/settings"
	"github.com/vyops/vyops/pkg/util"
)

var (
	// Context flags
	deviceName string // -d, --device

	// Option flags
	executeMode bool // -x
	saveMode    bool // -s
	noBackup    bool
	metricsMode bool
	timeoutSec  int
	verbose     bool
	jsonOutput  bool
	logJSON     bool

	// Global state
	userSettings *settings.Settings
	executor     = session.New()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "vyops",
	Short:             "VyOS/EdgeOS Configuration Tool",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Vyops manages VyOS-family routers through their configuration CLI.

The -d flag selects the device. Write commands preview their statements
by default; use -x to execute (commit) and -xs to also save.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if saveMode && !executeMode {
			return fmt.Errorf("--save (-s) requires --execute (-x): use -xs to execute and save")
		}

		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		if deviceName == "" {
			deviceName = userSettings.DefaultDevice
		}

		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}
		if logJSON {
			util.SetJSONFormat()
		}

		if userSettings.MarkerFile != "" {
			det, err := session.LoadDetector(userSettings.MarkerFile)
			if err != nil {
				return fmt.Errorf("loading marker config: %w", err)
			}
			executor.Detector = det
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&deviceName, "device", "d", "", "Device name (object selector)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "JSON log format")

	for _, cmd := range []*cobra.Command{interfaceSetCmd, routeSetCmd, applyCmd} {
		addWriteFlags(cmd)
	}
	for _, cmd := range []*cobra.Command{showCmd, deviceListCmd, auditListCmd} {
		cmd.Flags().BoolVar(&jsonOutput, "json", false, "JSON output")
	}
}

func addWriteFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&executeMode, "execute", "x", false, "Execute (commit) instead of previewing")
	cmd.Flags().BoolVarP(&saveMode, "save", "s", false, "Save configuration after commit")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip the pre-change backup")
	cmd.Flags().BoolVar(&metricsMode, "metrics", false, "Dump session metrics after execution")
	cmd.Flags().IntVar(&timeoutSec, "timeout", 0, "Session timeout in seconds")
}

// profileStore loads the device profile store from the configured path.
func profileStore() (*device.Store, error) {
	path := userSettings.DeviceFile
	if path == "" {
		path = device.DefaultStorePath()
	}
	return device.LoadStore(path)
}

// requireDevice resolves -d into a fully wired Device.
func requireDevice() (*device.Device, error) {
	if deviceName == "" {
		return nil, fmt.Errorf("no device selected: use -d <device> or set a default with 'vyops settings set device <name>'")
	}
	store, err := profileStore()
	if err != nil {
		return nil, err
	}
	profile, err := store.Get(deviceName)
	if err != nil {
		return nil, err
	}

	d := &device.Device{Profile: profile, Executor: executor}
	if !noBackup {
		if userSettings.RedisAddr != "" {
			d.Sink = backup.NewRedisSink(userSettings.RedisAddr, "", 0)
		} else {
			d.Sink = backup.NewFileSink(userSettings.BackupDir)
		}
	}
	if logger, err := audit.NewFileLogger(""); err != nil {
		util.Warnf("Could not initialize audit logging: %v", err)
	} else {
		d.Audit = logger
	}
	return d, nil
}

// newBatch wraps built statements with the execution options from flags.
func newBatch(stmts []command.Statement) *session.Batch {
	b := &session.Batch{
		Statements: command.Strings(stmts),
		Commit:     true,
		Save:       saveMode,
	}
	if timeoutSec > 0 {
		b.Timeout = time.Duration(timeoutSec) * time.Second
	}
	return b
}

// preview prints the statements a write command would execute.
func preview(stmts []command.Statement) {
	fmt.Println("Statements (preview, use -x to execute):")
	for _, s := range stmts {
		fmt.Printf("  %s\n", s)
	}
}
