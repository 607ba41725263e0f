package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vyops/vyops/pkg/audit"
	"github.com/vyops/vyops/pkg/cli"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the change audit trail",
}

var auditSince string

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded change events",
	Long: `List audit events, newest last. -d restricts to one device;
--since accepts a duration like 24h or 30m.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := audit.NewFileLogger("")
		if err != nil {
			return err
		}
		defer logger.Close()

		filter := audit.Filter{Device: deviceName}
		if auditSince != "" {
			d, err := time.ParseDuration(auditSince)
			if err != nil {
				return fmt.Errorf("invalid --since duration: %w", err)
			}
			filter.Since = time.Now().Add(-d)
		}

		events, err := logger.Query(filter)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(events)
		}

		t := cli.NewTable("TIME", "DEVICE", "USER", "OPERATION", "STMTS", "RESULT")
		for _, e := range events {
			result := cli.Green("ok")
			if !e.Success {
				result = cli.Red("failed")
				if e.RolledBack {
					result = cli.Yellow("rolled back")
				}
			}
			t.Row(
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Device,
				e.User,
				e.Operation,
				fmt.Sprintf("%d", len(e.Statements)),
				result,
			)
		}
		t.Flush()
		return nil
	},
}

func init() {
	auditListCmd.Flags().StringVar(&auditSince, "since", "", "Only events newer than this duration (e.g. 24h)")
	auditCmd.AddCommand(auditListCmd)
	rootCmd.AddCommand(auditCmd)
}
