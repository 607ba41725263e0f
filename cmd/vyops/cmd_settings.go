package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vyops/vyops/pkg/cli"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent CLI settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := cli.NewTable("KEY", "VALUE")
		t.Row("device", userSettings.DefaultDevice)
		t.Row("device-file", userSettings.DeviceFile)
		t.Row("backup-dir", userSettings.BackupDir)
		t.Row("marker-file", userSettings.MarkerFile)
		t.Row("redis-addr", userSettings.RedisAddr)
		t.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a settings key",
	Long: `Keys: device, device-file, backup-dir, marker-file, redis-addr.
An empty value clears the key.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "device":
			userSettings.DefaultDevice = value
		case "device-file":
			userSettings.DeviceFile = value
		case "backup-dir":
			userSettings.BackupDir = value
		case "marker-file":
			userSettings.MarkerFile = value
		case "redis-addr":
			userSettings.RedisAddr = value
		default:
			return fmt.Errorf("unknown settings key %q", key)
		}
		return userSettings.Save()
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
