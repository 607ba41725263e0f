package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vyops/vyops/pkg/backup"
	"github.com/vyops/vyops/pkg/cli"
	"github.com/vyops/vyops/pkg/device"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage configuration backups",
}

var backupNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Take a configuration backup immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := requireDevice()
		if err != nil {
			return err
		}
		client, err := device.Dial(dev.Profile)
		if err != nil {
			return err
		}
		defer client.Close()

		dump, err := client.ShowConfigurationCommands()
		if err != nil {
			return err
		}
		sink := dev.Sink
		if sink == nil {
			sink = backup.NewFileSink(userSettings.BackupDir)
		}
		ref, err := sink.Store(context.Background(), dev.Profile.Name, dump)
		if err != nil {
			return err
		}
		fmt.Printf("Backup stored at %s\n", cli.Bold(ref))
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List file backups for the device",
	RunE: func(cmd *cobra.Command, args []string) error {
		if deviceName == "" {
			return fmt.Errorf("no device selected: use -d <device>")
		}
		dir := filepath.Join(backup.NewFileSink(userSettings.BackupDir).Dir, deviceName)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No backups")
				return nil
			}
			return err
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
		for _, n := range names {
			fmt.Println(filepath.Join(dir, n))
		}
		return nil
	},
}

var backupLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the most recent Redis backup for the device",
	RunE: func(cmd *cobra.Command, args []string) error {
		if deviceName == "" {
			return fmt.Errorf("no device selected: use -d <device>")
		}
		if userSettings.RedisAddr == "" {
			return fmt.Errorf("no redis_addr configured in settings")
		}
		sink := backup.NewRedisSink(userSettings.RedisAddr, "", 0)
		defer sink.Close()
		dump, err := sink.Latest(context.Background(), deviceName)
		if err != nil {
			return err
		}
		fmt.Print(dump)
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupNowCmd, backupListCmd, backupLatestCmd)
	rootCmd.AddCommand(backupCmd)
}
