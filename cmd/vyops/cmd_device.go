package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vyops/vyops/pkg/cli"
	"github.com/vyops/vyops/pkg/device"
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Manage device profiles",
}

var (
	devHost     string
	devPort     int
	devUsername string
	devKeyFile  string
	devPassword string
)

var deviceAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or update a device profile",
	Long: `Store a device profile in the device file. With neither --key-file
nor --password the password is prompted for without echo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profileStore()
		if err != nil {
			return err
		}
		profile := device.Profile{
			Name:     args[0],
			Host:     devHost,
			Port:     devPort,
			Username: devUsername,
			Password: devPassword,
			KeyFile:  devKeyFile,
		}
		if profile.Host == "" {
			profile.Host = args[0]
		}
		if profile.Password == "" && profile.KeyFile == "" {
			pw, err := promptPassword(fmt.Sprintf("Password for %s@%s: ", profile.Username, profile.Host))
			if err != nil {
				return err
			}
			profile.Password = pw
		}
		store.Put(profile)
		if err := store.Save(); err != nil {
			return err
		}
		fmt.Printf("Saved profile %s\n", cli.Bold(profile.Name))
		return nil
	},
}

var deviceRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a device profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profileStore()
		if err != nil {
			return err
		}
		if err := store.Remove(args[0]); err != nil {
			return err
		}
		return store.Save()
	},
}

var deviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List device profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profileStore()
		if err != nil {
			return err
		}
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(store.Profiles)
		}
		t := cli.NewTable("NAME", "ADDRESS", "USER", "AUTH")
		for _, p := range store.Profiles {
			auth := "password"
			if p.KeyFile != "" {
				auth = "key"
			}
			t.Row(p.Name, p.Addr(), p.Username, auth)
		}
		t.Flush()
		return nil
	},
}

var deviceShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one device profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := profileStore()
		if err != nil {
			return err
		}
		p, err := store.Get(args[0])
		if err != nil {
			return err
		}
		t := cli.NewTable("KEY", "VALUE")
		t.Row("name", p.Name)
		t.Row("address", p.Addr())
		t.Row("username", p.Username)
		if p.KeyFile != "" {
			t.Row("key-file", p.KeyFile)
		} else if p.Password != "" {
			t.Row("password", "(set)")
		}
		t.Flush()
		return nil
	},
}

var deviceVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the remote device's software version",
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
		out, err := client.ShowVersion()
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func init() {
	f := deviceAddCmd.Flags()
	f.StringVar(&devHost, "host", "", "device address (defaults to the profile name)")
	f.IntVar(&devPort, "port", 0, "SSH port (default 22)")
	f.StringVarP(&devUsername, "username", "u", "vyos", "SSH username")
	f.StringVar(&devKeyFile, "key-file", "", "SSH private key file")
	f.StringVar(&devPassword, "password", "", "SSH password (prompted if omitted)")

	deviceCmd.AddCommand(deviceAddCmd, deviceRemoveCmd, deviceListCmd, deviceShowCmd, deviceVersionCmd)
	rootCmd.AddCommand(deviceCmd)
}
