package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vyops/vyops/pkg/command"
	"github.com/vyops/vyops/pkg/model"
)

var interfaceCmd = &cobra.Command{
	Use:     "interface",
	Aliases: []string{"if"},
	Short:   "Manage device interfaces",
}

var (
	ifType          string
	ifDescription   string
	ifMTU           int
	ifMAC           string
	ifAddresses     []string
	ifBondMode      string
	ifBondMembers   []string
	ifBridgeMembers []string
	ifSTP           bool
	ifDisable       bool
)

var interfaceSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Configure an interface from flags",
	Long: `Build the set statements for one interface and apply them.

Without -x the statements are printed and nothing touches the device.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		iface := &model.Interface{
			Type:          ifType,
			Name:          args[0],
			Description:   ifDescription,
			MTU:           ifMTU,
			MAC:           ifMAC,
			Addresses:     ifAddresses,
			BondMode:      ifBondMode,
			BondMembers:   ifBondMembers,
			BridgeMembers: ifBridgeMembers,
			STP:           ifSTP,
			Disabled:      ifDisable,
		}
		stmts, err := command.InterfaceCommands(iface)
		if err != nil {
			return err
		}
		return executeOrPreview("interface set", stmts)
	},
}

var interfaceDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove an interface from the configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stmt := command.Delete("interfaces", ifType, args[0])
		return executeOrPreview("interface delete", []command.Statement{stmt})
	},
}

var interfaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interfaces on the device",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := requireDevice()
		if err != nil {
			return err
		}
		cfg, err := dev.Fetch(context.Background())
		if err != nil {
			return err
		}
		showInterfaces(cfg)
		return nil
	},
}

func init() {
	f := interfaceSetCmd.Flags()
	f.StringVarP(&ifType, "type", "t", model.InterfaceEthernet, "interface type (ethernet, bonding, bridge, loopback)")
	f.StringVar(&ifDescription, "description", "", "interface description")
	f.IntVar(&ifMTU, "mtu", 0, "interface MTU")
	f.StringVar(&ifMAC, "mac", "", "interface MAC address")
	f.StringSliceVarP(&ifAddresses, "address", "a", nil, "interface address in CIDR form (repeatable)")
	f.StringVar(&ifBondMode, "bond-mode", "", "bonding mode")
	f.StringSliceVar(&ifBondMembers, "bond-member", nil, "bond member interface (repeatable)")
	f.StringSliceVar(&ifBridgeMembers, "bridge-member", nil, "bridge member interface (repeatable)")
	f.BoolVar(&ifSTP, "stp", false, "enable spanning tree on a bridge")
	f.BoolVar(&ifDisable, "disable", false, "administratively disable the interface")

	interfaceDeleteCmd.Flags().StringVarP(&ifType, "type", "t", model.InterfaceEthernet, "interface type")

	interfaceCmd.AddCommand(interfaceSetCmd, interfaceDeleteCmd, interfaceListCmd)
	rootCmd.AddCommand(interfaceCmd)
}
