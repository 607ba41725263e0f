package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vyops/vyops/pkg/cli"
	"github.com/vyops/vyops/pkg/confparse"
	"github.com/vyops/vyops/pkg/device"
)

var showCmd = &cobra.Command{
	Use:   "show [interfaces|routes|firewall|nat|vpn|system|raw]",
	Short: "Show parsed device configuration",
	Long: `Show the device's running configuration, parsed into typed objects.

Examples:
  vyops -d edge1 show interfaces
  vyops -d edge1 show firewall
  vyops -d edge1 show raw`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := requireDevice()
		if err != nil {
			return err
		}

		cfg, err := dev.Fetch(context.Background())
		if err != nil {
			return err
		}

		section := "all"
		if len(args) == 1 {
			section = args[0]
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(cfg)
		}

		switch section {
		case "interfaces":
			showInterfaces(cfg)
		case "routes":
			showRoutes(cfg)
		case "firewall":
			showFirewall(cfg)
		case "nat":
			showNAT(cfg)
		case "vpn":
			showVPN(cfg)
		case "system":
			showSystem(cfg)
		case "all":
			showSystem(cfg)
			showInterfaces(cfg)
			showRoutes(cfg)
			showFirewall(cfg)
			showNAT(cfg)
			showVPN(cfg)
		default:
			return fmt.Errorf("unknown section %q", section)
		}
		return nil
	},
}

func showInterfaces(cfg *confparse.Config) {
	t := cli.NewTable("INTERFACE", "TYPE", "ADDRESSES", "MTU", "STATE", "DESCRIPTION")
	for _, i := range cfg.Interfaces {
		mtu := ""
		if i.MTU > 0 {
			mtu = fmt.Sprintf("%d", i.MTU)
		}
		t.Row(i.Name, i.Type, strings.Join(i.Addresses, ","), mtu, cli.OnOff(i.Disabled), i.Description)
		for _, v := range i.Vifs {
			t.Row(fmt.Sprintf("%s.%d", i.Name, v.ID), "vif", strings.Join(v.Addresses, ","), "", cli.OnOff(v.Disabled), v.Description)
		}
	}
	t.Flush()
}

func showRoutes(cfg *confparse.Config) {
	t := cli.NewTable("PREFIX", "NEXT-HOP", "DISTANCE", "STATE", "DESCRIPTION")
	for _, r := range cfg.StaticRoutes {
		dist := ""
		if r.Distance > 0 {
			dist = fmt.Sprintf("%d", r.Distance)
		}
		t.Row(r.Prefix, r.NextHop, dist, cli.OnOff(r.Disabled), r.Description)
	}
	t.Flush()
}

func showFirewall(cfg *confparse.Config) {
	for _, rs := range cfg.FirewallRulesets {
		fmt.Printf("%s (default-action %s) %s\n", cli.Bold(rs.Name), rs.DefaultAction, cli.Dim(rs.Description))
		t := cli.NewTable("RULE", "ACTION", "PROTO", "SOURCE", "DESTINATION", "STATE")
		for _, r := range rs.Rules {
			src := joinAddrPort(r.SourceAddress, r.SourcePort)
			dst := joinAddrPort(r.DestinationAddress, r.DestinationPort)
			t.Row(fmt.Sprintf("%d", r.Number), r.Action, r.Protocol, src, dst, cli.OnOff(r.Disabled))
		}
		t.Flush()
	}

	if len(cfg.FirewallZones) > 0 {
		t := cli.NewTable("ZONE", "DEFAULT", "INTERFACES", "POLICIES")
		for _, z := range cfg.FirewallZones {
			var policies []string
			for _, p := range z.From {
				policies = append(policies, fmt.Sprintf("%s:%s", p.Zone, p.Ruleset))
			}
			t.Row(z.Name, z.DefaultAction, strings.Join(z.Interfaces, ","), strings.Join(policies, " "))
		}
		t.Flush()
	}
}

func showNAT(cfg *confparse.Config) {
	t := cli.NewTable("RULE", "TYPE", "INTERFACE", "SOURCE", "DESTINATION", "TRANSLATION", "STATE")
	for _, r := range cfg.NATRules {
		iface := r.OutboundInterface
		if iface == "" {
			iface = r.InboundInterface
		}
		src := joinAddrPort(r.SourceAddress, r.SourcePort)
		dst := joinAddrPort(r.DestinationAddress, r.DestinationPort)
		trans := joinAddrPort(r.TranslationAddress, r.TranslationPort)
		t.Row(fmt.Sprintf("%d", r.Number), r.Type, iface, src, dst, trans, cli.OnOff(r.Disabled))
	}
	t.Flush()
}

func showVPN(cfg *confparse.Config) {
	t := cli.NewTable("PEER", "LOCAL", "IKE", "ESP", "TUNNELS", "DESCRIPTION")
	for _, s := range cfg.IPSecSites {
		var tunnels []string
		for _, tn := range s.Tunnels {
			tunnels = append(tunnels, fmt.Sprintf("%s<->%s", tn.LocalPrefix, tn.RemotePrefix))
		}
		t.Row(s.Peer, s.LocalAddress, s.IKEGroup, s.ESPGroup, strings.Join(tunnels, " "), s.Description)
	}
	t.Flush()
}

func showSystem(cfg *confparse.Config) {
	s := cfg.System
	if s.HostName == "" && s.TimeZone == "" && len(s.NameServers) == 0 {
		return
	}
	fmt.Printf("%s %s\n", cli.Bold("Host:"), s.HostName)
	if s.DomainName != "" {
		fmt.Printf("%s %s\n", cli.Bold("Domain:"), s.DomainName)
	}
	if s.TimeZone != "" {
		fmt.Printf("%s %s\n", cli.Bold("Time zone:"), s.TimeZone)
	}
	if len(s.NameServers) > 0 {
		fmt.Printf("%s %s\n", cli.Bold("DNS:"), strings.Join(s.NameServers, ", "))
	}
	if len(s.NTPServers) > 0 {
		fmt.Printf("%s %s\n", cli.Bold("NTP:"), strings.Join(s.NTPServers, ", "))
	}
}

func joinAddrPort(addr, port string) string {
	switch {
	case addr == "" && port == "":
		return ""
	case port == "":
		return addr
	case addr == "":
		return "port " + port
	default:
		return addr + ":" + port
	}
}

var showRawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Dump the raw configuration statements",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := requireDevice()
		if err != nil {
			return err
		}
		c, err := device.Dial(dev.Profile)
		if err != nil {
			return err
		}
		defer c.Close()
		dump, err := c.ShowConfigurationCommands()
		if err != nil {
			return err
		}
		fmt.Print(dump)
		return nil
	},
}

func init() {
	showCmd.AddCommand(showRawCmd)
	rootCmd.AddCommand(showCmd)
}
