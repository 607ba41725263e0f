package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vyops/vyops/pkg/command"
	"github.com/vyops/vyops/pkg/model"
	"github.com/vyops/vyops/pkg/util"
)

// applyDocument is the YAML shape accepted by "vyops apply". Every section
// is optional; statements are emitted in the order below.
type applyDocument struct {
	Interfaces []*model.Interface       `yaml:"interfaces"`
	Routes     []*model.StaticRoute     `yaml:"routes"`
	Firewall   []*model.FirewallRuleset `yaml:"firewall"`
	Zones      []*model.FirewallZone    `yaml:"zones"`
	NAT        []*model.NATRule         `yaml:"nat"`
	IPSec      []*model.IPSecSite       `yaml:"ipsec"`
	System     *model.System            `yaml:"system"`
}

// statements builds the combined sequence. All sections are validated
// before anything executes, so a bad entry late in the file cannot leave
// a half-built batch.
func (d *applyDocument) statements() ([]command.Statement, error) {
	var stmts []command.Statement
	var problems []string

	add := func(label string, s []command.Statement, err error) {
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", label, err))
			return
		}
		stmts = append(stmts, s...)
	}

	// A bare "-" list item in the YAML unmarshals to a nil pointer.
	empty := func(section string, i int) {
		problems = append(problems, fmt.Sprintf("%s[%d]: empty entry", section, i))
	}

	for i, iface := range d.Interfaces {
		if iface == nil {
			empty("interfaces", i)
			continue
		}
		s, err := command.InterfaceCommands(iface)
		add(fmt.Sprintf("interface %s", iface.Name), s, err)
	}
	for i, route := range d.Routes {
		if route == nil {
			empty("routes", i)
			continue
		}
		s, err := command.StaticRouteCommands(route)
		add(fmt.Sprintf("route %s", route.Prefix), s, err)
	}
	for i, rs := range d.Firewall {
		if rs == nil {
			empty("firewall", i)
			continue
		}
		s, err := command.FirewallRulesetCommands(rs)
		add(fmt.Sprintf("firewall %s", rs.Name), s, err)
	}
	for i, zone := range d.Zones {
		if zone == nil {
			empty("zones", i)
			continue
		}
		s, err := command.FirewallZoneCommands(zone)
		add(fmt.Sprintf("zone %s", zone.Name), s, err)
	}
	for i, rule := range d.NAT {
		if rule == nil {
			empty("nat", i)
			continue
		}
		s, err := command.NATRuleCommands(rule)
		add(fmt.Sprintf("nat rule %d", rule.Number), s, err)
	}
	for i, site := range d.IPSec {
		if site == nil {
			empty("ipsec", i)
			continue
		}
		s, err := command.IPSecSiteCommands(site)
		add(fmt.Sprintf("ipsec peer %s", site.Peer), s, err)
	}
	if d.System != nil {
		s, err := command.SystemCommands(d.System)
		add("system", s, err)
	}

	if len(problems) > 0 {
		return nil, util.NewValidationError(problems...)
	}
	return stmts, nil
}

var applyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Apply a YAML configuration document",
	Long: `Read interface, route, firewall, NAT, VPN and system definitions from
a YAML file, build the full statement sequence, and apply it in a single
commit. Without -x the statements are printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var doc applyDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		stmts, err := doc.statements()
		if err != nil {
			return err
		}
		return executeOrPreview("apply "+args[0], stmts)
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
