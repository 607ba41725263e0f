package command

import (
	"strconv"

	"github.com/vyops/vyops/pkg/model"
	"github.com/vyops/vyops/pkg/util"
)

// FirewallRulesetCommands renders a named ruleset and its rules. Rules are
// emitted in input order; each rule ends with its own enable/disable toggle.
func FirewallRulesetCommands(rs *model.FirewallRuleset) ([]Statement, error) {
	if rs.Name == "" {
		return nil, util.NewFieldError("firewall-ruleset", "name", "must not be empty")
	}

	base := []string{"firewall", "name", rs.Name}
	var stmts []Statement

	if rs.Description != "" {
		stmts = append(stmts, Set(join(base, "description", Quote(rs.Description))...))
	}
	if rs.DefaultAction != "" {
		stmts = append(stmts, Set(join(base, "default-action", rs.DefaultAction)...))
	}

	for i := range rs.Rules {
		r := &rs.Rules[i]
		ruleStmts, err := firewallRuleCommands(base, r)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, ruleStmts...)
	}
	return stmts, nil
}

func firewallRuleCommands(base []string, r *model.FirewallRule) ([]Statement, error) {
	if r.Number <= 0 {
		return nil, util.NewFieldError("firewall-rule", "number", "must be positive")
	}

	rb := join(base, "rule", strconv.Itoa(r.Number))
	var stmts []Statement

	if r.Description != "" {
		stmts = append(stmts, Set(join(rb, "description", Quote(r.Description))...))
	}
	if r.Action != "" {
		stmts = append(stmts, Set(join(rb, "action", r.Action)...))
	}
	if r.Protocol != "" {
		stmts = append(stmts, Set(join(rb, "protocol", r.Protocol)...))
	}
	if r.SourceAddress != "" {
		stmts = append(stmts, Set(join(rb, "source", "address", quoteAlways(r.SourceAddress))...))
	}
	if r.SourcePort != "" {
		stmts = append(stmts, Set(join(rb, "source", "port", Quote(r.SourcePort))...))
	}
	if r.DestinationAddress != "" {
		stmts = append(stmts, Set(join(rb, "destination", "address", quoteAlways(r.DestinationAddress))...))
	}
	if r.DestinationPort != "" {
		stmts = append(stmts, Set(join(rb, "destination", "port", Quote(r.DestinationPort))...))
	}
	for _, s := range r.States {
		stmts = append(stmts, Set(join(rb, "state", s, "enable")...))
	}
	if r.Log {
		stmts = append(stmts, Set(join(rb, "log", "enable")...))
	}
	stmts = append(stmts, toggle(rb, r.Disabled))
	return stmts, nil
}

// FirewallZoneCommands renders a zone-policy zone: scalars, member
// interfaces, then per-peer-zone ruleset bindings.
func FirewallZoneCommands(z *model.FirewallZone) ([]Statement, error) {
	if z.Name == "" {
		return nil, util.NewFieldError("firewall-zone", "name", "must not be empty")
	}

	base := []string{"zone-policy", "zone", z.Name}
	var stmts []Statement

	if z.Description != "" {
		stmts = append(stmts, Set(join(base, "description", Quote(z.Description))...))
	}
	if z.DefaultAction != "" {
		stmts = append(stmts, Set(join(base, "default-action", z.DefaultAction)...))
	}
	for _, ifname := range z.Interfaces {
		stmts = append(stmts, Set(join(base, "interface", ifname)...))
	}
	for _, p := range z.From {
		stmts = append(stmts, Set(join(base, "from", p.Zone, "firewall", "name", p.Ruleset)...))
	}
	return stmts, nil
}
