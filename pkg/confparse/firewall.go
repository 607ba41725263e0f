package confparse

import (
	"strconv"

	"github.com/vyops/vyops/pkg/model"
)

// FirewallRulesets reconstructs named rulesets and their rules.
func FirewallRulesets(tree *Node) []model.FirewallRuleset {
	var out []model.FirewallRuleset
	fn := tree.At("firewall", "name")
	for _, name := range fn.Keys() {
		n := fn.At(name)
		rs := model.FirewallRuleset{
			Name:          name,
			Description:   n.Value("description"),
			DefaultAction: n.Value("default-action"),
		}
		rn := n.At("rule")
		for _, num := range rn.Keys() {
			number, err := strconv.Atoi(num)
			if err != nil {
				continue
			}
			rs.Rules = append(rs.Rules, parseFirewallRule(number, rn.At(num)))
		}
		out = append(out, rs)
	}
	return out
}

func parseFirewallRule(number int, r *Node) model.FirewallRule {
	rule := model.FirewallRule{
		Number:             number,
		Description:        r.Value("description"),
		Action:             r.Value("action"),
		Protocol:           r.Value("protocol"),
		SourceAddress:      r.Value("source", "address"),
		SourcePort:         r.Value("source", "port"),
		DestinationAddress: r.Value("destination", "address"),
		DestinationPort:    r.Value("destination", "port"),
		Log:                r.Value("log") == "enable",
		Disabled:           r.Flag("disable"),
	}
	for _, st := range r.Values("state") {
		if r.Value("state", st) == "enable" {
			rule.States = append(rule.States, st)
		}
	}
	return rule
}

// FirewallZones reconstructs zone-policy zones.
func FirewallZones(tree *Node) []model.FirewallZone {
	var out []model.FirewallZone
	zn := tree.At("zone-policy", "zone")
	for _, name := range zn.Keys() {
		n := zn.At(name)
		z := model.FirewallZone{
			Name:          name,
			Description:   n.Value("description"),
			DefaultAction: n.Value("default-action"),
			Interfaces:    n.Values("interface"),
		}
		for _, peer := range n.Values("from") {
			rs := n.Value("from", peer, "firewall", "name")
			if rs == "" {
				continue
			}
			z.From = append(z.From, model.ZonePolicy{Zone: peer, Ruleset: rs})
		}
		out = append(out, z)
	}
	return out
}
