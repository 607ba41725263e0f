package confparse

import "github.com/vyops/vyops/pkg/model"

// Config bundles the raw tree with every typed collection the walkers know
// about. Unknown device features stay reachable through Tree.
type Config struct {
	Tree             *Node                   `json:"-"`
	Interfaces       []model.Interface       `json:"interfaces"`
	StaticRoutes     []model.StaticRoute     `json:"static_routes"`
	FirewallRulesets []model.FirewallRuleset `json:"firewall_rulesets"`
	FirewallZones    []model.FirewallZone    `json:"firewall_zones"`
	NATRules         []model.NATRule         `json:"nat_rules"`
	IPSecSites       []model.IPSecSite       `json:"ipsec_sites"`
	System           model.System            `json:"system"`
}

// ParseConfiguration parses statement text into the tree and all typed
// collections. Parsing is lenient: missing subtrees produce empty
// collections and unrecognized paths are ignored.
func ParseConfiguration(text string) *Config {
	tree := ParseRaw(text)
	return &Config{
		Tree:             tree,
		Interfaces:       Interfaces(tree),
		StaticRoutes:     StaticRoutes(tree),
		FirewallRulesets: FirewallRulesets(tree),
		FirewallZones:    FirewallZones(tree),
		NATRules:         NATRules(tree),
		IPSecSites:       IPSecSites(tree),
		System:           System(tree),
	}
}

// Interface returns the named interface from the parsed collection, or nil.
func (c *Config) Interface(name string) *model.Interface {
	for i := range c.Interfaces {
		if c.Interfaces[i].Name == name {
			return &c.Interfaces[i]
		}
	}
	return nil
}
