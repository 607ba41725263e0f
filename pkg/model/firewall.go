package model

// FirewallRuleset is a named rule chain under "firewall name".
type FirewallRuleset struct {
	Name          string         `json:"name" yaml:"name"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	DefaultAction string         `json:"default_action,omitempty" yaml:"default_action,omitempty"` // accept, drop, reject
	Rules         []FirewallRule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// FirewallRule is a single numbered rule inside a ruleset.
type FirewallRule struct {
	Number             int      `json:"number" yaml:"number"`
	Description        string   `json:"description,omitempty" yaml:"description,omitempty"`
	Action             string   `json:"action,omitempty" yaml:"action,omitempty"` // accept, drop, reject
	Protocol           string   `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	SourceAddress      string   `json:"source_address,omitempty" yaml:"source_address,omitempty"`
	SourcePort         string   `json:"source_port,omitempty" yaml:"source_port,omitempty"`
	DestinationAddress string   `json:"destination_address,omitempty" yaml:"destination_address,omitempty"`
	DestinationPort    string   `json:"destination_port,omitempty" yaml:"destination_port,omitempty"`
	States             []string `json:"states,omitempty" yaml:"states,omitempty"` // established, related, new, invalid
	Log                bool     `json:"log,omitempty" yaml:"log,omitempty"`
	Disabled           bool     `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// FirewallZone is a zone-policy zone with interface membership and
// per-peer-zone ruleset bindings.
type FirewallZone struct {
	Name          string       `json:"name" yaml:"name"`
	Description   string       `json:"description,omitempty" yaml:"description,omitempty"`
	DefaultAction string       `json:"default_action,omitempty" yaml:"default_action,omitempty"`
	Interfaces    []string     `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	From          []ZonePolicy `json:"from,omitempty" yaml:"from,omitempty"`
}

// ZonePolicy binds a ruleset to traffic arriving from a peer zone.
type ZonePolicy struct {
	Zone    string `json:"zone" yaml:"zone"`
	Ruleset string `json:"ruleset" yaml:"ruleset"`
}
