package model

// StaticRoute represents a static route under "protocols static route".
// One route per destination prefix / next-hop pair.
type StaticRoute struct {
	Prefix      string `json:"prefix" yaml:"prefix"` // destination CIDR
	NextHop     string `json:"next_hop" yaml:"next_hop"`
	Distance    int    `json:"distance,omitempty" yaml:"distance,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}
