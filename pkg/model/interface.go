// Package model defines the domain models for device configuration.
//
// Models are plain value objects whose fields map 1:1 to CLI path segments.
// They are constructed by callers (CLI input or parser output) and treated
// as immutable once handed to a builder. Optional fields are simply absent.
package model

// Interface types as they appear under the "interfaces" path.
const (
	InterfaceEthernet = "ethernet"
	InterfaceLoopback = "loopback"
	InterfaceBridge   = "bridge"
	InterfaceBonding  = "bonding"
)

// Interface represents a network interface
type Interface struct {
	Type        string   `json:"type" yaml:"type"` // ethernet, loopback, bridge, bonding
	Name        string   `json:"name" yaml:"name"` // e.g., "eth0", "br0", "bond0"
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	MTU         int      `json:"mtu,omitempty" yaml:"mtu,omitempty"`
	MAC         string   `json:"mac,omitempty" yaml:"mac,omitempty"`
	Addresses   []string `json:"addresses,omitempty" yaml:"addresses,omitempty"` // CIDR or "dhcp"

	// Bonding
	BondMode    string   `json:"bond_mode,omitempty" yaml:"bond_mode,omitempty"` // 802.3ad, active-backup, ...
	BondMembers []string `json:"bond_members,omitempty" yaml:"bond_members,omitempty"`

	// Bridge
	BridgeMembers []string `json:"bridge_members,omitempty" yaml:"bridge_members,omitempty"`
	STP           bool     `json:"stp,omitempty" yaml:"stp,omitempty"`

	// 802.1q subinterfaces
	Vifs []Vif `json:"vifs,omitempty" yaml:"vifs,omitempty"`

	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Vif is an 802.1q subinterface under a parent interface.
type Vif struct {
	ID          int      `json:"id" yaml:"id"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Addresses   []string `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	Disabled    bool     `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// IsPhysical returns true if this is a physical ethernet interface
func (i *Interface) IsPhysical() bool {
	return i.Type == InterfaceEthernet
}

// IsBridge returns true if this is a bridge interface
func (i *Interface) IsBridge() bool {
	return i.Type == InterfaceBridge
}

// IsBond returns true if this is a bonding interface
func (i *Interface) IsBond() bool {
	return i.Type == InterfaceBonding
}

// HasAddress returns true if the interface has at least one address
func (i *Interface) HasAddress() bool {
	return len(i.Addresses) > 0
}
