package model

// NAT rule types, matching the path under "nat".
const (
	NATSource      = "source"
	NATDestination = "destination"
)

// NATRule is a numbered source or destination NAT rule.
// Source rules use OutboundInterface, destination rules InboundInterface.
// TranslationAddress "masquerade" selects the outbound interface address.
type NATRule struct {
	Number             int    `json:"number" yaml:"number"`
	Type               string `json:"type" yaml:"type"` // source, destination
	Description        string `json:"description,omitempty" yaml:"description,omitempty"`
	OutboundInterface  string `json:"outbound_interface,omitempty" yaml:"outbound_interface,omitempty"`
	InboundInterface   string `json:"inbound_interface,omitempty" yaml:"inbound_interface,omitempty"`
	Protocol           string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	SourceAddress      string `json:"source_address,omitempty" yaml:"source_address,omitempty"`
	SourcePort         string `json:"source_port,omitempty" yaml:"source_port,omitempty"`
	DestinationAddress string `json:"destination_address,omitempty" yaml:"destination_address,omitempty"`
	DestinationPort    string `json:"destination_port,omitempty" yaml:"destination_port,omitempty"`
	TranslationAddress string `json:"translation_address,omitempty" yaml:"translation_address,omitempty"`
	TranslationPort    string `json:"translation_port,omitempty" yaml:"translation_port,omitempty"`
	Log                bool   `json:"log,omitempty" yaml:"log,omitempty"`
	Disabled           bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// IsMasquerade returns true if the rule translates to the interface address
func (r *NATRule) IsMasquerade() bool {
	return r.TranslationAddress == "masquerade"
}
