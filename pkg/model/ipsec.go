package model

// IPSecSite is a site-to-site IPsec peer with pre-shared-key authentication.
type IPSecSite struct {
	Peer            string        `json:"peer" yaml:"peer"` // remote gateway address
	Description     string        `json:"description,omitempty" yaml:"description,omitempty"`
	LocalAddress    string        `json:"local_address,omitempty" yaml:"local_address,omitempty"`
	IKEGroup        string        `json:"ike_group,omitempty" yaml:"ike_group,omitempty"`
	ESPGroup        string        `json:"esp_group,omitempty" yaml:"esp_group,omitempty"`
	PreSharedSecret string        `json:"pre_shared_secret,omitempty" yaml:"pre_shared_secret,omitempty"`
	Tunnels         []IPSecTunnel `json:"tunnels,omitempty" yaml:"tunnels,omitempty"`
}

// IPSecTunnel is one numbered traffic selector of a site-to-site peer.
type IPSecTunnel struct {
	ID           int    `json:"id" yaml:"id"`
	LocalPrefix  string `json:"local_prefix,omitempty" yaml:"local_prefix,omitempty"`
	RemotePrefix string `json:"remote_prefix,omitempty" yaml:"remote_prefix,omitempty"`
}
