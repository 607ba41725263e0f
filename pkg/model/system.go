package model

// System holds device-wide settings under the "system" path.
type System struct {
	HostName    string   `json:"host_name,omitempty" yaml:"host_name,omitempty"`
	DomainName  string   `json:"domain_name,omitempty" yaml:"domain_name,omitempty"`
	TimeZone    string   `json:"time_zone,omitempty" yaml:"time_zone,omitempty"`
	NameServers []string `json:"name_servers,omitempty" yaml:"name_servers,omitempty"`
	NTPServers  []string `json:"ntp_servers,omitempty" yaml:"ntp_servers,omitempty"`
}
