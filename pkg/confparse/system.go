package confparse

import "github.com/vyops/vyops/pkg/model"

// System reconstructs device-wide settings. A missing system subtree
// yields a zero-value model.
func System(tree *Node) model.System {
	n := tree.At("system")
	return model.System{
		HostName:    n.Value("host-name"),
		DomainName:  n.Value("domain-name"),
		TimeZone:    n.Value("time-zone"),
		NameServers: n.Values("name-server"),
		NTPServers:  n.Values("ntp", "server"),
	}
}
