package confparse

import (
	"strconv"

	"github.com/vyops/vyops/pkg/model"
)

// IPSecSites reconstructs site-to-site IPsec peers.
func IPSecSites(tree *Node) []model.IPSecSite {
	var out []model.IPSecSite
	pn := tree.At("vpn", "ipsec", "site-to-site", "peer")
	for _, peer := range pn.Keys() {
		n := pn.At(peer)
		s := model.IPSecSite{
			Peer:            peer,
			Description:     n.Value("description"),
			LocalAddress:    n.Value("local-address"),
			IKEGroup:        n.Value("ike-group"),
			ESPGroup:        n.Value("default-esp-group"),
			PreSharedSecret: n.Value("authentication", "pre-shared-secret"),
		}
		for _, id := range n.Values("tunnel") {
			tid, err := strconv.Atoi(id)
			if err != nil {
				continue
			}
			tn := n.At("tunnel", id)
			s.Tunnels = append(s.Tunnels, model.IPSecTunnel{
				ID:           tid,
				LocalPrefix:  tn.Value("local", "prefix"),
				RemotePrefix: tn.Value("remote", "prefix"),
			})
		}
		out = append(out, s)
	}
	return out
}
