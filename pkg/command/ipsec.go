package command

import (
	"strconv"

	"github.com/vyops/vyops/pkg/model"
	"github.com/vyops/vyops/pkg/util"
)

// IPSecSiteCommands renders a site-to-site IPsec peer. The authentication
// mode statement is always emitted; pre-shared-key is the only supported mode.
func IPSecSiteCommands(s *model.IPSecSite) ([]Statement, error) {
	if s.Peer == "" {
		return nil, util.NewFieldError("ipsec-site", "peer", "must not be empty")
	}

	base := []string{"vpn", "ipsec", "site-to-site", "peer", s.Peer}
	var stmts []Statement

	if s.Description != "" {
		stmts = append(stmts, Set(join(base, "description", Quote(s.Description))...))
	}
	stmts = append(stmts, Set(join(base, "authentication", "mode", "pre-shared-secret")...))
	if s.PreSharedSecret != "" {
		stmts = append(stmts, Set(join(base, "authentication", "pre-shared-secret", Quote(s.PreSharedSecret))...))
	}
	if s.LocalAddress != "" {
		stmts = append(stmts, Set(join(base, "local-address", s.LocalAddress)...))
	}
	if s.IKEGroup != "" {
		stmts = append(stmts, Set(join(base, "ike-group", s.IKEGroup)...))
	}
	if s.ESPGroup != "" {
		stmts = append(stmts, Set(join(base, "default-esp-group", s.ESPGroup)...))
	}

	for _, t := range s.Tunnels {
		tb := join(base, "tunnel", strconv.Itoa(t.ID))
		if t.LocalPrefix != "" {
			stmts = append(stmts, Set(join(tb, "local", "prefix", quoteAlways(t.LocalPrefix))...))
		}
		if t.RemotePrefix != "" {
			stmts = append(stmts, Set(join(tb, "remote", "prefix", quoteAlways(t.RemotePrefix))...))
		}
	}
	return stmts, nil
}
