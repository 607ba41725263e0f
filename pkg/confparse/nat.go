package confparse

import (
	"strconv"

	"github.com/vyops/vyops/pkg/model"
)

// NATRules reconstructs source then destination NAT rules.
func NATRules(tree *Node) []model.NATRule {
	var out []model.NATRule
	for _, typ := range []string{model.NATSource, model.NATDestination} {
		rn := tree.At("nat", typ, "rule")
		for _, num := range rn.Keys() {
			number, err := strconv.Atoi(num)
			if err != nil {
				continue
			}
			n := rn.At(num)
			out = append(out, model.NATRule{
				Number:             number,
				Type:               typ,
				Description:        n.Value("description"),
				OutboundInterface:  n.Value("outbound-interface"),
				InboundInterface:   n.Value("inbound-interface"),
				Protocol:           n.Value("protocol"),
				SourceAddress:      n.Value("source", "address"),
				SourcePort:         n.Value("source", "port"),
				DestinationAddress: n.Value("destination", "address"),
				DestinationPort:    n.Value("destination", "port"),
				TranslationAddress: n.Value("translation", "address"),
				TranslationPort:    n.Value("translation", "port"),
				Log:                n.Value("log") == "enable",
				Disabled:           n.Flag("disable"),
			})
		}
	}
	return out
}
