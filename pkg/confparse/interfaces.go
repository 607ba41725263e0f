package confparse

import (
	"strconv"

	"github.com/vyops/vyops/pkg/model"
)

// interfaceTypes fixes the walk order over the "interfaces" subtree.
// Unknown sibling types (tunnel, wireguard, ...) are ignored.
var interfaceTypes = []string{
	model.InterfaceEthernet,
	model.InterfaceBonding,
	model.InterfaceBridge,
	model.InterfaceLoopback,
}

// Interfaces reconstructs interface models from the tree. A missing
// interfaces subtree yields an empty result.
func Interfaces(tree *Node) []model.Interface {
	var out []model.Interface
	root := tree.At("interfaces")
	for _, typ := range interfaceTypes {
		tn := root.At(typ)
		for _, name := range tn.Keys() {
			out = append(out, parseInterface(typ, name, tn.At(name)))
		}
	}
	return out
}

func parseInterface(typ, name string, n *Node) model.Interface {
	i := model.Interface{
		Type:        typ,
		Name:        name,
		Description: n.Value("description"),
		MTU:         n.IntValue("mtu"),
		MAC:         n.Value("mac"),
		Addresses:   n.Values("address"),
		Disabled:    n.Flag("disable"),
	}

	switch typ {
	case model.InterfaceBonding:
		i.BondMode = n.Value("mode")
		i.BondMembers = n.Values("member", "interface")
	case model.InterfaceBridge:
		i.STP = n.Flag("stp")
		i.BridgeMembers = n.Values("member", "interface")
	}

	for _, id := range n.Values("vif") {
		vn := n.At("vif", id)
		vid, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		i.Vifs = append(i.Vifs, model.Vif{
			ID:          vid,
			Description: vn.Value("description"),
			Addresses:   vn.Values("address"),
			Disabled:    vn.Flag("disable"),
		})
	}
	return i
}
