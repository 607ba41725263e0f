package command

import (
	"strconv"

	"github.com/vyops/vyops/pkg/model"
	"github.com/vyops/vyops/pkg/util"
)

// InterfaceCommands renders an interface model into an ordered statement
// list: scalar attributes first, then addresses, then variant-specific
// sub-configuration, then the enable/disable toggle.
func InterfaceCommands(i *model.Interface) ([]Statement, error) {
	if i.Name == "" {
		return nil, util.NewFieldError("interface", "name", "must not be empty")
	}
	if i.Type == "" {
		return nil, util.NewFieldError("interface", "type", "must not be empty")
	}

	base := []string{"interfaces", i.Type, i.Name}
	var stmts []Statement

	if i.Description != "" {
		stmts = append(stmts, Set(join(base, "description", Quote(i.Description))...))
	}
	if i.MTU > 0 {
		stmts = append(stmts, Set(join(base, "mtu", strconv.Itoa(i.MTU))...))
	}
	if i.MAC != "" {
		stmts = append(stmts, Set(join(base, "mac", Quote(i.MAC))...))
	}

	for _, addr := range i.Addresses {
		stmts = append(stmts, Set(join(base, "address", quoteAlways(addr))...))
	}

	switch i.Type {
	case model.InterfaceBonding:
		if i.BondMode != "" {
			stmts = append(stmts, Set(join(base, "mode", Quote(i.BondMode))...))
		}
		for _, m := range i.BondMembers {
			stmts = append(stmts, Set(join(base, "member", "interface", m)...))
		}
	case model.InterfaceBridge:
		if i.STP {
			stmts = append(stmts, Set(join(base, "stp")...))
		}
		for _, m := range i.BridgeMembers {
			stmts = append(stmts, Set(join(base, "member", "interface", m)...))
		}
	}

	for _, v := range i.Vifs {
		vb := join(base, "vif", strconv.Itoa(v.ID))
		if v.Description != "" {
			stmts = append(stmts, Set(join(vb, "description", Quote(v.Description))...))
		}
		for _, addr := range v.Addresses {
			stmts = append(stmts, Set(join(vb, "address", quoteAlways(addr))...))
		}
		stmts = append(stmts, toggle(vb, v.Disabled))
	}

	stmts = append(stmts, toggle(base, i.Disabled))
	return stmts, nil
}
