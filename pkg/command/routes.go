package command

import (
	"strconv"

	"github.com/vyops/vyops/pkg/model"
	"github.com/vyops/vyops/pkg/util"
)

// StaticRouteCommands renders a static route into statements. The plain
// next-hop statement is always emitted so the next-hop node exists even
// when no sub-attributes are set.
func StaticRouteCommands(r *model.StaticRoute) ([]Statement, error) {
	if r.Prefix == "" {
		return nil, util.NewFieldError("static-route", "prefix", "must not be empty")
	}
	if r.NextHop == "" {
		return nil, util.NewFieldError("static-route", "next_hop", "must not be empty")
	}

	base := []string{"protocols", "static", "route", r.Prefix}
	nh := join(base, "next-hop", r.NextHop)
	var stmts []Statement

	if r.Description != "" {
		stmts = append(stmts, Set(join(base, "description", Quote(r.Description))...))
	}
	stmts = append(stmts, Set(nh...))
	if r.Distance > 0 {
		stmts = append(stmts, Set(join(nh, "distance", strconv.Itoa(r.Distance))...))
	}
	stmts = append(stmts, toggle(nh, r.Disabled))
	return stmts, nil
}
