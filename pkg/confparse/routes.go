package confparse

import "github.com/vyops/vyops/pkg/model"

// StaticRoutes reconstructs static routes, one model per prefix/next-hop
// pair. The route-level description is shared across next-hops.
func StaticRoutes(tree *Node) []model.StaticRoute {
	var out []model.StaticRoute
	rn := tree.At("protocols", "static", "route")
	for _, prefix := range rn.Keys() {
		p := rn.At(prefix)
		desc := p.Value("description")
		nhs := p.At("next-hop")
		for _, nh := range nhs.Keys() {
			nhn := nhs.At(nh)
			out = append(out, model.StaticRoute{
				Prefix:      prefix,
				NextHop:     nh,
				Distance:    nhn.IntValue("distance"),
				Description: desc,
				Disabled:    nhn.Flag("disable"),
			})
		}
	}
	return out
}
