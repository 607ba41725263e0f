package command

import (
	"strconv"

	"github.com/vyops/vyops/pkg/model"
	"github.com/vyops/vyops/pkg/util"
)

// NATRuleCommands renders a numbered source or destination NAT rule.
func NATRuleCommands(r *model.NATRule) ([]Statement, error) {
	if r.Number <= 0 {
		return nil, util.NewFieldError("nat-rule", "number", "must be positive")
	}
	if r.Type != model.NATSource && r.Type != model.NATDestination {
		return nil, util.NewFieldError("nat-rule", "type", "must be source or destination")
	}

	base := []string{"nat", r.Type, "rule", strconv.Itoa(r.Number)}
	var stmts []Statement

	if r.Description != "" {
		stmts = append(stmts, Set(join(base, "description", Quote(r.Description))...))
	}
	if r.OutboundInterface != "" {
		stmts = append(stmts, Set(join(base, "outbound-interface", r.OutboundInterface)...))
	}
	if r.InboundInterface != "" {
		stmts = append(stmts, Set(join(base, "inbound-interface", r.InboundInterface)...))
	}
	if r.Protocol != "" {
		stmts = append(stmts, Set(join(base, "protocol", r.Protocol)...))
	}
	if r.SourceAddress != "" {
		stmts = append(stmts, Set(join(base, "source", "address", quoteAlways(r.SourceAddress))...))
	}
	if r.SourcePort != "" {
		stmts = append(stmts, Set(join(base, "source", "port", Quote(r.SourcePort))...))
	}
	if r.DestinationAddress != "" {
		stmts = append(stmts, Set(join(base, "destination", "address", quoteAlways(r.DestinationAddress))...))
	}
	if r.DestinationPort != "" {
		stmts = append(stmts, Set(join(base, "destination", "port", Quote(r.DestinationPort))...))
	}

	if r.IsMasquerade() {
		stmts = append(stmts, Set(join(base, "translation", "address", "masquerade")...))
	} else if r.TranslationAddress != "" {
		stmts = append(stmts, Set(join(base, "translation", "address", quoteAlways(r.TranslationAddress))...))
	}
	if r.TranslationPort != "" {
		stmts = append(stmts, Set(join(base, "translation", "port", Quote(r.TranslationPort))...))
	}

	if r.Log {
		stmts = append(stmts, Set(join(base, "log", "enable")...))
	}
	stmts = append(stmts, toggle(base, r.Disabled))
	return stmts, nil
}
