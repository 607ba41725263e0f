package command

import "github.com/vyops/vyops/pkg/model"

// SystemCommands renders device-wide settings. All fields are optional;
// an empty model produces an empty statement list.
func SystemCommands(s *model.System) ([]Statement, error) {
	var stmts []Statement

	if s.HostName != "" {
		stmts = append(stmts, Set("system", "host-name", Quote(s.HostName)))
	}
	if s.DomainName != "" {
		stmts = append(stmts, Set("system", "domain-name", Quote(s.DomainName)))
	}
	if s.TimeZone != "" {
		stmts = append(stmts, Set("system", "time-zone", Quote(s.TimeZone)))
	}
	for _, ns := range s.NameServers {
		stmts = append(stmts, Set("system", "name-server", ns))
	}
	for _, srv := range s.NTPServers {
		stmts = append(stmts, Set("system", "ntp", "server", Quote(srv)))
	}
	return stmts, nil
}
