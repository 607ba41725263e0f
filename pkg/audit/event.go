// Package audit records configuration batch applications.
package audit

import "time"

// Event is one auditable batch application.
type Event struct {
	Timestamp  time.Time     `json:"timestamp"`
	User       string        `json:"user"`
	Device     string        `json:"device"`
	Operation  string        `json:"operation"`
	Statements []string      `json:"statements"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
	RolledBack bool          `json:"rolled_back,omitempty"`
	BackupRef  string        `json:"backup_ref,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// Filter defines criteria for querying audit events. Zero values match
// everything.
type Filter struct {
	Device string
	Since  time.Time
}

// Matches reports whether the event satisfies the filter.
func (f Filter) Matches(e *Event) bool {
	if f.Device != "" && e.Device != f.Device {
		return false
	}
	if !f.Since.IsZero() && e.Timestamp.Before(f.Since) {
		return false
	}
	return true
}
