package session

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FaultDetector decides whether accumulated output indicates a failure.
// The interactive protocol has no per-statement status, so detection is
// transcript-based and heuristic. Kept behind an interface so a stricter
// implementation can replace substring matching without touching the
// state machine.
type FaultDetector interface {
	// Fault scans the transcript for a general error marker.
	Fault(transcript string) (marker string, found bool)
	// CommitFault scans output collected after the commit statement for a
	// commit-specific failure marker.
	CommitFault(transcript string) (marker string, found bool)
}

// MarkerDetector matches an explicit list of substring markers. The known
// false-positive risk (user-supplied text containing a marker word) is the
// reason the lists are configurable rather than hard-coded.
type MarkerDetector struct {
	Markers       []string `yaml:"markers"`
	CommitMarkers []string `yaml:"commit_markers"`
}

// DefaultDetector returns the marker lists for the stock VyOS/EdgeOS CLI.
func DefaultDetector() *MarkerDetector {
	return &MarkerDetector{
		Markers: []string{
			"Invalid command",
			"is not valid",
			"Set failed",
			"Delete failed",
			"Commit failed",
			"Error:",
		},
		CommitMarkers: []string{
			"Commit failed",
		},
	}
}

// LoadDetector reads marker lists from a YAML file. Empty lists fall back
// to the defaults.
func LoadDetector(path string) (*MarkerDetector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading marker config: %w", err)
	}
	d := &MarkerDetector{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parsing marker config: %w", err)
	}
	def := DefaultDetector()
	if len(d.Markers) == 0 {
		d.Markers = def.Markers
	}
	if len(d.CommitMarkers) == 0 {
		d.CommitMarkers = def.CommitMarkers
	}
	return d, nil
}

// Fault implements FaultDetector.
func (d *MarkerDetector) Fault(transcript string) (string, bool) {
	return match(transcript, d.Markers)
}

// CommitFault implements FaultDetector.
func (d *MarkerDetector) CommitFault(transcript string) (string, bool) {
	return match(transcript, d.CommitMarkers)
}

func match(transcript string, markers []string) (string, bool) {
	for _, m := range markers {
		if strings.Contains(transcript, m) {
			return m, true
		}
	}
	return "", false
}
