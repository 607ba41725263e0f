// Package backup stores pre-change configuration dumps. Sinks receive the
// dump as an opaque string; retention is the operator's concern, not the
// engine's.
package backup

import "context"

// Sink receives one configuration dump per batch execution and returns an
// opaque location (file path, store key) for reporting.
type Sink interface {
	Store(ctx context.Context, device, config string) (string, error)
}
