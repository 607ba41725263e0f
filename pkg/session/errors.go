package session

import (
	"errors"
	"fmt"
)

// TransportError covers connection, channel, and timeout failures. These
// happen outside the device's own CLI semantics and are retryable by the
// caller with backoff.
type TransportError struct {
	Op      string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("transport error during %s: timeout: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CommandError reports an error marker found in the transcript after a
// non-lifecycle statement. The batch was aborted and a rollback attempted.
type CommandError struct {
	Statement  string
	Marker     string
	Transcript string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("device rejected %q: matched marker %q; change reverted", e.Statement, e.Marker)
}

// CommitError reports a commit-failure marker found after the commit
// statement was sent. Rollback handling is identical to CommandError.
type CommitError struct {
	Marker     string
	Transcript string
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit rejected: matched marker %q; change reverted", e.Marker)
}

// RollbackError means the compensating rollback itself failed. Device
// state is unknown; the caller must verify manually.
type RollbackError struct {
	Cause         error
	RollbackCause error
	Transcript    string
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("rollback failed after %v: %v; change may be partially applied, verify device manually",
		e.Cause, e.RollbackCause)
}

func (e *RollbackError) Unwrap() error {
	return e.Cause
}

// IsTimeout reports whether err is a timeout-flavored transport error.
func IsTimeout(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Timeout
}
