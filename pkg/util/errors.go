// Package util provides utility functions and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for caller contract violations
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidModel     = errors.New("invalid model")
	ErrValidationFailed = errors.New("validation failed")
)

// FieldError reports a malformed field on a model passed to a builder.
// Builders do not validate ranges or formats; they only reject fields
// they cannot transform at all (empty identity, missing variant data).
type FieldError struct {
	Kind  string
	Field string
	Why   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %s: %s", e.Kind, e.Field, e.Why)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidModel
}

// NewFieldError creates a field error for a model kind
func NewFieldError(kind, field, why string) *FieldError {
	return &FieldError{Kind: kind, Field: field, Why: why}
}

// ValidationError represents one or more validation failures
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0]
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error from messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}
