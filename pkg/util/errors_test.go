package util

import (
	"errors"
	"strings"
	"testing"
)

func TestFieldError(t *testing.T) {
	err := NewFieldError("interface", "name", "must not be empty")
	if !errors.Is(err, ErrInvalidModel) {
		t.Error("FieldError does not unwrap to ErrInvalidModel")
	}
	want := "interface: field name: must not be empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("one")
	if !errors.Is(err, ErrValidationFailed) {
		t.Error("ValidationError does not unwrap to ErrValidationFailed")
	}
	if got := err.Error(); got != "validation failed: one" {
		t.Errorf("single message Error() = %q", got)
	}

	multi := NewValidationError("one", "two")
	if got := multi.Error(); !strings.Contains(got, "- one") || !strings.Contains(got, "- two") {
		t.Errorf("multi message Error() = %q", got)
	}
}
