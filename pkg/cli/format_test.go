package cli

import (
	"strings"
	"testing"
)

func TestColorWrapping(t *testing.T) {
	colorEnabled = true
	if got := Green("up"); !strings.Contains(got, "up") || !strings.HasPrefix(got, "\033[32m") {
		t.Errorf("Green = %q", got)
	}
	colorEnabled = false
	if got := Red("down"); got != "down" {
		t.Errorf("Red with colors off = %q, want %q", got, "down")
	}
}

func TestOnOff(t *testing.T) {
	colorEnabled = false
	if got := OnOff(false); got != "enabled" {
		t.Errorf("OnOff(false) = %q", got)
	}
	if got := OnOff(true); got != "disabled" {
		t.Errorf("OnOff(true) = %q", got)
	}
}
