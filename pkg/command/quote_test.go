package command

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"simple", "simple"},
		{"has space", "'has space'"},
		{"it's", `'it\'s'`},
		{"", ""},
		{"tab\there", "'tab\there'"},
		{"line\nbreak", "'line\nbreak'"},
		{"vert\vtab", "'vert\vtab'"},
		{"nb space", "'nb space'"},
		{"192.168.1.1/24", "192.168.1.1/24"},
		{"LAN Interface", "'LAN Interface'"},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuoteAlways(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"192.168.1.1/24", "'192.168.1.1/24'"},
		{"has space", "'has space'"},
		{"it's", `'it\'s'`},
	}
	for _, tt := range tests {
		if got := quoteAlways(tt.in); got != tt.want {
			t.Errorf("quoteAlways(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
