package command

import (
	"strings"
	"unicode"
)

// Quote escapes a value for safe inclusion in a CLI statement. Values
// containing whitespace or a single quote are wrapped in single quotes with
// embedded single quotes backslash-escaped; anything else passes through
// unchanged. Total: there is no failure mode.
func Quote(value string) string {
	if strings.ContainsRune(value, '\'') || strings.ContainsFunc(value, unicode.IsSpace) {
		return quoteAlways(value)
	}
	return value
}

// quoteAlways wraps a value in single quotes unconditionally. Used for
// values the CLI expects quoted regardless of content, such as addresses.
func quoteAlways(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `\'`) + "'"
}
