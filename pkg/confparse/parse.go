package confparse

import "strings"

// ParseRaw builds a configuration tree from statement text, typically the
// output of "show configuration commands". Lines that do not start with
// the set keyword (delete statements, prompts, banners) are discarded.
func ParseRaw(text string) *Node {
	root := NewNode()
	for _, line := range strings.Split(text, "\n") {
		tokens := tokenize(line)
		if len(tokens) < 2 || tokens[0] != "set" {
			continue
		}
		root.insert(tokens[1:])
	}
	return root
}

// tokenize splits a statement on whitespace. A single or double quote
// toggles verbatim capture so embedded spaces do not split the token; the
// quote characters themselves are stripped. Inside a quoted span a
// backslash escapes the next character.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	var quote byte
	escaped := false
	started := false

	flush := func() {
		if started {
			tokens = append(tokens, cur.String())
			cur.Reset()
			started = false
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case quote != 0 && c == '\\':
			escaped = true
		case quote != 0 && c == quote:
			quote = 0
		case quote == 0 && (c == '\'' || c == '"'):
			quote = c
			started = true
		case quote == 0 && (c == ' ' || c == '\t' || c == '\r'):
			flush()
		default:
			cur.WriteByte(c)
			started = true
		}
	}
	flush()
	return tokens
}
