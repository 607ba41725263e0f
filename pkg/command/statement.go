// Package command builds canonical CLI statement sequences from domain models.
//
// Builders are pure transforms: no I/O, deterministic output, and no
// re-validation beyond what is needed to form a statement at all. Range and
// format checks are the caller's responsibility.
package command

import "strings"

// Statement is a single canonical "set <path...> [value]" or
// "delete <path...>" configuration line. Immutable once produced.
type Statement string

// Set builds a set statement from path tokens.
func Set(tokens ...string) Statement {
	return Statement("set " + strings.Join(tokens, " "))
}

// Delete builds a delete statement from path tokens.
func Delete(tokens ...string) Statement {
	return Statement("delete " + strings.Join(tokens, " "))
}

func (s Statement) String() string {
	return string(s)
}

// Strings converts a statement list to plain strings for the executor.
func Strings(stmts []Statement) []string {
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = string(s)
	}
	return out
}

// Render joins statements into newline-separated text, the same shape the
// device reports from "show configuration commands".
func Render(stmts []Statement) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(string(s))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// join returns a fresh slice of base followed by extra, so builders can
// extend a shared path prefix without aliasing.
func join(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

// toggle emits the enable/disable statement for a path. Exactly one
// statement either way: "set <path> disable" when disabled, otherwise
// "delete <path> disable".
func toggle(base []string, disabled bool) Statement {
	if disabled {
		return Set(join(base, "disable")...)
	}
	return Delete(join(base, "disable")...)
}
