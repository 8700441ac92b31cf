// Package diag implements the append-only diagnostic log the parser
// accumulates recoveries into.
//
// It is grounded on github.com/koblas/cedar-go/scanner's ErrorHandler
// callback plus error/errorf helpers, generalized into a log the
// parser itself owns rather than a callback the scanner invokes. One
// deliberate difference from the teacher: go/scanner-style error lists
// conventionally gain a Sort method (by position, then by message) so
// errors from out-of-order recovery print in source order. This log
// must never sort -- spec.md §3/§8 require diagnostics to stay in the
// chronological order recoveries actually happened in, never
// re-ordered by position -- so no Sort method exists here.
package diag

import (
	"fmt"

	"github.com/faultline/jsonfix/internal/pos"
)

// Diagnostic records one recovery: the byte position at which it was
// detected and a human-readable message. Position is a pos.Offset
// rather than a bare int for the same reason the teacher's
// go/scanner-style errors carry a token.Pos instead of an int: it
// documents, at the type level, which integers in this codebase mean
// "a byte offset into the input" instead of a count or an index.
type Diagnostic struct {
	Position pos.Offset
	Message  string
}

// Format renders d exactly as spec.md §4.8 requires: "[pos <N>] <message>".
func (d Diagnostic) Format() string {
	return fmt.Sprintf("[pos %d] %s", d.Position, d.Message)
}

// List is an append-only, chronologically ordered sequence of
// diagnostics.
type List []Diagnostic

// Add appends a diagnostic at position p with a literal message. p is
// a plain byte offset from scanner.Scanner.Pos; it is wrapped in
// pos.Offset here so every Diagnostic in the log carries the named
// type rather than each call site doing its own conversion.
func (l *List) Add(p int, msg string) {
	*l = append(*l, Diagnostic{Position: pos.Offset(p), Message: msg})
}

// Addf appends a diagnostic built from a format string.
func (l *List) Addf(p int, format string, args ...any) {
	l.Add(p, fmt.Sprintf(format, args...))
}

// Empty reports whether no diagnostics have been recorded.
func (l List) Empty() bool {
	return len(l) == 0
}

// Formatted returns every diagnostic rendered via Format, in
// chronological order.
func (l List) Formatted() []string {
	out := make([]string, len(l))
	for i, d := range l {
		out[i] = d.Format()
	}
	return out
}
