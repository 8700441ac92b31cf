package parser

import (
	"strings"

	"github.com/faultline/jsonfix/internal/diag"
	"github.com/faultline/jsonfix/scanner"
)

// maxDispatchRetries bounds how many consecutive bytes the dispatcher
// may skip while failing to classify a value (spec.md §4.4), the same
// role the teacher's parser.syncCnt/advance(to) plays bounding
// consecutive token skips during its own error recovery
// (github.com/koblas/cedar-go/core/parser.parser.advance).
const maxDispatchRetries = 10

// parser holds the fault-tolerant reader's mutable state for one
// parse. It is the byte-level analogue of the teacher's parser
// struct: a scanner, an accumulated error log, and recovery-guard
// counters, minus the one-token lookahead the teacher keeps -- this
// reader dispatches directly off the scanner's current character
// instead of a pre-scanned token, since spec.md's scanner model has no
// token stage.
type parser struct {
	sc   scanner.Scanner
	log  diag.List
	opts Options

	containerDepth  int
	dispatchRetries int
}

// bailout unwinds a strict-mode parse as soon as the first diagnostic
// is recorded, mirroring the teacher's bailout{} panic in
// core/parser.parser.error.
type bailout struct{}

func newParser(input string, opts Options) *parser {
	p := &parser{opts: opts}
	p.sc.Init(input)
	return p
}

// recover logs a recovery at pos and, in strict mode, aborts the
// parse immediately -- spec.md §7: "the first recovery aborts the
// parse and is the sole error reported".
func (p *parser) recover(pos int, msg string) {
	p.log.Add(pos, msg)
	if p.opts.Strict {
		panic(bailout{})
	}
}

func (p *parser) recoverf(pos int, format string, args ...any) {
	p.log.Addf(pos, format, args...)
	if p.opts.Strict {
		panic(bailout{})
	}
}

// isCloserOrSeparator reports whether b is one of the bytes the
// unescaped-quote heuristic (spec.md §4.3) treats as "clearly not
// inside this string".
func isCloserOrSeparator(b byte) bool {
	switch b {
	case ',', ':', '}', ']', '{', '[':
		return true
	}
	return false
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' ||
		('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || ('0' <= ch && ch <= '9')
}

// scanBareWord consumes a run of identifier characters at the cursor
// and returns the text consumed.
func (p *parser) scanBareWord() string {
	var sb strings.Builder
	for isIdentPart(p.sc.Peek()) {
		sb.WriteRune(p.sc.Peek())
		p.sc.Advance()
	}
	return sb.String()
}
