// Package scanner implements the character-level cursor used by the
// fault-tolerant JSON reader. It takes a string as source and exposes
// a small set of primitives -- peek, advance, eof, matchWord and
// skipWhitespace -- that the parser builds its recovery policies on
// top of.
//
// The read loop (next) is carried over from
// github.com/koblas/cedar-go/scanner almost unchanged: decode the rune
// at the read offset, special-case invalid UTF-8, and (in Init) skip a
// leading byte-order-mark. Everything above that -- token
// classification, identifiers, numbers, comments -- belongs to the
// parser package in this repository, since the fault-tolerant reader
// scans values directly rather than through an intermediate token
// stream.
package scanner

import (
	"unicode"
	"unicode/utf8"
)

// eof is the sentinel rune returned by Peek/ch once the cursor has
// passed the end of input.
const eof = -1

// bom is the byte-order-mark, only meaningful as the very first
// character of input.
const bom = 0xFEFF

// Scanner holds the cursor's state while walking over src. It must be
// initialized with Init before use and, like the scanner it is
// grounded on, is not safe for concurrent use.
type Scanner struct {
	src      string
	ch       rune // current character, eof at end of input
	offset   int  // byte offset of ch
	rdOffset int  // byte offset immediately following ch
}

// Init prepares s to scan src from the beginning. It consumes a
// leading byte-order-mark, if present, exactly once -- matching
// spec.md's "on the first call of the top-level entry point" rule,
// since Init is only ever called once per parse.
func (s *Scanner) Init(src string) {
	s.src = src
	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.next()
	if s.ch == bom {
		s.next()
	}
}

// next reads the next rune into s.ch, advancing the cursor by one
// character (which may be more than one byte).
func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		r, w := rune(s.src[s.rdOffset]), 1
		if r >= utf8.RuneSelf {
			r, w = utf8.DecodeRuneInString(s.src[s.rdOffset:])
			if r == utf8.RuneError && w == 1 {
				// Invalid UTF-8: treat the lone byte as a rune of its
				// own so the dispatcher's unknown-character recovery
				// can still make progress one byte at a time.
				r = rune(s.src[s.rdOffset])
			}
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		s.ch = eof
	}
}

// Pos returns the current byte offset of the cursor.
func (s *Scanner) Pos() int {
	return s.offset
}

// Peek returns the character currently under the cursor, or eof.
func (s *Scanner) Peek() rune {
	return s.ch
}

// PeekByte reports the first byte of the character under the cursor
// and whether the cursor is not at EOF. It is a convenience for the
// many recovery paths that only care about ASCII punctuation.
func (s *Scanner) PeekByte() (byte, bool) {
	if s.ch == eof {
		return 0, false
	}
	return s.src[s.offset], true
}

// Advance consumes the character under the cursor.
func (s *Scanner) Advance() {
	s.next()
}

// EOF reports whether the cursor has passed the end of input.
func (s *Scanner) EOF() bool {
	return s.ch == eof
}

// MatchWord reports whether w occurs literally at the cursor, without
// consuming it. The caller is responsible for checking that the match
// is not merely a prefix of a longer identifier where that matters.
// The dispatcher's keyword table does no such check: "trueish" matches
// "true" and leaves "ish" for the enclosing context.
func (s *Scanner) MatchWord(w string) bool {
	if len(s.src)-s.offset < len(w) {
		return false
	}
	return s.src[s.offset:s.offset+len(w)] == w
}

// AdvanceN consumes n bytes' worth of ASCII characters at the cursor.
// It is used after MatchWord has confirmed a literal keyword, where
// every rune in the keyword is known to be a single byte.
func (s *Scanner) AdvanceN(n int) {
	for i := 0; i < n; i++ {
		s.next()
	}
}

// Slice returns the substring of the original input between two byte
// offsets previously obtained from Pos.
func (s *Scanner) Slice(start, end int) string {
	return s.src[start:end]
}

// Rest returns the remaining, unconsumed input. Used by the
// premature-array-end heuristic's non-mutating look-ahead.
func (s *Scanner) Rest() string {
	return s.src[s.offset:]
}

// SkipWhitespaceAndComments consumes runs of Unicode whitespace,
// interleaved with // and /* */ comments when allowComments is set.
// Comment and whitespace consumption share one loop, per spec.md
// §4.1, so any mixture in any order is handled: "  // a\n/* b */  x".
//
// An unterminated block comment silently closes at EOF; this matches
// the spec and, unlike the teacher's scanComment, never reports a
// diagnostic for it.
func (s *Scanner) SkipWhitespaceAndComments(allowComments bool) {
	for {
		for isSpace(s.ch) {
			s.next()
		}
		if !allowComments || s.ch != '/' {
			return
		}
		switch {
		case s.MatchWord("//"):
			s.AdvanceN(2)
			for s.ch != '\n' && s.ch != '\r' && s.ch != eof {
				s.next()
			}
		case s.MatchWord("/*"):
			s.AdvanceN(2)
			for {
				if s.ch == eof {
					return
				}
				if s.MatchWord("*/") {
					s.AdvanceN(2)
					break
				}
				s.next()
			}
		default:
			return
		}
	}
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return ch > 0x7f && unicode.IsSpace(ch)
}
