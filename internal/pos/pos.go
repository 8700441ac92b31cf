// Package pos gives byte offsets into parser input a named type, the
// same way github.com/koblas/cedar-go/token gives token positions a
// named type instead of passing bare ints around.
//
// Unlike a token.Pos, a pos.Offset carries no file-set indirection:
// the fault-tolerant reader works over a single in-memory string and
// never needs to resolve a position back to a filename or line/column
// pair, so there is no File or FileSet here.
package pos

// Offset is a byte offset into the input text being parsed. The zero
// value denotes the start of input, not "no position" -- callers that
// need a sentinel use NoOffset.
type Offset int

// NoOffset is the sentinel for "no meaningful position to report".
const NoOffset Offset = -1

// IsValid reports whether o refers to an actual byte in (or at the end
// of) the input.
func (o Offset) IsValid() bool {
	return o >= 0
}
