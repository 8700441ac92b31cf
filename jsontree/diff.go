package jsontree

import (
	"fmt"

	"github.com/faultline/jsonfix/parser"
)

// ChangeKind distinguishes the three shapes a Diff entry can take.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Changed
)

func (c ChangeKind) String() string {
	switch c {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// Change is a single leaf-level difference between two trees, keyed by
// the dot/bracket path Flatten would have produced for that leaf.
type Change struct {
	Path     string
	Kind     ChangeKind
	Previous parser.Value
	Current  parser.Value
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s = %s", c.Path, scalarText(c.Current))
	case Removed:
		return fmt.Sprintf("- %s = %s", c.Path, scalarText(c.Previous))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, scalarText(c.Previous), scalarText(c.Current))
	}
}

// Diff compares two parsed trees leaf by leaf (after flattening both)
// and reports every addition, removal, and value change. It is a flat
// structural diff, not a patch: it does not try to detect array
// element moves, only positional differences.
func Diff(a, b parser.Value) []Change {
	flatA := Flatten(a)
	flatB := Flatten(b)

	var changes []Change
	for path, va := range flatA {
		vb, ok := flatB[path]
		if !ok {
			changes = append(changes, Change{Path: path, Kind: Removed, Previous: va})
			continue
		}
		if !valuesEqual(va, vb) {
			changes = append(changes, Change{Path: path, Kind: Changed, Previous: va, Current: vb})
		}
	}
	for path, vb := range flatB {
		if _, ok := flatA[path]; !ok {
			changes = append(changes, Change{Path: path, Kind: Added, Current: vb})
		}
	}
	return changes
}

func valuesEqual(a, b parser.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case parser.Null:
		return true
	case parser.Bool:
		return a.BoolValue() == b.BoolValue()
	case parser.Number:
		return a.NumberValue() == b.NumberValue()
	case parser.String:
		return a.StringValue() == b.StringValue()
	default:
		// Flatten only ever emits scalar leaves, except for the
		// empty-container sentinel entries it records verbatim.
		return scalarText(a) == scalarText(b)
	}
}
