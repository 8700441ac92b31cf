// Package jsontree implements the ancillary tree operations spec.md
// §6 names but deliberately leaves unspecified beyond their interface:
// pretty-printing, minification, key sorting, flatten/unflatten,
// structural diff, dot-path query, null stripping, key filtering and
// size/type statistics. None of it participates in the reader's
// recovery semantics (parser.Value is immutable input here); it is
// the "straightforward traversal of the parsed tree" spec.md §1/§6
// deliberately scopes out of the core.
package jsontree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/faultline/jsonfix/parser"
)

// Pretty renders v as a multi-line, indented JSON-like text. Object
// key order is preserved (insertion order, per the reader's own
// ordering contract).
func Pretty(v parser.Value, indent string) string {
	var sb strings.Builder
	writePretty(&sb, v, indent, "")
	return sb.String()
}

func writePretty(sb *strings.Builder, v parser.Value, indent, prefix string) {
	switch v.Kind() {
	case parser.Array:
		items := v.ArrayValue()
		if len(items) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		childPrefix := prefix + indent
		for i, item := range items {
			sb.WriteString(childPrefix)
			writePretty(sb, item, indent, childPrefix)
			if i < len(items)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(prefix)
		sb.WriteByte(']')
	case parser.Object:
		obj := v.ObjectValue()
		if obj.Len() == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		childPrefix := prefix + indent
		keys := obj.Keys()
		for i, k := range keys {
			val, _ := obj.Get(k)
			sb.WriteString(childPrefix)
			sb.WriteString(strconv.Quote(k))
			sb.WriteString(": ")
			writePretty(sb, val, indent, childPrefix)
			if i < len(keys)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(prefix)
		sb.WriteByte('}')
	default:
		sb.WriteString(scalarText(v))
	}
}

// Minify renders v as compact, single-line JSON-like text.
func Minify(v parser.Value) string {
	var sb strings.Builder
	writeMinify(&sb, v)
	return sb.String()
}

func writeMinify(sb *strings.Builder, v parser.Value) {
	switch v.Kind() {
	case parser.Array:
		sb.WriteByte('[')
		for i, item := range v.ArrayValue() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeMinify(sb, item)
		}
		sb.WriteByte(']')
	case parser.Object:
		obj := v.ObjectValue()
		sb.WriteByte('{')
		for i, k := range obj.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			val, _ := obj.Get(k)
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			writeMinify(sb, val)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString(scalarText(v))
	}
}

func scalarText(v parser.Value) string {
	switch v.Kind() {
	case parser.Null:
		return "null"
	case parser.Bool:
		if v.BoolValue() {
			return "true"
		}
		return "false"
	case parser.Number:
		return strconv.FormatFloat(v.NumberValue(), 'g', -1, 64)
	case parser.String:
		return strconv.Quote(v.StringValue())
	default:
		return "null"
	}
}

// SortKeys returns a new tree in which every object's keys are sorted
// lexicographically. The input is untouched.
func SortKeys(v parser.Value) parser.Value {
	switch v.Kind() {
	case parser.Array:
		items := v.ArrayValue()
		out := make([]parser.Value, len(items))
		for i, item := range items {
			out[i] = SortKeys(item)
		}
		return parser.ArrayVal(out)
	case parser.Object:
		obj := v.ObjectValue()
		keys := append([]string(nil), obj.Keys()...)
		sort.Strings(keys)
		out := parser.NewObj()
		for _, k := range keys {
			val, _ := obj.Get(k)
			out.Set(k, SortKeys(val))
		}
		return parser.ObjectVal(out)
	default:
		return v
	}
}

// StripNulls removes object members, and array elements, whose value
// is Null.
func StripNulls(v parser.Value) parser.Value {
	switch v.Kind() {
	case parser.Array:
		var out []parser.Value
		for _, item := range v.ArrayValue() {
			if item.Kind() == parser.Null {
				continue
			}
			out = append(out, StripNulls(item))
		}
		return parser.ArrayVal(out)
	case parser.Object:
		obj := v.ObjectValue()
		out := parser.NewObj()
		for _, k := range obj.Keys() {
			val, _ := obj.Get(k)
			if val.Kind() == parser.Null {
				continue
			}
			out.Set(k, StripNulls(val))
		}
		return parser.ObjectVal(out)
	default:
		return v
	}
}

// FilterKeys returns a tree containing only the object keys for which
// keep(path, key) returns true. path is the dot-path of the object
// containing key ("" at the root). Arrays are walked but never
// filtered.
func FilterKeys(v parser.Value, keep func(path, key string) bool) parser.Value {
	return filterKeys(v, "", keep)
}

func filterKeys(v parser.Value, path string, keep func(path, key string) bool) parser.Value {
	switch v.Kind() {
	case parser.Array:
		items := v.ArrayValue()
		out := make([]parser.Value, len(items))
		for i, item := range items {
			out[i] = filterKeys(item, path, keep)
		}
		return parser.ArrayVal(out)
	case parser.Object:
		obj := v.ObjectValue()
		out := parser.NewObj()
		for _, k := range obj.Keys() {
			if !keep(path, k) {
				continue
			}
			val, _ := obj.Get(k)
			out.Set(k, filterKeys(val, joinPath(path, k), keep))
		}
		return parser.ObjectVal(out)
	default:
		return v
	}
}

// TreeStats summarizes a parsed value tree.
type TreeStats struct {
	NullCount   int
	BoolCount   int
	NumberCount int
	StringCount int
	ArrayCount  int
	ObjectCount int
	MemberCount int // total object members and array elements
	MaxDepth    int
}

// Stats walks v and reports counts of each kind, the maximum nesting
// depth, and the total number of object members plus array elements.
func Stats(v parser.Value) TreeStats {
	var s TreeStats
	walkStats(v, 1, &s)
	return s
}

func walkStats(v parser.Value, depth int, s *TreeStats) {
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	switch v.Kind() {
	case parser.Null:
		s.NullCount++
	case parser.Bool:
		s.BoolCount++
	case parser.Number:
		s.NumberCount++
	case parser.String:
		s.StringCount++
	case parser.Array:
		s.ArrayCount++
		items := v.ArrayValue()
		s.MemberCount += len(items)
		for _, item := range items {
			walkStats(item, depth+1, s)
		}
	case parser.Object:
		s.ObjectCount++
		obj := v.ObjectValue()
		s.MemberCount += obj.Len()
		for _, k := range obj.Keys() {
			val, _ := obj.Get(k)
			walkStats(val, depth+1, s)
		}
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}

// formatIndexPath renders a path segment for array index i appended
// to path, e.g. "tags" + 0 -> "tags[0]".
func formatIndexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
