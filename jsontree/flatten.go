package jsontree

import (
	"strconv"
	"strings"

	"github.com/faultline/jsonfix/parser"
)

// Flatten walks v and returns a single-level map from dot/bracket path
// to scalar leaf value, e.g. {"a":{"b":[1,2]}} -> {"a.b[0]": 1, "a.b[1]": 2}.
// Empty objects and empty arrays are recorded as leaves at their own
// path so Unflatten can round-trip them.
func Flatten(v parser.Value) map[string]parser.Value {
	out := make(map[string]parser.Value)
	flatten(v, "", out)
	return out
}

func flatten(v parser.Value, path string, out map[string]parser.Value) {
	switch v.Kind() {
	case parser.Array:
		items := v.ArrayValue()
		if len(items) == 0 {
			out[path] = v
			return
		}
		for i, item := range items {
			flatten(item, formatIndexPath(path, i), out)
		}
	case parser.Object:
		obj := v.ObjectValue()
		if obj.Len() == 0 {
			out[path] = v
			return
		}
		for _, k := range obj.Keys() {
			val, _ := obj.Get(k)
			flatten(val, joinPath(path, k), out)
		}
	default:
		out[path] = v
	}
}

// Unflatten is the inverse of Flatten: it rebuilds a tree from a set
// of dot/bracket paths. Object member order follows the order paths
// are supplied in, not sorted.
func Unflatten(flat map[string]parser.Value, order []string) parser.Value {
	if len(order) == 0 {
		for k := range flat {
			order = append(order, k)
		}
	}

	root := parser.NullValue()
	for _, path := range order {
		val, ok := flat[path]
		if !ok {
			continue
		}
		root = setPath(root, parsePath(path), val)
	}
	return root
}

type pathSeg struct {
	key     string
	isIndex bool
	index   int
}

func parsePath(path string) []pathSeg {
	var segs []pathSeg
	for _, part := range strings.Split(path, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				if part != "" {
					segs = append(segs, pathSeg{key: part})
				}
				break
			}
			if open > 0 {
				segs = append(segs, pathSeg{key: part[:open]})
			}
			closeIdx := strings.IndexByte(part[open:], ']')
			if closeIdx < 0 {
				break
			}
			idxStr := part[open+1 : open+closeIdx]
			idx, err := strconv.Atoi(idxStr)
			if err == nil {
				segs = append(segs, pathSeg{isIndex: true, index: idx})
			}
			part = part[open+closeIdx+1:]
		}
	}
	return segs
}

func setPath(root parser.Value, segs []pathSeg, leaf parser.Value) parser.Value {
	if len(segs) == 0 {
		return leaf
	}
	seg := segs[0]
	if seg.isIndex {
		var items []parser.Value
		if root.Kind() == parser.Array {
			items = append(items, root.ArrayValue()...)
		}
		for len(items) <= seg.index {
			items = append(items, parser.NullValue())
		}
		items[seg.index] = setPath(items[seg.index], segs[1:], leaf)
		return parser.ArrayVal(items)
	}

	var obj *parser.Obj
	if root.Kind() == parser.Object {
		obj = root.ObjectValue()
	} else {
		obj = parser.NewObj()
	}
	existing, _ := obj.Get(seg.key)
	obj.Set(seg.key, setPath(existing, segs[1:], leaf))
	return parser.ObjectVal(obj)
}

// Query resolves a dot/bracket path against v, e.g. "a.b[0]". It
// returns the found value and true, or a Null value and false if any
// segment along the path does not exist.
func Query(v parser.Value, path string) (parser.Value, bool) {
	if path == "" {
		return v, true
	}
	cur := v
	for _, seg := range parsePath(path) {
		switch {
		case seg.isIndex:
			if cur.Kind() != parser.Array {
				return parser.NullValue(), false
			}
			items := cur.ArrayValue()
			if seg.index < 0 || seg.index >= len(items) {
				return parser.NullValue(), false
			}
			cur = items[seg.index]
		default:
			if cur.Kind() != parser.Object {
				return parser.NullValue(), false
			}
			val, ok := cur.ObjectValue().Get(seg.key)
			if !ok {
				return parser.NullValue(), false
			}
			cur = val
		}
	}
	return cur, true
}
