package parser

import "fmt"

// Kind discriminates the cases of Value. It plays the role the
// teacher's engine.NamedType interface hierarchy (BoolValue, StrValue,
// IntValue, ...) plays for Cedar values, but as a single tagged
// struct instead of one concrete type per case: spec.md §3 asks for a
// "tagged variant with seven cases", and a closed set of seven JSON
// shapes has no need for the open interface the teacher used to let
// Cedar's extension types plug in.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
	// absent is the dispatcher's internal "I refused to consume a
	// closing byte" signal (spec.md §3, §9). It is unexported so no
	// Value outside this package can ever carry it; the callers of
	// dispatch must not let it escape (readObject and run store Null
	// in its place, readArray drops it).
	absent
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	case absent:
		return "absent"
	default:
		return "unknown"
	}
}

// Value is the result tree produced by the reader: one of Null, Bool,
// Number, String, Array or Object. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *Obj
}

// Kind reports which case v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the Null case.
func (v Value) IsNull() bool { return v.kind == Null }

// BoolValue returns v's boolean payload. It panics if v is not a Bool,
// mirroring how the teacher's engine.BoolValue is a bare bool with no
// defensive accessor -- callers are expected to switch on Kind first.
func (v Value) BoolValue() bool {
	v.mustBe(Bool)
	return v.b
}

// NumberValue returns v's float64 payload.
func (v Value) NumberValue() float64 {
	v.mustBe(Number)
	return v.n
}

// StringValue returns v's string payload.
func (v Value) StringValue() string {
	v.mustBe(String)
	return v.s
}

// ArrayValue returns v's element slice. The returned slice must be
// treated as read-only.
func (v Value) ArrayValue() []Value {
	v.mustBe(Array)
	return v.arr
}

// ObjectValue returns v's ordered object. The returned *Obj must be
// treated as read-only.
func (v Value) ObjectValue() *Obj {
	v.mustBe(Object)
	return v.obj
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("parser: Value is %s, not %s", v.kind, k))
	}
}

// NullValue is the canonical Null value.
func NullValue() Value { return Value{kind: Null} }

// BoolVal constructs a Bool value.
func BoolVal(b bool) Value { return Value{kind: Bool, b: b} }

// NumberVal constructs a Number value.
func NumberVal(n float64) Value { return Value{kind: Number, n: n} }

// StringVal constructs a String value.
func StringVal(s string) Value { return Value{kind: String, s: s} }

// ArrayVal constructs an Array value from items.
func ArrayVal(items []Value) Value { return Value{kind: Array, arr: items} }

// ObjectVal constructs an Object value from an already-built Obj.
func ObjectVal(o *Obj) Value { return Value{kind: Object, obj: o} }

func absentValue() Value { return Value{kind: absent} }

// Obj is an insertion-ordered mapping from string keys to Value,
// per spec.md §3: duplicate keys overwrite the earlier binding's value
// but keep its original position.
type Obj struct {
	keys   []string
	values map[string]Value
}

// NewObj returns an empty ordered object.
func NewObj() *Obj {
	return &Obj{values: map[string]Value{}}
}

// Set binds key to val. If key was already present, its value is
// overwritten in place and its position is unchanged; otherwise key is
// appended at the end.
func (o *Obj) Set(key string, val Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = val
}

// Get returns the value bound to key and whether it was present.
func (o *Obj) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the object's keys in insertion order. The returned
// slice must be treated as read-only.
func (o *Obj) Keys() []string {
	return o.keys
}

// Len reports the number of members in o.
func (o *Obj) Len() int {
	return len(o.keys)
}

// Native converts v into the generic map[string]any / []any / scalar
// shape that encoding/json and gopkg.in/yaml.v3 both accept, for the
// ancillary jsontree traversals and encoders in this repository.
func (v Value) Native() any {
	switch v.kind {
	case Null:
		return nil
	case Bool:
		return v.b
	case Number:
		return v.n
	case String:
		return v.s
	case Array:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Native()
		}
		return out
	case Object:
		out := make(map[string]any, v.obj.Len())
		for _, k := range v.obj.Keys() {
			val, _ := v.obj.Get(k)
			out[k] = val.Native()
		}
		return out
	default:
		return nil
	}
}
