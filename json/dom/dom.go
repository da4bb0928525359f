// Package dom materializes JSON documents into navigable value trees.
//
// A Builder is a json.Sink that constructs a Value from the event
// stream of a json.Reader. Values navigate by object key and array
// index, and expose typed accessors that fail with a *TypeError when
// the value has a different kind.
package dom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/csvsql/csvsql/json"
)

// Kind is the variant tag of a Value.
type Kind int

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // zero value; absent key or index
	Null
	Bool
	Number
	String
	Array
	Object
)

var kindStr = [...]string{
	Invalid: "invalid",
	Null:    "null",
	Bool:    "bool",
	Number:  "number",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// A TypeError reports a typed access against a Value of the wrong
// kind.
type TypeError struct {
	Want, Got Kind
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot access %s value as %s", e.Got, e.Want)
}

// A Member is a single key-value pair belonging to an object.
type Member struct {
	Key   string
	Value Value
}

// A Value is a single JSON value: a scalar, an array, or an object.
// The zero Value has kind Invalid; navigating to a missing key or an
// out-of-range index yields it, so lookups chain without intermediate
// checks and the failure surfaces at the typed accessor.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	arr  []Value
	mem  []Member
}

// Kind returns the variant tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the JSON null value.
func (v Value) IsNull() bool { return v.kind == Null }

// Key returns the value of the member of an object with the given
// key, or the zero Value if v is not an object or has no such member.
func (v Value) Key(name string) Value {
	if v.kind == Object {
		for _, m := range v.mem {
			if m.Key == name {
				return m.Value
			}
		}
	}
	return Value{}
}

// At returns the i'th element of an array, or the zero Value if v is
// not an array or i is out of range.
func (v Value) At(i int) Value {
	if v.kind == Array && i >= 0 && i < len(v.arr) {
		return v.arr[i]
	}
	return Value{}
}

// Len returns the number of elements of an array or members of an
// object, and 0 for any other kind.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.mem)
	}
	return 0
}

// Long returns a numeric value truncated to an int64.
func (v Value) Long() (int64, error) {
	if v.kind != Number {
		return 0, &TypeError{Want: Number, Got: v.kind}
	}
	return int64(v.num), nil
}

// Double returns a numeric value.
func (v Value) Double() (float64, error) {
	if v.kind != Number {
		return 0, &TypeError{Want: Number, Got: v.kind}
	}
	return v.num, nil
}

// Str returns a string value.
func (v Value) Str() (string, error) {
	if v.kind != String {
		return "", &TypeError{Want: String, Got: v.kind}
	}
	return v.str, nil
}

// Bool returns a boolean value.
func (v Value) Bool() (bool, error) {
	if v.kind != Bool {
		return false, &TypeError{Want: Bool, Got: v.kind}
	}
	return v.b, nil
}

// Array returns the elements of an array value, in document order.
func (v Value) Array() ([]Value, error) {
	if v.kind != Array {
		return nil, &TypeError{Want: Array, Got: v.kind}
	}
	return v.arr, nil
}

// Object returns the members of an object value, in insertion order.
func (v Value) Object() ([]Member, error) {
	if v.kind != Object {
		return nil, &TypeError{Want: Object, Got: v.kind}
	}
	return v.mem, nil
}

// JSON renders v in a compact JSON form for diagnostics.
func (v Value) JSON() string {
	var sb strings.Builder
	v.encode(&sb)
	return sb.String()
}

func (v Value) encode(sb *strings.Builder) {
	switch v.kind {
	case Null, Invalid:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(v.b))
	case Number:
		sb.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case String:
		sb.WriteString(json.Quote(v.str))
	case Array:
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.encode(sb)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, m := range v.mem {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(json.Quote(m.Key))
			sb.WriteByte(':')
			m.Value.encode(sb)
		}
		sb.WriteByte('}')
	}
}

func nullValue() Value            { return Value{kind: Null} }
func boolValue(b bool) Value      { return Value{kind: Bool, b: b} }
func numberValue(f float64) Value { return Value{kind: Number, num: f} }
func stringValue(s string) Value  { return Value{kind: String, str: s} }
