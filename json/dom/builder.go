package dom

import (
	"bytes"
	"errors"
	"io"

	"github.com/csvsql/csvsql/json"

	"github.com/tailscale/hujson"
)

// A Builder is a json.Sink that materializes the event stream into a
// Value tree. After a successful parse, Root returns the single root
// value. A Builder is good for one parse; construct a fresh one per
// document.
type Builder struct {
	stk  []frame
	root Value
	done bool
}

// A frame is an in-progress container on the builder stack.
type frame struct {
	val    Value  // Object or Array under construction
	key    string // pending member key
	hasKey bool
}

// Root returns the root value of the parsed document. It fails if no
// complete document has been delivered to b.
func (b *Builder) Root() (Value, error) {
	if !b.done || len(b.stk) != 0 {
		return Value{}, errors.New("no complete value")
	}
	return b.root, nil
}

// attach adds v to the innermost open container, or records it as the
// root when no container is open.
func (b *Builder) attach(v Value) error {
	if len(b.stk) == 0 {
		b.root = v
		b.done = true
		return nil
	}
	top := &b.stk[len(b.stk)-1]
	switch top.val.kind {
	case Object:
		if !top.hasKey {
			return errors.New("object value without key")
		}
		// Duplicate keys are last-write-wins: the value is replaced at
		// the member's original position.
		for i := range top.val.mem {
			if top.val.mem[i].Key == top.key {
				top.val.mem[i].Value = v
				top.hasKey = false
				return nil
			}
		}
		top.val.mem = append(top.val.mem, Member{Key: top.key, Value: v})
		top.hasKey = false
	case Array:
		top.val.arr = append(top.val.arr, v)
	}
	return nil
}

func (b *Builder) push(v Value) {
	b.stk = append(b.stk, frame{val: v})
}

func (b *Builder) pop() error {
	if len(b.stk) == 0 {
		return errors.New("unbalanced end event")
	}
	top := b.stk[len(b.stk)-1]
	b.stk = b.stk[:len(b.stk)-1]
	return b.attach(top.val)
}

// BeginObject implements part of json.Sink.
func (b *Builder) BeginObject() error {
	b.push(Value{kind: Object})
	return nil
}

// EndObject implements part of json.Sink.
func (b *Builder) EndObject() error { return b.pop() }

// BeginArray implements part of json.Sink.
func (b *Builder) BeginArray() error {
	b.push(Value{kind: Array})
	return nil
}

// EndArray implements part of json.Sink.
func (b *Builder) EndArray() error { return b.pop() }

// Key implements part of json.Sink.
func (b *Builder) Key(key string) error {
	if len(b.stk) == 0 || b.stk[len(b.stk)-1].val.kind != Object {
		return errors.New("key outside object")
	}
	top := &b.stk[len(b.stk)-1]
	top.key = key
	top.hasKey = true
	return nil
}

// Number implements part of json.Sink.
func (b *Builder) Number(v float64) error { return b.attach(numberValue(v)) }

// String implements part of json.Sink.
func (b *Builder) String(s string) error { return b.attach(stringValue(s)) }

// Boolean implements part of json.Sink.
func (b *Builder) Boolean(v bool) error { return b.attach(boolValue(v)) }

// Null implements part of json.Sink.
func (b *Builder) Null() error { return b.attach(nullValue()) }

// Parse reads a single JSON document from r and returns its root
// value. Errors are reported in the strict discipline, as *json.Error.
func Parse(r io.Reader) (Value, error) {
	b := new(Builder)
	if err := json.NewReader(r, b, json.Strict).Parse(); err != nil {
		return Value{}, err
	}
	return b.Root()
}

// ParseBytes reads a single JSON document from an in-memory input.
func ParseBytes(data []byte) (Value, error) {
	return Parse(bytes.NewReader(data))
}

// ParseConfig reads a human-maintained configuration document. The
// input may carry comments and trailing commas; it is standardized to
// plain JSON before the strict parse.
func ParseConfig(data []byte) (Value, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return Value{}, err
	}
	return ParseBytes(std)
}
