// Package value defines the typed cell values manipulated by the
// engine. A Value is one of a closed set of variants (integer, real,
// boolean, date, time, timestamp, string), each of which may be a
// null of its kind; a naked untyped null is not representable.
//
// Values are immutable once constructed and safe to share by read
// across goroutines. Typed accessors are defined only on non-null
// values of the matching variant; misuse panics with an *Error, since
// it indicates a caller bug rather than a data fault.
package value

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/csvsql/csvsql/chrono"
)

// A Value is a single typed cell value. The set of implementations is
// closed; every Value is one of Int, Real, Bool, Date, Time,
// Timestamp, or String.
type Value interface {
	// Kind returns the variant tag of the value.
	Kind() Kind

	// IsNull reports whether the value is a null of its kind.
	IsNull() bool

	// Size reports the in-memory footprint of the value in bytes. The
	// result is stable for a given variant; String adds its payload
	// length plus a terminating sentinel.
	Size() int

	// Hash returns a variant-stable hash. Values that compare equal
	// under Equal hash equal.
	Hash() uint64

	// Format appends the canonical textual form of the value to buf.
	// A null of any kind renders as "NULL".
	Format(buf *bytes.Buffer)

	// String returns the canonical textual form of the value.
	String() string

	// compareSame orders the value against rhs. Both values are
	// non-null and of the same kind.
	compareSame(rhs Value) int

	// equalSame reports equality against rhs. Both values are non-null
	// and of the same kind.
	equalSame(rhs Value) bool
}

func nullAccess(k Kind) *Error {
	return &Error{Code: NullAccess, Message: fmt.Sprintf("access of null %s value", k)}
}

// hashKind mixes a kind tag and an 8-byte payload.
func hashKind(k Kind, v uint64) uint64 {
	var b [9]byte
	b[0] = byte(k)
	binary.LittleEndian.PutUint64(b[1:], v)
	return xxhash.Sum64(b[:])
}

// nullHash is the hash of the null of a kind. Nulls never compare
// equal to anything, so the only requirement is stability.
func nullHash(k Kind) uint64 {
	return xxhash.Sum64([]byte{0x80 | byte(k)})
}

// An Int is a signed 64-bit integer value.
type Int struct {
	v    int64
	null bool
}

// NewInt constructs a non-null Int.
func NewInt(v int64) Int { return Int{v: v} }

// NullInt constructs the null Int.
func NullInt() Int { return Int{null: true} }

func (d Int) Kind() Kind   { return KindInt }
func (d Int) IsNull() bool { return d.null }
func (d Int) Size() int    { return int(unsafe.Sizeof(d)) }

// Int64 returns the payload. It panics on a null value.
func (d Int) Int64() int64 {
	if d.null {
		panic(nullAccess(KindInt))
	}
	return d.v
}

func (d Int) Hash() uint64 {
	if d.null {
		return nullHash(KindInt)
	}
	return hashKind(KindInt, uint64(d.v))
}

func (d Int) Format(buf *bytes.Buffer) {
	if d.null {
		buf.WriteString("NULL")
		return
	}
	buf.Write(strconv.AppendInt(nil, d.v, 10))
}

func (d Int) String() string { return formatString(d) }

func (d Int) compareSame(rhs Value) int { return cmpOrdered(d.v, rhs.(Int).v) }
func (d Int) equalSame(rhs Value) bool  { return d.v == rhs.(Int).v }

// A Real is an IEEE-754 double value. Equality is tolerant (see
// Equal); ordering treats values within the tolerance as equivalent
// and otherwise follows the raw representation.
type Real struct {
	v    float64
	null bool
}

// NewReal constructs a non-null Real.
func NewReal(v float64) Real { return Real{v: v} }

// NullReal constructs the null Real.
func NullReal() Real { return Real{null: true} }

func (d Real) Kind() Kind   { return KindReal }
func (d Real) IsNull() bool { return d.null }
func (d Real) Size() int    { return int(unsafe.Sizeof(d)) }

// Float64 returns the payload. It panics on a null value.
func (d Real) Float64() float64 {
	if d.null {
		panic(nullAccess(KindReal))
	}
	return d.v
}

// Hash canonicalizes through the fixed-point rendering, so any two
// Reals that render alike hash alike. This keeps Hash consistent with
// the tolerant Equal.
func (d Real) Hash() uint64 {
	if d.null {
		return nullHash(KindReal)
	}
	buf := make([]byte, 1, 28)
	buf[0] = byte(KindReal)
	return xxhash.Sum64(strconv.AppendFloat(buf, d.v, 'f', 6, 64))
}

func (d Real) Format(buf *bytes.Buffer) {
	if d.null {
		buf.WriteString("NULL")
		return
	}
	buf.Write(strconv.AppendFloat(nil, d.v, 'f', 6, 64))
}

func (d Real) String() string { return formatString(d) }

func (d Real) compareSame(rhs Value) int {
	o := rhs.(Real)
	if floatEqual(d.v, o.v) {
		return 0
	}
	return cmpOrdered(d.v, o.v)
}

func (d Real) equalSame(rhs Value) bool { return floatEqual(d.v, rhs.(Real).v) }

// A Bool is a boolean value.
type Bool struct {
	v    bool
	null bool
}

// NewBool constructs a non-null Bool.
func NewBool(v bool) Bool { return Bool{v: v} }

// NullBool constructs the null Bool.
func NullBool() Bool { return Bool{null: true} }

func (d Bool) Kind() Kind   { return KindBool }
func (d Bool) IsNull() bool { return d.null }
func (d Bool) Size() int    { return int(unsafe.Sizeof(d)) }

// Bool returns the payload. It panics on a null value.
func (d Bool) Bool() bool {
	if d.null {
		panic(nullAccess(KindBool))
	}
	return d.v
}

func (d Bool) Hash() uint64 {
	if d.null {
		return nullHash(KindBool)
	}
	var v uint64
	if d.v {
		v = 1
	}
	return hashKind(KindBool, v)
}

func (d Bool) Format(buf *bytes.Buffer) {
	switch {
	case d.null:
		buf.WriteString("NULL")
	case d.v:
		buf.WriteByte('1')
	default:
		buf.WriteByte('0')
	}
}

func (d Bool) String() string { return formatString(d) }

func (d Bool) compareSame(rhs Value) int {
	o := rhs.(Bool)
	switch {
	case d.v == o.v:
		return 0
	case o.v:
		return -1
	}
	return 1
}

func (d Bool) equalSame(rhs Value) bool { return d.v == rhs.(Bool).v }

// A Date is a calendar-day value.
type Date struct {
	v    chrono.Date
	null bool
}

// NewDate constructs a non-null Date.
func NewDate(v chrono.Date) Date { return Date{v: v} }

// NullDate constructs the null Date.
func NullDate() Date { return Date{null: true} }

func (d Date) Kind() Kind   { return KindDate }
func (d Date) IsNull() bool { return d.null }
func (d Date) Size() int    { return int(unsafe.Sizeof(d)) }

// Date returns the payload. It panics on a null value.
func (d Date) Date() chrono.Date {
	if d.null {
		panic(nullAccess(KindDate))
	}
	return d.v
}

func (d Date) Hash() uint64 {
	if d.null {
		return nullHash(KindDate)
	}
	return hashKind(KindDate, uint64(int64(d.v.Julian())))
}

func (d Date) Format(buf *bytes.Buffer) {
	if d.null {
		buf.WriteString("NULL")
		return
	}
	buf.WriteString(d.v.String())
}

func (d Date) String() string { return formatString(d) }

func (d Date) compareSame(rhs Value) int { return cmpOrdered(d.v.Julian(), rhs.(Date).v.Julian()) }
func (d Date) equalSame(rhs Value) bool  { return d.v == rhs.(Date).v }

// A Time is a time-of-day value.
type Time struct {
	v    chrono.Time
	null bool
}

// NewTime constructs a non-null Time.
func NewTime(v chrono.Time) Time { return Time{v: v} }

// NullTime constructs the null Time.
func NullTime() Time { return Time{null: true} }

func (d Time) Kind() Kind   { return KindTime }
func (d Time) IsNull() bool { return d.null }
func (d Time) Size() int    { return int(unsafe.Sizeof(d)) }

// Time returns the payload. It panics on a null value.
func (d Time) Time() chrono.Time {
	if d.null {
		panic(nullAccess(KindTime))
	}
	return d.v
}

func (d Time) Hash() uint64 {
	if d.null {
		return nullHash(KindTime)
	}
	return hashKind(KindTime, uint64(int64(d.v.Seconds())))
}

func (d Time) Format(buf *bytes.Buffer) {
	if d.null {
		buf.WriteString("NULL")
		return
	}
	buf.WriteString(d.v.String())
}

func (d Time) String() string { return formatString(d) }

func (d Time) compareSame(rhs Value) int { return cmpOrdered(d.v.Seconds(), rhs.(Time).v.Seconds()) }
func (d Time) equalSame(rhs Value) bool  { return d.v == rhs.(Time).v }

// A Timestamp is an instant value.
type Timestamp struct {
	v    chrono.Timestamp
	null bool
}

// NewTimestamp constructs a non-null Timestamp.
func NewTimestamp(v chrono.Timestamp) Timestamp { return Timestamp{v: v} }

// NullTimestamp constructs the null Timestamp.
func NullTimestamp() Timestamp { return Timestamp{null: true} }

func (d Timestamp) Kind() Kind   { return KindTimestamp }
func (d Timestamp) IsNull() bool { return d.null }
func (d Timestamp) Size() int    { return int(unsafe.Sizeof(d)) }

// Timestamp returns the payload. It panics on a null value.
func (d Timestamp) Timestamp() chrono.Timestamp {
	if d.null {
		panic(nullAccess(KindTimestamp))
	}
	return d.v
}

func (d Timestamp) Hash() uint64 {
	if d.null {
		return nullHash(KindTimestamp)
	}
	return hashKind(KindTimestamp, uint64(d.v.Unix()))
}

func (d Timestamp) Format(buf *bytes.Buffer) {
	if d.null {
		buf.WriteString("NULL")
		return
	}
	buf.WriteString(d.v.String())
}

func (d Timestamp) String() string { return formatString(d) }

func (d Timestamp) compareSame(rhs Value) int {
	return cmpOrdered(d.v.Unix(), rhs.(Timestamp).v.Unix())
}
func (d Timestamp) equalSame(rhs Value) bool { return d.v == rhs.(Timestamp).v }

// A String is an immutable byte-sequence value. A String owns its
// storage: both constructors copy as needed, so no outside alias can
// mutate the payload. Ordering and equality use collation, not raw
// byte order.
type String struct {
	v    string
	null bool
}

// NewString constructs a non-null String.
func NewString(v string) String { return String{v: v} }

// NewStringBytes constructs a non-null String from a copy of b.
func NewStringBytes(b []byte) String { return String{v: string(b)} }

// NullString constructs the null String.
func NullString() String { return String{null: true} }

func (d String) Kind() Kind   { return KindString }
func (d String) IsNull() bool { return d.null }

// Size reports the variant base size plus the payload length and its
// terminating sentinel.
func (d String) Size() int { return int(unsafe.Sizeof(d)) + len(d.v) + 1 }

// Str returns the payload. It panics on a null value.
func (d String) Str() string {
	if d.null {
		panic(nullAccess(KindString))
	}
	return d.v
}

// Len returns the payload length in bytes.
func (d String) Len() int { return len(d.v) }

// Hash is computed over the collation key, so strings that collate
// equal hash equal.
func (d String) Hash() uint64 {
	if d.null {
		return nullHash(KindString)
	}
	h := xxhash.New()
	h.Write([]byte{byte(KindString)})
	h.Write(collationKey(d.v))
	return h.Sum64()
}

// Format appends the raw payload bytes, with no quoting.
func (d String) Format(buf *bytes.Buffer) {
	if d.null {
		buf.WriteString("NULL")
		return
	}
	buf.WriteString(d.v)
}

func (d String) String() string { return formatString(d) }

func (d String) compareSame(rhs Value) int { return collateStrings(d.v, rhs.(String).v) }
func (d String) equalSame(rhs Value) bool  { return collateStrings(d.v, rhs.(String).v) == 0 }

// BaseSize reports the payload-independent size of the given kind, in
// bytes. For String, Size adds the payload length plus one.
func BaseSize(k Kind) int {
	switch k {
	case KindInt:
		return int(unsafe.Sizeof(Int{}))
	case KindReal:
		return int(unsafe.Sizeof(Real{}))
	case KindBool:
		return int(unsafe.Sizeof(Bool{}))
	case KindDate:
		return int(unsafe.Sizeof(Date{}))
	case KindTime:
		return int(unsafe.Sizeof(Time{}))
	case KindTimestamp:
		return int(unsafe.Sizeof(Timestamp{}))
	case KindString:
		return int(unsafe.Sizeof(String{}))
	}
	return 0
}

func formatString(v Value) string {
	var buf bytes.Buffer
	v.Format(&buf)
	return buf.String()
}

// cmpOrdered is a three-way comparison on an ordered payload.
func cmpOrdered[T int32 | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
