package value

import (
	"fmt"

	"github.com/csvsql/csvsql/chrono"
)

// NullOf returns the null value of the given kind.
func NullOf(k Kind) Value {
	switch k {
	case KindInt:
		return NullInt()
	case KindReal:
		return NullReal()
	case KindBool:
		return NullBool()
	case KindDate:
		return NullDate()
	case KindTime:
		return NullTime()
	case KindTimestamp:
		return NullTimestamp()
	case KindString:
		return NullString()
	}
	panic(&Error{Code: ConversionFailed, Message: fmt.Sprintf("invalid kind %d", k)})
}

// Make constructs a Value of the given kind from an untyped payload.
// A nil payload yields the null of the kind. A payload whose dynamic
// type cannot satisfy the kind is a ConversionFailed error.
func Make(kind Kind, v any) (Value, error) {
	if v == nil {
		return NullOf(kind), nil
	}
	switch kind {
	case KindInt:
		switch t := v.(type) {
		case int64:
			return NewInt(t), nil
		case int:
			return NewInt(int64(t)), nil
		}
	case KindReal:
		if t, ok := v.(float64); ok {
			return NewReal(t), nil
		}
	case KindBool:
		if t, ok := v.(bool); ok {
			return NewBool(t), nil
		}
	case KindDate:
		if t, ok := v.(chrono.Date); ok {
			return NewDate(t), nil
		}
	case KindTime:
		if t, ok := v.(chrono.Time); ok {
			return NewTime(t), nil
		}
	case KindTimestamp:
		if t, ok := v.(chrono.Timestamp); ok {
			return NewTimestamp(t), nil
		}
	case KindString:
		switch t := v.(type) {
		case string:
			return NewString(t), nil
		case []byte:
			return NewStringBytes(t), nil
		}
	}
	return nil, &Error{
		Code:    ConversionFailed,
		Message: fmt.Sprintf("cannot construct %s from %T", kind, v),
	}
}

// The As helpers recover a variant payload from a Value held behind
// the interface. Access against the wrong variant or against a null
// panics with an *Error, matching the accessor contract of the
// concrete types.

// AsInt returns the Int payload of v.
func AsInt(v Value) int64 { return mustKind[Int](v, KindInt).Int64() }

// AsReal returns the Real payload of v.
func AsReal(v Value) float64 { return mustKind[Real](v, KindReal).Float64() }

// AsBool returns the Bool payload of v.
func AsBool(v Value) bool { return mustKind[Bool](v, KindBool).Bool() }

// AsDate returns the Date payload of v.
func AsDate(v Value) chrono.Date { return mustKind[Date](v, KindDate).Date() }

// AsTime returns the Time payload of v.
func AsTime(v Value) chrono.Time { return mustKind[Time](v, KindTime).Time() }

// AsTimestamp returns the Timestamp payload of v.
func AsTimestamp(v Value) chrono.Timestamp {
	return mustKind[Timestamp](v, KindTimestamp).Timestamp()
}

// AsString returns the String payload of v.
func AsString(v Value) string { return mustKind[String](v, KindString).Str() }

func mustKind[T Value](v Value, want Kind) T {
	t, ok := v.(T)
	if !ok {
		panic(&Error{
			Code:    KindMismatch,
			Message: fmt.Sprintf("access of %s value as %s", v.Kind(), want),
		})
	}
	return t
}
