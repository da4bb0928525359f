package value_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/creachadair/mds/mtest"

	"github.com/csvsql/csvsql/chrono"
	"github.com/csvsql/csvsql/value"
)

func TestKindsAndAccessors(t *testing.T) {
	d := chrono.NewDate(2015, 6, 14)
	tm := chrono.NewTime(13, 4, 5)
	ts := chrono.NewTimestamp(2015, 6, 14, 13, 4, 5)

	tests := []struct {
		v    value.Value
		kind value.Kind
	}{
		{value.NewInt(4711), value.KindInt},
		{value.NewReal(47.11), value.KindReal},
		{value.NewBool(true), value.KindBool},
		{value.NewDate(d), value.KindDate},
		{value.NewTime(tm), value.KindTime},
		{value.NewTimestamp(ts), value.KindTimestamp},
		{value.NewString("hutzli"), value.KindString},
	}
	for _, test := range tests {
		if got := test.v.Kind(); got != test.kind {
			t.Errorf("%v: got kind %v, want %v", test.v, got, test.kind)
		}
		if test.v.IsNull() {
			t.Errorf("%v: non-null value reports null", test.v)
		}
	}

	if got := value.NewInt(4711).Int64(); got != 4711 {
		t.Errorf("Int64: got %d, want 4711", got)
	}
	if got := value.NewReal(47.11).Float64(); got != 47.11 {
		t.Errorf("Float64: got %v, want 47.11", got)
	}
	if got := value.NewBool(true).Bool(); !got {
		t.Error("Bool: got false, want true")
	}
	if got := value.NewDate(d).Date(); got != d {
		t.Errorf("Date: got %v, want %v", got, d)
	}
	if got := value.NewTime(tm).Time(); got != tm {
		t.Errorf("Time: got %v, want %v", got, tm)
	}
	if got := value.NewTimestamp(ts).Timestamp(); got != ts {
		t.Errorf("Timestamp: got %v, want %v", got, ts)
	}
	if got := value.NewString("hutzli").Str(); got != "hutzli" {
		t.Errorf("Str: got %q, want hutzli", got)
	}
}

func TestNullAccessPanics(t *testing.T) {
	mtest.MustPanic(t, func() { value.NullInt().Int64() })
	mtest.MustPanic(t, func() { value.NullReal().Float64() })
	mtest.MustPanic(t, func() { value.NullBool().Bool() })
	mtest.MustPanic(t, func() { value.NullDate().Date() })
	mtest.MustPanic(t, func() { value.NullTime().Time() })
	mtest.MustPanic(t, func() { value.NullTimestamp().Timestamp() })
	mtest.MustPanic(t, func() { value.NullString().Str() })
}

func TestKindMismatchPanics(t *testing.T) {
	mtest.MustPanic(t, func() { value.AsInt(value.NewBool(true)) })
	mtest.MustPanic(t, func() { value.AsString(value.NewInt(1)) })
	mtest.MustPanic(t, func() { value.Compare(value.NewInt(1), value.NewReal(1)) })
}

func TestAsHelpers(t *testing.T) {
	vs := []value.Value{value.NewInt(-3), value.NewString("abc"), value.NewBool(false)}
	if got := value.AsInt(vs[0]); got != -3 {
		t.Errorf("AsInt: got %d, want -3", got)
	}
	if got := value.AsString(vs[1]); got != "abc" {
		t.Errorf("AsString: got %q, want abc", got)
	}
	if got := value.AsBool(vs[2]); got {
		t.Error("AsBool: got true, want false")
	}
}

func TestRendering(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.NewInt(4711), "4711"},
		{value.NewInt(-38793), "-38793"},
		{value.NewReal(3.14), "3.140000"},
		{value.NewReal(-0.5), "-0.500000"},
		{value.NewBool(true), "1"},
		{value.NewBool(false), "0"},
		{value.NewDate(chrono.NewDate(2015, 6, 14)), "2015-06-14"},
		{value.NewTime(chrono.NewTime(9, 5, 7)), "09:05:07"},
		{value.NewTimestamp(chrono.NewTimestamp(2015, 6, 14, 9, 5, 7)), "2015-06-14T09:05:07"},
		{value.NewString("View from the floor"), "View from the floor"},
		{value.NullInt(), "NULL"},
		{value.NullReal(), "NULL"},
		{value.NullBool(), "NULL"},
		{value.NullDate(), "NULL"},
		{value.NullTime(), "NULL"},
		{value.NullTimestamp(), "NULL"},
		{value.NullString(), "NULL"},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestRenderingRoundTrip(t *testing.T) {
	iv := value.NewInt(-4711)
	if n, err := strconv.ParseInt(iv.String(), 10, 64); err != nil || n != iv.Int64() {
		t.Errorf("Int round trip: got %d, %v", n, err)
	}

	dv := value.NewDate(chrono.NewDate(1999, 12, 31))
	if d, err := chrono.ParseDate(dv.String()); err != nil || d != dv.Date() {
		t.Errorf("Date round trip: got %v, %v", d, err)
	}

	tv := value.NewTime(chrono.NewTime(23, 59, 59))
	if tm, err := chrono.ParseTime(tv.String()); err != nil || tm != tv.Time() {
		t.Errorf("Time round trip: got %v, %v", tm, err)
	}

	sv := value.NewTimestamp(chrono.NewTimestamp(2008, 2, 29, 1, 2, 3))
	if ts, err := chrono.ParseTimestamp(sv.String()); err != nil || ts != sv.Timestamp() {
		t.Errorf("Timestamp round trip: got %v, %v", ts, err)
	}

	bv := value.NewBool(true)
	if b, err := strconv.ParseBool(bv.String()); err != nil || b != bv.Bool() {
		t.Errorf("Bool round trip: got %v, %v", b, err)
	}
}

func TestSize(t *testing.T) {
	for _, s := range []string{"", "hello", "a considerably longer payload"} {
		got := value.NewString(s).Size()
		want := value.BaseSize(value.KindString) + len(s) + 1
		if got != want {
			t.Errorf("Size(String(%q)): got %d, want %d", s, got, want)
		}
	}

	fixed := []value.Value{
		value.NewInt(1),
		value.NewReal(1),
		value.NewBool(true),
		value.NewDate(chrono.NewDate(2000, 1, 1)),
		value.NewTime(chrono.NewTime(0, 0, 0)),
		value.NewTimestamp(chrono.NewTimestamp(2000, 1, 1, 0, 0, 0)),
	}
	for _, v := range fixed {
		if got := v.Size(); got != value.BaseSize(v.Kind()) {
			t.Errorf("Size(%v %v): got %d, want %d", v.Kind(), v, got, value.BaseSize(v.Kind()))
		}
	}

	// Null values account the same as non-null ones of their kind.
	if got := value.NullInt().Size(); got != value.BaseSize(value.KindInt) {
		t.Errorf("Size(null INT): got %d, want %d", got, value.BaseSize(value.KindInt))
	}
}

func TestMake(t *testing.T) {
	d := chrono.NewDate(2015, 6, 14)
	tests := []struct {
		kind value.Kind
		in   any
		want string
	}{
		{value.KindInt, int64(42), "42"},
		{value.KindInt, 42, "42"},
		{value.KindReal, 2.5, "2.500000"},
		{value.KindBool, true, "1"},
		{value.KindDate, d, "2015-06-14"},
		{value.KindTime, chrono.NewTime(1, 2, 3), "01:02:03"},
		{value.KindTimestamp, chrono.NewTimestamp(2015, 6, 14, 1, 2, 3), "2015-06-14T01:02:03"},
		{value.KindString, "abc", "abc"},
		{value.KindString, []byte("abc"), "abc"},
	}
	for _, test := range tests {
		v, err := value.Make(test.kind, test.in)
		if err != nil {
			t.Errorf("Make(%v, %v): unexpected error: %v", test.kind, test.in, err)
			continue
		}
		if v.Kind() != test.kind {
			t.Errorf("Make(%v, %v): got kind %v", test.kind, test.in, v.Kind())
		}
		if got := v.String(); got != test.want {
			t.Errorf("Make(%v, %v): rendered %q, want %q", test.kind, test.in, got, test.want)
		}
	}

	for _, kind := range []value.Kind{
		value.KindInt, value.KindReal, value.KindBool, value.KindDate,
		value.KindTime, value.KindTimestamp, value.KindString,
	} {
		v, err := value.Make(kind, nil)
		if err != nil {
			t.Errorf("Make(%v, nil): unexpected error: %v", kind, err)
		} else if !v.IsNull() || v.Kind() != kind {
			t.Errorf("Make(%v, nil): got %v/%v, want a null of the kind", kind, v.Kind(), v)
		}
	}

	_, err := value.Make(value.KindInt, "not an int")
	var verr *value.Error
	if !errors.As(err, &verr) || verr.Code != value.ConversionFailed {
		t.Errorf("Make with bad payload: got %v, want ConversionFailed", err)
	}
	if _, err := value.Make(value.KindDate, int64(7)); err == nil {
		t.Error("Make(DATE, int64) did not report an error")
	}
}
