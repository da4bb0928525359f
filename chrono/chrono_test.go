package chrono_test

import (
	"testing"

	"github.com/csvsql/csvsql/chrono"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		y, m, d int
		jdn     int32
	}{
		{1970, 1, 1, 2440588},
		{2000, 1, 1, 2451545},
		{2015, 6, 14, 2457188},
		{1999, 12, 31, 2451544},
	}
	for _, test := range tests {
		d := chrono.NewDate(test.y, test.m, test.d)
		if got := d.Julian(); got != test.jdn {
			t.Errorf("NewDate(%d, %d, %d): got JDN %d, want %d", test.y, test.m, test.d, got, test.jdn)
		}
		if d.Year() != test.y || d.Month() != test.m || d.Day() != test.d {
			t.Errorf("JDN %d: got %d-%d-%d, want %d-%d-%d",
				test.jdn, d.Year(), d.Month(), d.Day(), test.y, test.m, test.d)
		}
		if got := chrono.FromJulian(test.jdn); got != d {
			t.Errorf("FromJulian(%d): got %v, want %v", test.jdn, got, d)
		}
	}
}

func TestDateString(t *testing.T) {
	d := chrono.NewDate(2015, 6, 4)
	if got := d.String(); got != "2015-06-04" {
		t.Errorf("String: got %q, want 2015-06-04", got)
	}
	back, err := chrono.ParseDate(d.String())
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip: got %v, want %v", back, d)
	}
	if _, err := chrono.ParseDate("not a date"); err == nil {
		t.Error("ParseDate accepted garbage")
	}
}

func TestTime(t *testing.T) {
	tm := chrono.NewTime(13, 4, 5)
	if got := tm.Seconds(); got != 13*3600+4*60+5 {
		t.Errorf("Seconds: got %d", got)
	}
	if tm.Hour() != 13 || tm.Minute() != 4 || tm.Second() != 5 {
		t.Errorf("split: got %d:%d:%d", tm.Hour(), tm.Minute(), tm.Second())
	}
	if got := tm.String(); got != "13:04:05" {
		t.Errorf("String: got %q, want 13:04:05", got)
	}
	back, err := chrono.ParseTime("13:04:05")
	if err != nil || back != tm {
		t.Errorf("ParseTime: got %v, %v", back, err)
	}
	if got := chrono.NewTime(0, 0, 0).String(); got != "00:00:00" {
		t.Errorf("midnight: got %q", got)
	}
}

func TestTimestamp(t *testing.T) {
	ts := chrono.NewTimestamp(2015, 6, 14, 13, 4, 5)
	if got := ts.String(); got != "2015-06-14T13:04:05" {
		t.Errorf("String: got %q", got)
	}
	back, err := chrono.ParseTimestamp("2015-06-14T13:04:05")
	if err != nil || back != ts {
		t.Errorf("ParseTimestamp: got %v, %v", back, err)
	}

	if got := ts.Date(); got != chrono.NewDate(2015, 6, 14) {
		t.Errorf("Date: got %v", got)
	}
	if got := ts.Time(); got != chrono.NewTime(13, 4, 5) {
		t.Errorf("Time: got %v", got)
	}

	epoch := chrono.NewTimestamp(1970, 1, 1, 0, 0, 0)
	if got := epoch.Unix(); got != 0 {
		t.Errorf("epoch Unix: got %d, want 0", got)
	}
	if got := chrono.FromUnix(86400).String(); got != "1970-01-02T00:00:00" {
		t.Errorf("FromUnix day two: got %q", got)
	}
}
