// Package chrono provides the integer-backed calendar types used for
// table cell values: a Julian-day Date, a seconds-of-day Time, and a
// Unix-epoch Timestamp. All three order naturally by their backing
// integer, and each renders to a fixed ISO-style textual form that its
// Parse counterpart accepts back.
package chrono

import (
	"fmt"
	"time"
)

// A Date is a calendar day, stored as a Julian day number.
type Date int32

// NewDate constructs the Date for the given proleptic Gregorian
// calendar day.
func NewDate(year, month, day int) Date {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return Date(jdn)
}

// FromJulian constructs a Date from a raw Julian day number.
func FromJulian(jdn int32) Date { return Date(jdn) }

// Julian returns the Julian day number of d.
func (d Date) Julian() int32 { return int32(d) }

// civil decomposes the Julian day number into a Gregorian calendar day.
func (d Date) civil() (year, month, day int) {
	j := int(d) + 32044
	g := j / 146097
	dg := j % 146097
	c := (dg/36524 + 1) * 3 / 4
	dc := dg - c*36524
	b := dc / 1461
	db := dc % 1461
	a := (db/365 + 1) * 3 / 4
	da := db - a*365
	y := g*400 + c*100 + b*4 + a
	m := (da*5+308)/153 - 2
	dd := da - (m+4)*153/5 + 122
	return y - 4800 + (m+2)/12, (m+2)%12 + 1, dd + 1
}

// Year returns the Gregorian year of d.
func (d Date) Year() int { y, _, _ := d.civil(); return y }

// Month returns the Gregorian month of d, 1-based.
func (d Date) Month() int { _, m, _ := d.civil(); return m }

// Day returns the day of the month of d, 1-based.
func (d Date) Day() int { _, _, dd := d.civil(); return dd }

// String renders d as "YYYY-MM-DD".
func (d Date) String() string {
	y, m, dd := d.civil()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, dd)
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, err
	}
	return NewDate(t.Year(), int(t.Month()), t.Day()), nil
}

// A Time is a time of day, stored as seconds since midnight.
type Time int32

// NewTime constructs the Time for the given hour, minute, and second.
func NewTime(hour, min, sec int) Time {
	return Time(hour*3600 + min*60 + sec)
}

// Seconds returns the number of seconds since midnight.
func (t Time) Seconds() int32 { return int32(t) }

// Hour returns the hour of t, 0 through 23.
func (t Time) Hour() int { return int(t) / 3600 }

// Minute returns the minute of t, 0 through 59.
func (t Time) Minute() int { return int(t) / 60 % 60 }

// Second returns the second of t, 0 through 59.
func (t Time) Second() int { return int(t) % 60 }

// String renders t as "HH:MM:SS".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// ParseTime parses an "HH:MM:SS" string into a Time.
func ParseTime(s string) (Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return 0, err
	}
	return NewTime(t.Hour(), t.Minute(), t.Second()), nil
}

// A Timestamp is an instant, stored as seconds since the Unix epoch
// and rendered in UTC.
type Timestamp int64

// NewTimestamp constructs the Timestamp for the given UTC calendar
// instant.
func NewTimestamp(year, month, day, hour, min, sec int) Timestamp {
	t := time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
	return Timestamp(t.Unix())
}

// FromUnix constructs a Timestamp from seconds since the Unix epoch.
func FromUnix(sec int64) Timestamp { return Timestamp(sec) }

// Unix returns the number of seconds since the Unix epoch.
func (t Timestamp) Unix() int64 { return int64(t) }

// Date returns the calendar day of t in UTC.
func (t Timestamp) Date() Date {
	u := time.Unix(int64(t), 0).UTC()
	return NewDate(u.Year(), int(u.Month()), u.Day())
}

// Time returns the time of day of t in UTC.
func (t Timestamp) Time() Time {
	u := time.Unix(int64(t), 0).UTC()
	return NewTime(u.Hour(), u.Minute(), u.Second())
}

// String renders t as "YYYY-MM-DDTHH:MM:SS".
func (t Timestamp) String() string {
	return time.Unix(int64(t), 0).UTC().Format("2006-01-02T15:04:05")
}

// ParseTimestamp parses a "YYYY-MM-DDTHH:MM:SS" string into a
// Timestamp, interpreted as UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return 0, err
	}
	return Timestamp(t.Unix()), nil
}
