// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/nepali/numerals"
)

// Era distinguishes Gregorian (AD) from Bikram Sambat (BS) dates.
type Era int

const (
	AD Era = iota
	BS
)

func (e Era) String() string {
	if e == BS {
		return "BS"
	}
	return "AD"
}

// Weekday is a day of the week in the range 1-7 with Sunday, the first
// day of the week in Nepal, being 1.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w-1]
}

// normalizeWeekday maps n onto 1-7 such that a multiple of 7 is Saturday.
func normalizeWeekday(n int) Weekday {
	w := n % 7
	if w <= 0 {
		w += 7
	}
	return Weekday(w)
}

// CalendarDate is a fully resolved date in either calendar along with
// the metadata required to lay it out in a calendar grid.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
	Era   Era

	FirstWeekday Weekday // weekday of the first day of the containing month.
	LastWeekday  Weekday // weekday of the last day of the containing month.
	DaysInMonth  int

	// WeekdayOccurrence is the 1-based position of this day amongst the
	// days of the month that share its weekday, eg. 2 for the second Friday.
	WeekdayOccurrence int
	Weekday           Weekday
	DayOfYear         int
	WeekOfMonth       int
	WeekOfYear        int
}

// Simple returns the year, month and day of cd.
func (cd CalendarDate) Simple() SimpleDate {
	return SimpleDate{Year: cd.Year, Month: cd.Month, Day: cd.Day}
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %v", cd.Year, cd.Month, cd.Day, cd.Era)
}

// Compare compares date to the specified year, month and day returning
// -1, 0 or 1 if date is before, the same as or after it.
func Compare(date CalendarDate, year, month, day int) int {
	return date.Simple().Compare(SimpleDate{Year: year, Month: month, Day: day})
}

// SimpleDate is a year, month and day without any derived metadata. It
// is used as a lightweight input and storage type and marshals to and
// from the yyyy-mm-dd form.
type SimpleDate struct {
	Year  int
	Month int
	Day   int
}

// NewSimpleDate returns a SimpleDate for the specified year, month and day.
func NewSimpleDate(year, month, day int) SimpleDate {
	return SimpleDate{Year: year, Month: month, Day: day}
}

func (sd SimpleDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", sd.Year, sd.Month, sd.Day)
}

// Compare returns -1, 0 or 1 if sd is before, the same as, or after o.
func (sd SimpleDate) Compare(o SimpleDate) int {
	switch {
	case sd.Year != o.Year:
		return cmpInt(sd.Year, o.Year)
	case sd.Month != o.Month:
		return cmpInt(sd.Month, o.Month)
	default:
		return cmpInt(sd.Day, o.Day)
	}
}

// Before returns true if sd is before o.
func (sd SimpleDate) Before(o SimpleDate) bool {
	return sd.Compare(o) < 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ParseSimpleDate parses a date in the forms yyyy-mm-dd or yyyy/mm/dd.
// Devanagari digits are accepted as well as ASCII ones. Only the syntax
// is checked, use the conversion functions to validate the date itself.
func ParseSimpleDate(val string) (SimpleDate, error) {
	val = numerals.ToASCII(strings.TrimSpace(val))
	sep := "-"
	if strings.Contains(val, "/") {
		sep = "/"
	}
	parts := strings.Split(val, sep)
	if len(parts) != 3 {
		return SimpleDate{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd or yyyy/mm/dd", val)
	}
	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return SimpleDate{}, fmt.Errorf("invalid date %q: %w", val, err)
		}
		fields[i] = n
	}
	return SimpleDate{Year: fields[0], Month: fields[1], Day: fields[2]}, nil
}

// Parse parses val as per ParseSimpleDate.
func (sd *SimpleDate) Parse(val string) error {
	d, err := ParseSimpleDate(val)
	if err != nil {
		return err
	}
	*sd = d
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (sd SimpleDate) MarshalText() ([]byte, error) {
	return []byte(sd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (sd *SimpleDate) UnmarshalText(text []byte) error {
	return sd.Parse(string(text))
}
