// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Converter converts dates between the two calendars using a specific
// month-length table. It has no mutable state and is safe for concurrent
// use.
type Converter struct {
	table    *Table
	anchorAD CalendarDate
	anchorBS CalendarDate
	lastAD   SimpleDate
}

var defaultConverter = mustNewConverter(defaultTable)

func mustNewConverter(t *Table) *Converter {
	c, err := NewConverter(t)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultConverter returns the Converter for the embedded table.
func DefaultConverter() *Converter {
	return defaultConverter
}

// NewConverter returns a Converter for the supplied table, which must
// start with the year of the Bikram Sambat anchor.
func NewConverter(t *Table) (*Converter, error) {
	if t.FirstYear() != anchorBS.Year {
		return nil, fmt.Errorf("month length table starts at %d, not at the anchor year %d", t.FirstYear(), anchorBS.Year)
	}
	bs := anchorBS
	bs.DaysInMonth = t.days(bs.Year, bs.Month)
	bs.LastWeekday = normalizeWeekday(int(bs.Weekday) + bs.DaysInMonth - bs.Day)
	last := adTime(anchorAD.Simple()).AddDate(0, 0, t.TotalDays()-1)
	return &Converter{
		table:    t,
		anchorAD: anchorAD,
		anchorBS: bs,
		lastAD:   SimpleDate{Year: last.Year(), Month: int(last.Month()), Day: last.Day()},
	}, nil
}

// Table returns the month-length table used by c.
func (c *Converter) Table() *Table {
	return c.table
}

// AnchorBS returns the Bikram Sambat anchor as seen through the table used by c.
func (c *Converter) AnchorBS() CalendarDate {
	return c.anchorBS
}

// FirstAD returns the earliest Gregorian date that can be converted.
func (c *Converter) FirstAD() SimpleDate {
	return c.anchorAD.Simple()
}

// LastAD returns the latest Gregorian date that can be converted.
func (c *Converter) LastAD() SimpleDate {
	return c.lastAD
}

// FirstBS returns the earliest Bikram Sambat date that can be converted.
func (c *Converter) FirstBS() SimpleDate {
	return SimpleDate{Year: c.table.FirstYear(), Month: 1, Day: 1}
}

// LastBS returns the latest Bikram Sambat date that can be converted.
func (c *Converter) LastBS() SimpleDate {
	y := c.table.LastYear()
	return SimpleDate{Year: y, Month: 12, Day: c.table.days(y, 12)}
}

func adTime(sd SimpleDate) time.Time {
	return time.Date(sd.Year, time.Month(sd.Month), sd.Day, 0, 0, 0, 0, time.UTC)
}

// elapsedDays returns the number of days from a to b using the proleptic
// Gregorian calendar.
func elapsedDays(a, b SimpleDate) int {
	return int(adTime(b).Sub(adTime(a)).Hours() / 24)
}

func gregorianDays(year, month int) int {
	return datetime.DaysInMonth(year, datetime.Month(month))
}

func (c *Converter) validateAD(year, month, day int) error {
	if err := checkField(AD, "year", year, c.anchorAD.Year, c.lastAD.Year); err != nil {
		return err
	}
	if err := checkField(AD, "month", month, 1, 12); err != nil {
		return err
	}
	if err := checkField(AD, "day", day, 1, gregorianDays(year, month)); err != nil {
		return err
	}
	sd := SimpleDate{Year: year, Month: month, Day: day}
	if sd.Before(c.anchorAD.Simple()) || c.lastAD.Before(sd) {
		first := c.anchorAD
		return &RangeError{
			Era:   AD,
			Field: "date",
			Value: packDate(year, month, day),
			Min:   packDate(first.Year, first.Month, first.Day),
			Max:   packDate(c.lastAD.Year, c.lastAD.Month, c.lastAD.Day),
		}
	}
	return nil
}

// ToBS converts the Gregorian date to Bikram Sambat.
func (c *Converter) ToBS(year, month, day int) (CalendarDate, error) {
	if err := c.validateAD(year, month, day); err != nil {
		return CalendarDate{}, err
	}
	days := elapsedDays(c.anchorAD.Simple(), SimpleDate{Year: year, Month: month, Day: day})
	w := walker{date: c.anchorBS, monthLength: c.table.days}
	w.advance(days)
	return w.date, nil
}

// ToAD converts the Bikram Sambat date to Gregorian.
func (c *Converter) ToAD(year, month, day int) (CalendarDate, error) {
	if err := c.table.validate(year, month, day); err != nil {
		return CalendarDate{}, err
	}
	days := c.table.index(SimpleDate{Year: year, Month: month, Day: day}) - c.table.index(c.anchorBS.Simple())
	w := walker{date: c.anchorAD, monthLength: gregorianDays}
	w.advance(days)
	return w.date, nil
}

// DaysInMonth returns the number of days in the Bikram Sambat month.
func (c *Converter) DaysInMonth(year, month int) (int, error) {
	return c.table.DaysInMonth(year, month)
}

// ToBS converts the Gregorian date to Bikram Sambat using the default
// table.
func ToBS(year, month, day int) (CalendarDate, error) {
	return defaultConverter.ToBS(year, month, day)
}

// ToAD converts the Bikram Sambat date to Gregorian using the default
// table.
func ToAD(year, month, day int) (CalendarDate, error) {
	return defaultConverter.ToAD(year, month, day)
}

// DaysInMonth returns the number of days in the Bikram Sambat month using
// the default table.
func DaysInMonth(year, month int) (int, error) {
	return defaultConverter.DaysInMonth(year, month)
}
