// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import "time"

// NepalTime is Nepal Standard Time, a fixed offset of +05:45 from UTC.
var NepalTime = time.FixedZone("NPT", 5*60*60+45*60)

// AddDays returns the Bikram Sambat date that is days after sd, days
// may be negative.
func (c *Converter) AddDays(sd SimpleDate, days int) (SimpleDate, error) {
	if err := c.table.validate(sd.Year, sd.Month, sd.Day); err != nil {
		return SimpleDate{}, err
	}
	idx := c.table.index(sd)
	nd, ok := c.table.dateAt(idx + days)
	if !ok {
		return SimpleDate{}, &RangeError{
			Era:   BS,
			Field: "days",
			Value: days,
			Min:   -idx,
			Max:   c.table.TotalDays() - 1 - idx,
		}
	}
	return nd, nil
}

// DaysBetween returns the number of days from a to b, which is negative
// if b is before a.
func (c *Converter) DaysBetween(a, b SimpleDate) (int, error) {
	if err := c.table.validate(a.Year, a.Month, a.Day); err != nil {
		return 0, err
	}
	if err := c.table.validate(b.Year, b.Month, b.Day); err != nil {
		return 0, err
	}
	return c.table.index(b) - c.table.index(a), nil
}

// Today returns the Bikram Sambat date for the supplied instant as
// observed in Nepal.
func (c *Converter) Today(now time.Time) (CalendarDate, error) {
	now = now.In(NepalTime)
	return c.ToBS(now.Year(), int(now.Month()), now.Day())
}

// AddDays is like Converter.AddDays but uses the default table.
func AddDays(sd SimpleDate, days int) (SimpleDate, error) {
	return defaultConverter.AddDays(sd, days)
}

// DaysBetween is like Converter.DaysBetween but uses the default table.
func DaysBetween(a, b SimpleDate) (int, error) {
	return defaultConverter.DaysBetween(a, b)
}

// Today is like Converter.Today but uses the default table.
func Today(now time.Time) (CalendarDate, error) {
	return defaultConverter.Today(now)
}
