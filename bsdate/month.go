// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import "fmt"

// MonthSummary describes a Bikram Sambat month for the purposes of laying
// it out as a calendar grid.
type MonthSummary struct {
	Year         int
	Month        int
	DaysInMonth  int
	FirstWeekday Weekday
	LastWeekday  Weekday
}

// LeadingBlanks returns the number of empty cells that precede the first
// day of the month in a grid whose rows start on Sunday.
func (ms MonthSummary) LeadingBlanks() int {
	return int(ms.FirstWeekday) - 1
}

func (ms MonthSummary) String() string {
	return fmt.Sprintf("%04d-%02d: %d days, %v to %v", ms.Year, ms.Month, ms.DaysInMonth, ms.FirstWeekday, ms.LastWeekday)
}

// Grid is a calendar grid of six weeks, Sunday first. Cells that do not
// belong to the month are zero.
type Grid [6][7]int

// Grid returns the calendar grid for the month.
func (ms MonthSummary) Grid() Grid {
	var g Grid
	cell := ms.LeadingBlanks()
	for day := 1; day <= ms.DaysInMonth; day++ {
		g[cell/7][cell%7] = day
		cell++
	}
	return g
}

// Weeks returns the number of rows of the grid that contain days of the
// month.
func (ms MonthSummary) Weeks() int {
	return (ms.LeadingBlanks() + ms.DaysInMonth + 6) / 7
}

// AddMonths adds months to the specified year and month, carrying into
// the year as required. months may be negative.
func AddMonths(year, month, months int) (int, int) {
	n := year*12 + (month - 1) + months
	y, m := n/12, n%12
	if m < 0 {
		y--
		m += 12
	}
	return y, m + 1
}

// firstWeekday returns the weekday of the first day of a valid month by
// counting the days between it and the anchor month.
func (c *Converter) firstWeekday(year, month int) Weekday {
	days := c.table.daysBefore(year, month) - c.table.daysBefore(c.anchorBS.Year, c.anchorBS.Month)
	return normalizeWeekday(int(c.anchorBS.FirstWeekday) + days)
}

// MonthSummary returns the MonthSummary for the Bikram Sambat month.
func (c *Converter) MonthSummary(year, month int) (MonthSummary, error) {
	if err := c.table.checkYearMonth(year, month); err != nil {
		return MonthSummary{}, err
	}
	first := c.firstWeekday(year, month)
	days := c.table.days(year, month)
	return MonthSummary{
		Year:         year,
		Month:        month,
		DaysInMonth:  days,
		FirstWeekday: first,
		LastWeekday:  normalizeWeekday(int(first) + days - 1),
	}, nil
}

// MonthSummaryWithOffset returns the MonthSummary for the month that is
// offset months away from the specified one, eg. an offset of 1 from
// Chaitra 2080 is Baisakh 2081. The specified month must itself be in
// the range 1-12; only the sum of month and offset is carried into the
// year.
func (c *Converter) MonthSummaryWithOffset(year, month, offset int) (MonthSummary, error) {
	if err := c.table.checkYearMonth(year, month); err != nil {
		return MonthSummary{}, err
	}
	year, month = AddMonths(year, month, offset)
	return c.MonthSummary(year, month)
}

// Year returns the summaries for all twelve months of the year.
func (c *Converter) Year(year int) ([]MonthSummary, error) {
	months := make([]MonthSummary, 12)
	for m := range months {
		ms, err := c.MonthSummary(year, m+1)
		if err != nil {
			return nil, err
		}
		months[m] = ms
	}
	return months, nil
}

// DateInMonth resolves the metadata for a Bikram Sambat date without
// walking from the anchor, which makes it suitable for populating every
// cell of a calendar grid. WeekOfYear is approximate: it is counted from
// the first weekday of the containing month rather than of the year and
// so may differ by one from the value returned by ToBS for months other
// than Baisakh.
func (c *Converter) DateInMonth(sd SimpleDate) (CalendarDate, error) {
	if err := c.table.validate(sd.Year, sd.Month, sd.Day); err != nil {
		return CalendarDate{}, err
	}
	first := c.firstWeekday(sd.Year, sd.Month)
	days := c.table.days(sd.Year, sd.Month)
	dayOfYear := c.table.daysBefore(sd.Year, sd.Month) - c.table.daysBefore(sd.Year, 1) + sd.Day
	return CalendarDate{
		Year:              sd.Year,
		Month:             sd.Month,
		Day:               sd.Day,
		Era:               BS,
		FirstWeekday:      first,
		LastWeekday:       normalizeWeekday(int(first) + days - 1),
		DaysInMonth:       days,
		WeekdayOccurrence: (sd.Day-1)/7 + 1,
		Weekday:           normalizeWeekday(int(first) + sd.Day - 1),
		DayOfYear:         dayOfYear,
		WeekOfMonth:       ((sd.Day-1)+(int(first)-1))/7 + 1,
		WeekOfYear:        ((dayOfYear-1)+(int(first)-1))/7 + 1,
	}, nil
}

// MonthSummaryOf returns the MonthSummary for the Bikram Sambat month
// using the default table.
func MonthSummaryOf(year, month int) (MonthSummary, error) {
	return defaultConverter.MonthSummary(year, month)
}

// MonthSummaryWithOffset is like Converter.MonthSummaryWithOffset but
// uses the default table.
func MonthSummaryWithOffset(year, month, offset int) (MonthSummary, error) {
	return defaultConverter.MonthSummaryWithOffset(year, month, offset)
}

// DateInMonth is like Converter.DateInMonth but uses the default table.
func DateInMonth(sd SimpleDate) (CalendarDate, error) {
	return defaultConverter.DateInMonth(sd)
}
