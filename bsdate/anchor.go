// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

// The anchors are the same physical day, Sunday 13th April 1913 AD and
// 1st Baisakh 1970 BS. All conversions count days forward from them.
var (
	anchorAD = CalendarDate{
		Year:              1913,
		Month:             4,
		Day:               13,
		Era:               AD,
		FirstWeekday:      Tuesday,
		LastWeekday:       Wednesday,
		DaysInMonth:       30,
		WeekdayOccurrence: 2,
		Weekday:           Sunday,
		DayOfYear:         103,
		WeekOfMonth:       3,
		WeekOfYear:        16,
	}

	anchorBS = CalendarDate{
		Year:              1970,
		Month:             1,
		Day:               1,
		Era:               BS,
		FirstWeekday:      Sunday,
		LastWeekday:       Tuesday,
		DaysInMonth:       31,
		WeekdayOccurrence: 1,
		Weekday:           Sunday,
		DayOfYear:         1,
		WeekOfMonth:       1,
		WeekOfYear:        1,
	}
)

// Supported Gregorian years, the dates at either end of this range are
// further restricted to those covered by the month-length table.
const (
	MinADYear = 1913
	MaxADYear = 2034
)

// AnchorAD returns the Gregorian anchor date.
func AnchorAD() CalendarDate {
	return anchorAD
}

// AnchorBS returns the Bikram Sambat anchor date.
func AnchorBS() CalendarDate {
	return anchorBS
}
