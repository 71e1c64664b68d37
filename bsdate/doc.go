// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bsdate converts dates between the Bikram Sambat (BS) calendar
// used in Nepal and the Gregorian (AD) calendar.
//
// The lengths of Bikram Sambat months are determined by astronomical
// observation rather than by rule and so are recorded in a table, see
// Table, which is embedded in this package and covers the years MinYear
// to MaxYear. Conversion counts the days that separate the requested date
// from a pair of anchor dates, 1913-04-13 AD and 1970-01-01 BS, that are
// known to be the same day, and then walks the destination calendar
// forward by that many days. The walk yields the weekday, week and
// day-of-year metadata returned in CalendarDate as a side effect.
//
// MonthSummary and DateInMonth compute the metadata needed for calendar
// grids directly from the table without walking from the anchor.
//
// All functions are safe for concurrent use. Out of range input is
// reported as a *RangeError which matches ErrRange via errors.Is.
package bsdate
