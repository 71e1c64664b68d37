// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

// walker steps a CalendarDate forward one day at a time, maintaining its
// weekday, week and day-of-year metadata as it goes. Month lengths are
// supplied by monthLength so that the same walk serves both calendars.
type walker struct {
	date        CalendarDate
	monthLength func(year, month int) int
}

func (w *walker) advance(days int) {
	for range days {
		w.step()
	}
}

func (w *walker) step() {
	cd := &w.date
	cd.Day++
	cd.DayOfYear++
	cd.Weekday++
	if cd.Weekday > Saturday {
		cd.Weekday = Sunday
		cd.WeekOfYear++
		cd.WeekOfMonth++
	}
	if cd.Day > cd.DaysInMonth {
		cd.Day = 1
		cd.WeekOfMonth = 1
		cd.Month++
		if cd.Month > 12 {
			cd.Month = 1
			cd.Year++
			cd.DayOfYear = 1
			cd.WeekOfYear = 1
		}
		cd.DaysInMonth = w.monthLength(cd.Year, cd.Month)
		cd.FirstWeekday = cd.Weekday
	}
	cd.LastWeekday = normalizeWeekday(int(cd.Weekday) + cd.DaysInMonth - cd.Day)
	cd.WeekdayOccurrence = (cd.Day-1)/7 + 1
}
