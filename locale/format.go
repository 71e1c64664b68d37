// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale

import (
	"fmt"
	"strings"

	"cloudeng.io/nepali/bsdate"
	"cloudeng.io/nepali/numerals"
)

// Style determines how much of a date is displayed by Format.
type Style int

const (
	Full   Style = iota // Thursday, Baisakh 1, 2079
	Long                // Baisakh 1, 2079
	Medium              // Bai 1, 2079
	Short               // 2079/01/01
)

var styleNames = []string{"full", "long", "medium", "short"}

func (s Style) String() string {
	if s < Full || s > Short {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle parses one of full, long, medium or short.
func ParseStyle(val string) (Style, error) {
	lc := strings.ToLower(val)
	for i, n := range styleNames {
		if n == lc {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("unknown date style %q, expected one of %s", val, strings.Join(styleNames, ", "))
}

// Format displays date in the requested style using the names and digits
// of lang.
func Format(date bsdate.CalendarDate, style Style, lang Language) string {
	var out string
	switch style {
	case Full:
		out = fmt.Sprintf("%s, %s %d, %d", lang.WeekdayName(date.Weekday),
			lang.MonthName(date.Era, date.Month), date.Day, date.Year)
	case Long:
		out = fmt.Sprintf("%s %d, %d", lang.MonthName(date.Era, date.Month), date.Day, date.Year)
	case Medium:
		out = fmt.Sprintf("%s %d, %d", lang.ShortMonthName(date.Era, date.Month), date.Day, date.Year)
	default:
		out = fmt.Sprintf("%04d/%02d/%02d", date.Year, date.Month, date.Day)
	}
	return numerals.ToSystem(out, lang.Numerals())
}

// FormatSimple is like Format for a SimpleDate; the weekday is omitted
// since it is not known.
func FormatSimple(date bsdate.SimpleDate, era bsdate.Era, style Style, lang Language) string {
	if style == Full {
		style = Long
	}
	return Format(bsdate.CalendarDate{Year: date.Year, Month: date.Month, Day: date.Day, Era: era}, style, lang)
}
