// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides the month and weekday names, and the digits,
// used to display dates in English and Nepali.
package locale

import (
	"cloudeng.io/nepali/bsdate"
	"cloudeng.io/nepali/numerals"
	"golang.org/x/text/language"
)

// Language provides the names and digits used to display dates.
type Language interface {
	// Tag returns the BCP 47 tag for the language.
	Tag() language.Tag
	// Numerals returns the numeral system used for digits.
	Numerals() numerals.System
	// MonthName returns the name of the month, 1-12, in the calendar
	// identified by era.
	MonthName(era bsdate.Era, month int) string
	ShortMonthName(era bsdate.Era, month int) string
	WeekdayName(w bsdate.Weekday) string
	ShortWeekdayName(w bsdate.Weekday) string
}

type names struct {
	tag           language.Tag
	numerals      numerals.System
	bsMonths      [12]string
	bsShortMonths [12]string
	adMonths      [12]string
	adShortMonths [12]string
	weekdays      [7]string
	shortWeekdays [7]string
}

var (
	// English uses transliterated Bikram Sambat month names and ASCII digits.
	English Language = &names{
		tag:      language.English,
		numerals: numerals.Latin,
		bsMonths: [12]string{"Baisakh", "Jestha", "Asar", "Shrawan", "Bhadra", "Asoj",
			"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra"},
		bsShortMonths: [12]string{"Bai", "Jes", "Asa", "Shr", "Bha", "Aso",
			"Kar", "Man", "Pou", "Mag", "Fal", "Cha"},
		adMonths: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		adShortMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		shortWeekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	}

	// Nepali uses Devanagari names and digits.
	Nepali Language = &names{
		tag:      language.Nepali,
		numerals: numerals.Devanagari,
		bsMonths: [12]string{"बैशाख", "जेठ", "असार", "श्रावण", "भदौ", "असोज",
			"कार्तिक", "मंसिर", "पुष", "माघ", "फागुन", "चैत"},
		bsShortMonths: [12]string{"बै", "जे", "अ", "श्रा", "भ", "आ",
			"का", "मं", "पौ", "मा", "फा", "चै"},
		adMonths: [12]string{"जनवरी", "फेब्रुअरी", "मार्च", "अप्रिल", "मे", "जुन",
			"जुलाई", "अगस्ट", "सेप्टेम्बर", "अक्टोबर", "नोभेम्बर", "डिसेम्बर"},
		adShortMonths: [12]string{"जन", "फेब", "मार्च", "अप्रि", "मे", "जुन",
			"जुला", "अग", "सेप", "अक्टो", "नोभे", "डिसे"},
		weekdays:      [7]string{"आइतबार", "सोमबार", "मंगलबार", "बुधबार", "बिहिबार", "शुक्रबार", "शनिबार"},
		shortWeekdays: [7]string{"आइत", "सोम", "मंगल", "बुध", "बिहि", "शुक्र", "शनि"},
	}
)

var (
	supported = []Language{English, Nepali}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Nepali})
)

// Match returns the supported language that best matches the supplied
// BCP 47 tags or Accept-Language values. English is returned when there
// is no good match.
func Match(tags ...string) Language {
	_, idx := language.MatchStrings(matcher, tags...)
	return supported[idx]
}

func (n *names) Tag() language.Tag {
	return n.tag
}

func (n *names) Numerals() numerals.System {
	return n.numerals
}

func monthIndex(month int) int {
	return ((month-1)%12 + 12) % 12
}

func weekdayIndex(w bsdate.Weekday) int {
	return ((int(w)-1)%7 + 7) % 7
}

func (n *names) MonthName(era bsdate.Era, month int) string {
	if era == bsdate.AD {
		return n.adMonths[monthIndex(month)]
	}
	return n.bsMonths[monthIndex(month)]
}

func (n *names) ShortMonthName(era bsdate.Era, month int) string {
	if era == bsdate.AD {
		return n.adShortMonths[monthIndex(month)]
	}
	return n.bsShortMonths[monthIndex(month)]
}

func (n *names) WeekdayName(w bsdate.Weekday) string {
	return n.weekdays[weekdayIndex(w)]
}

func (n *names) ShortWeekdayName(w bsdate.Weekday) string {
	return n.shortWeekdays[weekdayIndex(w)]
}
