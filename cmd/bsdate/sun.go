// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"cloudeng.io/nepali/bsdate"
	"cloudeng.io/nepali/numerals"
	"github.com/nathan-osman/go-sunrise"
)

// Kathmandu.
const (
	latitude  = 27.7172
	longitude = 85.3240
)

func sunriseSunset(ad bsdate.SimpleDate) (rise, set time.Time) {
	rise, set = sunrise.SunriseSunset(latitude, longitude, ad.Year, time.Month(ad.Month), ad.Day)
	return rise.In(bsdate.NepalTime), set.In(bsdate.NepalTime)
}

func printSun(s settings, ad bsdate.SimpleDate) {
	rise, set := sunriseSunset(ad)
	sys := s.language.Numerals()
	fmt.Fprintf(out, "  sunrise: %s, sunset: %s\n",
		numerals.ToSystem(rise.Format("15:04"), sys),
		numerals.ToSystem(set.Format("15:04"), sys))
}
