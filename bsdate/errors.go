// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrRange is matched, via errors.Is, by every *RangeError.
var ErrRange = errors.New("out of range")

// RangeError is returned whenever a year, month or day falls outside
// of the supported bounds or the month-length table has no entry for it.
// For Field "date" the Value, Min and Max fields are encoded as yyyymmdd.
type RangeError struct {
	Era   Era
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	if e.Field == "date" {
		return fmt.Sprintf("%v date %s out of range [%s, %s]", e.Era,
			formatPacked(e.Value), formatPacked(e.Min), formatPacked(e.Max))
	}
	return fmt.Sprintf("%v %s %d out of range [%d, %d]", e.Era, e.Field, e.Value, e.Min, e.Max)
}

// Is implements errors.Is for ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

func packDate(year, month, day int) int {
	return year*10000 + month*100 + day
}

func formatPacked(v int) string {
	return fmt.Sprintf("%04d-%02d-%02d", v/10000, (v/100)%100, v%100)
}

func checkField(era Era, field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return &RangeError{Era: era, Field: field, Value: value, Min: lo, Max: hi}
	}
	return nil
}
