// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package numerals substitutes the digits of one numeral system for
// those of another, eg. ASCII digits for Devanagari ones. Characters other
// than digits are never changed.
package numerals

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// System identifies a numeral system.
type System int

const (
	Latin      System = iota // ASCII digits 0-9.
	Devanagari               // Devanagari digits ०-९ as used in Nepali.
)

const (
	devanagariZero = '०'
	devanagariNine = '९'
)

func (s System) String() string {
	switch s {
	case Latin:
		return "latin"
	case Devanagari:
		return "devanagari"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// ParseSystem parses the name of a numeral system as returned by
// System.String.
func ParseSystem(val string) (System, error) {
	switch strings.ToLower(val) {
	case "latin", "ascii", "en":
		return Latin, nil
	case "devanagari", "nepali", "ne":
		return Devanagari, nil
	}
	return 0, fmt.Errorf("unknown numeral system %q", val)
}

func toDevanagari(r rune) rune {
	if r >= '0' && r <= '9' {
		return r - '0' + devanagariZero
	}
	return r
}

func toLatin(r rune) rune {
	if r >= devanagariZero && r <= devanagariNine {
		return r - devanagariZero + '0'
	}
	return r
}

// Transformer returns a transform.Transformer that rewrites digits from
// any supported system into s.
func Transformer(s System) transform.Transformer {
	if s == Devanagari {
		return runes.Map(toDevanagari)
	}
	return runes.Map(toLatin)
}

// ToSystem rewrites all of the digits in text into system s.
func ToSystem(text string, s System) string {
	out, _, err := transform.String(Transformer(s), text)
	if err != nil {
		// not reached, runes.Map does not return errors.
		return text
	}
	return out
}

// ToASCII rewrites all of the digits in text as ASCII digits.
func ToASCII(text string) string {
	return ToSystem(text, Latin)
}

// Itoa formats n using the digits of system s.
func Itoa(n int, s System) string {
	return ToSystem(strconv.Itoa(n), s)
}
