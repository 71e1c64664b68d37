// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/nepali/bsdate"
)

func TestDefaultTable(t *testing.T) {
	tbl := bsdate.DefaultTable()
	if got, want := tbl.FirstYear(), bsdate.MinYear; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tbl.LastYear(), bsdate.MaxYear; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tbl.TotalDays(), 44200; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for y := tbl.FirstYear(); y <= tbl.LastYear(); y++ {
		n, err := tbl.DaysInYear(y)
		if err != nil {
			t.Fatalf("%v: %v", y, err)
		}
		if n != 365 && n != 366 {
			t.Errorf("%v: has %v days", y, n)
		}
		months, err := tbl.MonthLengths(y)
		if err != nil {
			t.Fatalf("%v: %v", y, err)
		}
		total := 0
		for _, l := range months {
			if l < 29 || l > 32 {
				t.Errorf("%v: month with %v days", y, l)
			}
			total += l
		}
		if total != n {
			t.Errorf("%v: got %v, want %v", y, total, n)
		}
	}

	for _, tc := range []struct {
		year, days int
	}{
		{1970, 365},
		{2000, 365},
		{2081, 366},
		{2082, 366},
	} {
		n, err := tbl.DaysInYear(tc.year)
		if err != nil {
			t.Errorf("%v: %v", tc.year, err)
			continue
		}
		if n != tc.days {
			t.Errorf("%v: got %v, want %v", tc.year, n, tc.days)
		}
	}

	months, err := tbl.MonthLengths(1970)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := months, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := tbl.DaysInYear(1969); !errors.Is(err, bsdate.ErrRange) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := tbl.MonthLengths(2091); !errors.Is(err, bsdate.ErrRange) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := tbl.DaysInMonth(2080, 13); !errors.Is(err, bsdate.ErrRange) {
		t.Errorf("missing or wrong error: %v", err)
	}
}

const twoYears = `years:
  1970: [31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30]
  1971: [31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30]
`

func TestCustomTable(t *testing.T) {
	tbl, err := bsdate.ParseTable([]byte(twoYears))
	if err != nil {
		t.Fatal(err)
	}
	c, err := bsdate.NewConverter(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.LastAD(), bsdate.NewSimpleDate(1915, 4, 12); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.LastBS(), bsdate.NewSimpleDate(1971, 12, 30); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	bs, err := c.ToBS(1915, 4, 12)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := bs.Simple(), c.LastBS(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := c.ToBS(1915, 4, 13); !errors.Is(err, bsdate.ErrRange) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := c.ToAD(1972, 1, 1); !errors.Is(err, bsdate.ErrRange) {
		t.Errorf("missing or wrong error: %v", err)
	}

	tbl, err = bsdate.ParseTable([]byte(`years:
  1971: [31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30]
`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := bsdate.NewConverter(tbl); err == nil || !strings.Contains(err.Error(), "not at the anchor year 1970") {
		t.Errorf("missing or wrong error: %v", err)
	}
}

func TestTableErrors(t *testing.T) {
	spec := `years:
  1970: [31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30]
  1971: [31, 31, 33, 31, 32, 30, 30, 29, 30, 29, 30, 29]
  1972: [31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 29]
  1974: [31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30]
`
	_, err := bsdate.ParseTable([]byte(spec))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{
		"year 1970: has 11 months, not 12",
		"year 1971: month 3 has 33 days, not 29-32",
		"year 1972: has 364 days, not 365 or 366",
		"years 1973 to 1973 are missing",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%q does not contain %q", err, want)
		}
	}

	for _, spec := range []string{
		"",
		"years: [",
		"years:\n  x: [1]\n",
	} {
		if _, err := bsdate.ParseTable([]byte(spec)); err == nil {
			t.Errorf("%q: expected an error", spec)
		}
	}
}

func TestLoadTableFile(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(filename, []byte(twoYears), 0o600); err != nil {
		t.Fatal(err)
	}
	tbl, err := bsdate.LoadTableFile(ctx, filename)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tbl.LastYear(), 1971; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := bsdate.LoadTableFile(ctx, filename+".missing"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing or wrong error: %v", err)
	}
}
