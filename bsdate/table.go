// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

//go:embed monthlengths.yaml
var embeddedTable []byte

// Bounds of the embedded month-length table.
const (
	MinYear = 1970
	MaxYear = 2090
)

const (
	minMonthLength = 29
	maxMonthLength = 32
)

var defaultTable = mustParseTable(embeddedTable)

func mustParseTable(spec []byte) *Table {
	t, err := ParseTable(spec)
	if err != nil {
		panic(fmt.Sprintf("embedded month length table: %v", err))
	}
	return t
}

// Table records the number of days in every month of a contiguous range
// of Bikram Sambat years. The month lengths are determined by astronomical
// observation and hence must be tabulated. A Table is immutable once
// created and safe for concurrent use.
type Table struct {
	first  int
	months [][12]int
	// yearStart[i] is the number of days from the start of the first year
	// to the start of year first+i; it has one more entry than months.
	yearStart []int
}

type tableSpec struct {
	Years map[int][]int `yaml:"years"`
}

// DefaultTable returns the table embedded in this package which covers
// MinYear to MaxYear inclusive.
func DefaultTable() *Table {
	return defaultTable
}

// ParseTable parses a YAML month-length table of the form:
//
//	years:
//	  1970: [31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30]
//	  1971: [31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30]
//
// All of the problems found with the table are reported.
func ParseTable(spec []byte) (*Table, error) {
	var ts tableSpec
	if err := cmdutil.ParseYAMLConfig(spec, &ts); err != nil {
		return nil, err
	}
	return newTable(ts.Years)
}

// LoadTableFile reads a table, in the format accepted by ParseTable,
// from the specified file.
func LoadTableFile(ctx context.Context, filename string) (*Table, error) {
	spec, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	t, err := ParseTable(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	ctxlog.Logger(ctx).Debug("loaded month length table", "file", filename, "first", t.FirstYear(), "last", t.LastYear())
	return t, nil
}

func newTable(years map[int][]int) (*Table, error) {
	if len(years) == 0 {
		return nil, errors.New("no years in month length table")
	}
	keys := make([]int, 0, len(years))
	for y := range years {
		keys = append(keys, y)
	}
	slices.Sort(keys)
	errs := &errors.M{}
	for i, y := range keys {
		if i > 0 && y != keys[i-1]+1 {
			errs.Append(fmt.Errorf("years %d to %d are missing", keys[i-1]+1, y-1))
		}
		errs.Append(validateYear(y, years[y]))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	t := &Table{
		first:     keys[0],
		months:    make([][12]int, len(keys)),
		yearStart: make([]int, len(keys)+1),
	}
	for i, y := range keys {
		copy(t.months[i][:], years[y])
		t.yearStart[i+1] = t.yearStart[i] + sum(years[y])
	}
	return t, nil
}

func validateYear(year int, lengths []int) error {
	if len(lengths) != 12 {
		return fmt.Errorf("year %d: has %d months, not 12", year, len(lengths))
	}
	for m, l := range lengths {
		if l < minMonthLength || l > maxMonthLength {
			return fmt.Errorf("year %d: month %d has %d days, not %d-%d", year, m+1, l, minMonthLength, maxMonthLength)
		}
	}
	if total := sum(lengths); total != 365 && total != 366 {
		return fmt.Errorf("year %d: has %d days, not 365 or 366", year, total)
	}
	return nil
}

func sum(lengths []int) int {
	total := 0
	for _, l := range lengths {
		total += l
	}
	return total
}

// FirstYear returns the first year in the table.
func (t *Table) FirstYear() int {
	return t.first
}

// LastYear returns the last year in the table.
func (t *Table) LastYear() int {
	return t.first + len(t.months) - 1
}

// TotalDays returns the number of days covered by the table.
func (t *Table) TotalDays() int {
	return t.yearStart[len(t.months)]
}

func (t *Table) checkYearMonth(year, month int) error {
	if err := checkField(BS, "year", year, t.FirstYear(), t.LastYear()); err != nil {
		return err
	}
	return checkField(BS, "month", month, 1, 12)
}

// DaysInMonth returns the number of days in the specified month.
func (t *Table) DaysInMonth(year, month int) (int, error) {
	if err := t.checkYearMonth(year, month); err != nil {
		return 0, err
	}
	return t.days(year, month), nil
}

// DaysInYear returns the number of days in the specified year.
func (t *Table) DaysInYear(year int) (int, error) {
	if err := checkField(BS, "year", year, t.FirstYear(), t.LastYear()); err != nil {
		return 0, err
	}
	i := year - t.first
	return t.yearStart[i+1] - t.yearStart[i], nil
}

// MonthLengths returns the lengths of all 12 months of the specified year.
func (t *Table) MonthLengths(year int) ([12]int, error) {
	if err := checkField(BS, "year", year, t.FirstYear(), t.LastYear()); err != nil {
		return [12]int{}, err
	}
	return t.months[year-t.first], nil
}

// days is DaysInMonth without bounds checking.
func (t *Table) days(year, month int) int {
	return t.months[year-t.first][month-1]
}

// daysBefore returns the number of days from the start of the table to
// the first day of the specified month.
func (t *Table) daysBefore(year, month int) int {
	i := year - t.first
	n := t.yearStart[i]
	for m := 0; m < month-1; m++ {
		n += t.months[i][m]
	}
	return n
}

// validate checks that the date exists in the table.
func (t *Table) validate(year, month, day int) error {
	if err := t.checkYearMonth(year, month); err != nil {
		return err
	}
	return checkField(BS, "day", day, 1, t.days(year, month))
}

// index returns the zero-based day number of a valid date.
func (t *Table) index(sd SimpleDate) int {
	return t.daysBefore(sd.Year, sd.Month) + sd.Day - 1
}

// dateAt is the inverse of index, it returns false if the day number
// lies outside of the table.
func (t *Table) dateAt(index int) (SimpleDate, bool) {
	if index < 0 || index >= t.TotalDays() {
		return SimpleDate{}, false
	}
	i, found := slices.BinarySearch(t.yearStart, index)
	if !found {
		i--
	}
	day := index - t.yearStart[i]
	for m, l := range t.months[i] {
		if day < l {
			return SimpleDate{Year: t.first + i, Month: m + 1, Day: day + 1}, true
		}
		day -= l
	}
	panic("unreachable")
}
