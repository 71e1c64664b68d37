// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/nepali/bsdate"
	"cloudeng.io/nepali/locale"
	"cloudeng.io/nepali/numerals"
)

var (
	out io.Writer = os.Stdout
	now           = time.Now
)

type converterFunc func(year, month, day int) (bsdate.CalendarDate, error)

func convert(ctx context.Context, cf converterFunc, values interface{}, args []string) error {
	fv := values.(*convertFlags)
	s := settingsFromContext(ctx)
	errs := &errors.M{}
	for _, arg := range args {
		sd, err := bsdate.ParseSimpleDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		cd, err := cf(sd.Year, sd.Month, sd.Day)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", arg, err))
			continue
		}
		ctxlog.Logger(ctx).Debug("converted", "from", arg, "to", cd.String())
		printDate(s, cd, fv.Metadata)
		if fv.Sun {
			ad := cd.Simple()
			if cd.Era == bsdate.BS {
				ad = sd
			}
			printSun(s, ad)
		}
	}
	return errs.Err()
}

func printDate(s settings, cd bsdate.CalendarDate, metadata bool) {
	fmt.Fprintf(out, "%s\t%s\n", cd.Simple(), locale.Format(cd, s.style, s.language))
	if !metadata {
		return
	}
	fmt.Fprintf(out, "  weekday: %s (%d), occurrence %d\n", s.language.WeekdayName(cd.Weekday), cd.Weekday, cd.WeekdayOccurrence)
	fmt.Fprintf(out, "  month: %d days, %s to %s\n", cd.DaysInMonth,
		s.language.WeekdayName(cd.FirstWeekday), s.language.WeekdayName(cd.LastWeekday))
	fmt.Fprintf(out, "  day of year: %d, week of month: %d, week of year: %d\n", cd.DayOfYear, cd.WeekOfMonth, cd.WeekOfYear)
}

func toBS(ctx context.Context, values interface{}, args []string) error {
	return convert(ctx, settingsFromContext(ctx).converter.ToBS, values, args)
}

func toAD(ctx context.Context, values interface{}, args []string) error {
	return convert(ctx, settingsFromContext(ctx).converter.ToAD, values, args)
}

func today(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*convertFlags)
	s := settingsFromContext(ctx)
	cd, err := s.converter.Today(now())
	if err != nil {
		return err
	}
	printDate(s, cd, fv.Metadata)
	if fv.Sun {
		t := now().In(bsdate.NepalTime)
		printSun(s, bsdate.NewSimpleDate(t.Year(), int(t.Month()), t.Day()))
	}
	return nil
}

func parseInts(args ...string) ([]int, error) {
	r := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(numerals.ToASCII(a))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		r[i] = n
	}
	return r, nil
}

func month(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*monthFlags)
	s := settingsFromContext(ctx)
	ym, err := parseInts(args...)
	if err != nil {
		return err
	}
	ms, err := s.converter.MonthSummaryWithOffset(ym[0], ym[1], fv.Offset)
	if err != nil {
		return err
	}
	printMonth(s.language, ms)
	return nil
}

func printMonth(lang locale.Language, ms bsdate.MonthSummary) {
	sys := lang.Numerals()
	fmt.Fprintf(out, "%s %s\n", lang.MonthName(bsdate.BS, ms.Month), numerals.Itoa(ms.Year, sys))
	header := make([]string, 7)
	for i := range header {
		header[i] = fmt.Sprintf("%5s", lang.ShortWeekdayName(bsdate.Weekday(i+1)))
	}
	fmt.Fprintln(out, strings.Join(header, ""))
	grid := ms.Grid()
	for _, week := range grid[:ms.Weeks()] {
		var line strings.Builder
		for _, day := range week {
			if day == 0 {
				line.WriteString("     ")
				continue
			}
			fmt.Fprintf(&line, "%5s", numerals.Itoa(day, sys))
		}
		fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
	}
}

func rewriteNumerals(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*numeralFlags)
	sys := settingsFromContext(ctx).language.Numerals()
	if len(fv.To) > 0 {
		var err error
		if sys, err = numerals.ParseSystem(fv.To); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, numerals.ToSystem(strings.Join(args, " "), sys))
	return nil
}

func table(ctx context.Context, _ interface{}, args []string) error {
	s := settingsFromContext(ctx)
	y, err := parseInts(args[0])
	if err != nil {
		return err
	}
	months, err := s.converter.Year(y[0])
	if err != nil {
		return err
	}
	sys := s.language.Numerals()
	total := 0
	for _, ms := range months {
		fmt.Fprintf(out, "%-12s %s %s\n", s.language.MonthName(bsdate.BS, ms.Month),
			numerals.Itoa(ms.DaysInMonth, sys), s.language.WeekdayName(ms.FirstWeekday))
		total += ms.DaysInMonth
	}
	fmt.Fprintf(out, "%-12s %s\n", numerals.Itoa(y[0], sys), numerals.Itoa(total, sys))
	return nil
}
