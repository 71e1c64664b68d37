// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command bsdate converts dates between the Bikram Sambat and Gregorian
// calendars and displays Bikram Sambat calendar months.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: bsdate
summary: convert dates between the Bikram Sambat (BS) and Gregorian (AD) calendars
commands:
  - name: to-bs
    summary: convert Gregorian dates to Bikram Sambat
    arguments:
      - <yyyy-mm-dd>
      - ...
  - name: to-ad
    summary: convert Bikram Sambat dates to Gregorian
    arguments:
      - <yyyy-mm-dd>
      - ...
  - name: today
    summary: display the current date in Nepal
  - name: month
    summary: display the calendar for a Bikram Sambat month
    arguments:
      - <year>
      - <month>
  - name: numerals
    summary: rewrite the digits in the supplied text
    arguments:
      - <text>
      - ...
  - name: table
    summary: display the month lengths for a Bikram Sambat year
    arguments:
      - <year>
`

var (
	globalFlags GlobalFlags
	cmdSet      = subcmd.MustFromYAML(cmdSpec)
)

// GlobalFlags are common to all commands and override the values in the
// configuration file.
type GlobalFlags struct {
	Config    string `subcmd:"config,,'yaml configuration file'"`
	Language  string `subcmd:"lang,,'language for names and digits, eg. en or ne'"`
	Style     string `subcmd:"style,,'date style: full, long, medium or short'"`
	Table     string `subcmd:"table,,'yaml file containing an alternative month length table'"`
	LogLevel  int    `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
	LogFormat string `subcmd:"log-format,text,'log format: text or json'"`
}

type convertFlags struct {
	Metadata bool `subcmd:"metadata,false,'display weekday, week and day of year metadata'"`
	Sun      bool `subcmd:"sun,false,'display the times of sunrise and sunset in Kathmandu'"`
}

type monthFlags struct {
	Offset int `subcmd:"offset,0,'number of months, possibly negative, to add to the requested month'"`
}

type numeralFlags struct {
	To string `subcmd:"to,,'numeral system to convert to: latin or devanagari, defaults to that of the language'"`
}

type noFlags struct{}

func newFlagSet(flagValues any) *subcmd.FlagSet {
	fs := subcmd.NewFlagSet()
	fs.MustRegisterFlagStruct(flagValues, nil, nil)
	return fs
}

func init() {
	cmdSet.Set("to-bs").MustRunnerAndFlags(configured(toBS), newFlagSet(&convertFlags{}))
	cmdSet.Set("to-ad").MustRunnerAndFlags(configured(toAD), newFlagSet(&convertFlags{}))
	cmdSet.Set("today").MustRunnerAndFlags(configured(today), newFlagSet(&convertFlags{}))
	cmdSet.Set("month").MustRunnerAndFlags(configured(month), newFlagSet(&monthFlags{}))
	cmdSet.Set("numerals").MustRunnerAndFlags(configured(rewriteNumerals), newFlagSet(&numeralFlags{}))
	cmdSet.Set("table").MustRunnerAndFlags(configured(table), newFlagSet(&noFlags{}))
	cmdSet.WithGlobalFlags(newFlagSet(&globalFlags))
}

// configured returns a runner that applies the global flags and
// configuration file before calling runner.
func configured(runner subcmd.Runner) subcmd.Runner {
	return func(ctx context.Context, values interface{}, args []string) error {
		cfg, err := loadConfig(globalFlags)
		if err != nil {
			return err
		}
		ctx, closer, err := cfg.newContext(ctx)
		if err != nil {
			return err
		}
		defer closer()
		return runner(ctx, values, args)
	}
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
