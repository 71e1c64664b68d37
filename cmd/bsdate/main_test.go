// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"cloudeng.io/nepali/bsdate"
	"cloudeng.io/nepali/locale"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *strings.Builder {
	t.Helper()
	buf := &strings.Builder{}
	out = buf
	t.Cleanup(func() { out = os.Stdout })
	return buf
}

func newTestContext(t *testing.T, cfg Config) context.Context {
	t.Helper()
	ctx, closer, err := cfg.newContext(context.Background())
	require.NoError(t, err)
	t.Cleanup(closer)
	return ctx
}

func TestDispatch(t *testing.T) {
	buf := capture(t)
	ctx := context.Background()

	err := cmdSet.DispatchWithArgs(ctx, "bsdate", "to-bs", "2022-04-14", "2025/10/15")
	require.NoError(t, err)
	require.Equal(t, "2079-01-01\tBaisakh 1, 2079\n2082-06-29\tAsoj 29, 2082\n", buf.String())

	buf.Reset()
	err = cmdSet.DispatchWithArgs(ctx, "bsdate", "--lang=ne-NP", "--style=full", "to-bs", "2022-04-14")
	require.NoError(t, err)
	require.Equal(t, "2079-01-01\tबिहिबार, बैशाख १, २०७९\n", buf.String())
	globalFlags = GlobalFlags{}

	buf.Reset()
	err = cmdSet.DispatchWithArgs(ctx, "bsdate", "to-ad", "2082-04-01")
	require.NoError(t, err)
	require.Equal(t, "2025-07-16\tJuly 16, 2025\n", buf.String())

	err = cmdSet.DispatchWithArgs(ctx, "bsdate", "to-bs", "2040-01-01", "not-a-date")
	require.Error(t, err)
	require.ErrorIs(t, err, bsdate.ErrRange)
	require.Contains(t, err.Error(), "2040-01-01")
	require.Contains(t, err.Error(), "not-a-date")

	err = cmdSet.DispatchWithArgs(ctx, "bsdate", "--style=tiny", "to-bs", "2022-04-14")
	require.ErrorContains(t, err, "unknown date style")
	globalFlags = GlobalFlags{}

	err = cmdSet.DispatchWithArgs(ctx, "bsdate", "today", "extra")
	require.Error(t, err)
}

func TestConvertMetadata(t *testing.T) {
	buf := capture(t)
	ctx := newTestContext(t, Config{Language: "en", Style: "medium"})
	err := toBS(ctx, &convertFlags{Metadata: true}, []string{"2000-06-24"})
	require.NoError(t, err)
	require.Equal(t, `2057-03-10	Asa 10, 2057
  weekday: Saturday (7), occurrence 2
  month: 31 days, Thursday to Saturday
  day of year: 73, week of month: 2, week of year: 11
`, buf.String())
}

func TestSunriseSunset(t *testing.T) {
	buf := capture(t)
	ctx := newTestContext(t, Config{Language: "en", Style: "short"})
	require.NoError(t, toAD(ctx, &convertFlags{Sun: true}, []string{"2081-01-01"}))
	require.NoError(t, toBS(ctx, &convertFlags{Sun: true}, []string{"2024-04-13"}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "2024-04-13\t2024/04/13", lines[0])
	require.Equal(t, "2081-01-01\t2081/01/01", lines[2])
	require.Regexp(t, regexp.MustCompile(`^  sunrise: 05:[0-5][0-9], sunset: 18:[0-5][0-9]$`), lines[1])
	require.Equal(t, lines[1], lines[3])

	rise, set := sunriseSunset(bsdate.NewSimpleDate(2024, 6, 21))
	require.True(t, rise.Before(set))
	require.Greater(t, set.Sub(rise), 13*time.Hour)
}

func TestToday(t *testing.T) {
	buf := capture(t)
	now = func() time.Time { return time.Date(2024, 4, 12, 18, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })
	ctx := newTestContext(t, Config{Language: "en", Style: "full"})
	require.NoError(t, today(ctx, &convertFlags{}, nil))
	require.Equal(t, "2081-01-01\tSaturday, Baisakh 1, 2081\n", buf.String())
}

func TestMonth(t *testing.T) {
	buf := capture(t)
	ctx := newTestContext(t, Config{Language: "en", Style: "long"})
	require.NoError(t, month(ctx, &monthFlags{Offset: 1}, []string{"2082", "3"}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"Shrawan 2082",
		"  Sun  Mon  Tue  Wed  Thu  Fri  Sat",
		"                   1    2    3    4",
		"    5    6    7    8    9   10   11",
		"   12   13   14   15   16   17   18",
		"   19   20   21   22   23   24   25",
		"   26   27   28   29   30   31   32",
	}, lines)

	err := month(ctx, &monthFlags{}, []string{"2091", "1"})
	require.ErrorIs(t, err, bsdate.ErrRange)
	err = month(ctx, &monthFlags{}, []string{"2080", "13"})
	require.ErrorIs(t, err, bsdate.ErrRange)
	err = month(ctx, &monthFlags{Offset: -1}, []string{"2080", "0"})
	require.ErrorIs(t, err, bsdate.ErrRange)
	err = month(ctx, &monthFlags{}, []string{"2081", "Baisakh"})
	require.ErrorContains(t, err, "invalid number")
}

func TestNumerals(t *testing.T) {
	buf := capture(t)
	ctx := newTestContext(t, Config{Language: "en", Style: "long"})
	require.NoError(t, rewriteNumerals(ctx, &numeralFlags{To: "devanagari"}, []string{"2081-09-15", "BS"}))
	require.NoError(t, rewriteNumerals(ctx, &numeralFlags{}, []string{"२०८१"}))
	require.Equal(t, "२०८१-०९-१५ BS\n2081\n", buf.String())
	require.Error(t, rewriteNumerals(ctx, &numeralFlags{To: "roman"}, []string{"1"}))
}

func TestTable(t *testing.T) {
	buf := capture(t)
	ctx := newTestContext(t, Config{Language: "en", Style: "long"})
	require.NoError(t, table(ctx, &noFlags{}, []string{"2081"}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 13)
	require.Equal(t, "Baisakh      31 Saturday", lines[0])
	require.Equal(t, "2081         366", lines[12])
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	tableFile := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(tableFile, []byte(`years:
  1970: [31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30]
`), 0o600))
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`language: ne
style: short
table: `+tableFile+`
logging:
  level: 3
  format: json
  file: `+filepath.Join(dir, "log.json")+`
`), 0o600))

	cfg, err := loadConfig(GlobalFlags{Config: configFile})
	require.NoError(t, err)
	require.Equal(t, "ne", cfg.Language)
	require.Equal(t, "short", cfg.Style)
	require.Equal(t, tableFile, cfg.Table)
	require.Equal(t, 3, cfg.Logging.Level)

	cfg, err = loadConfig(GlobalFlags{Config: configFile, Language: "en", Style: "medium"})
	require.NoError(t, err)
	require.Equal(t, "en", cfg.Language)
	require.Equal(t, "medium", cfg.Style)

	ctx := newTestContext(t, cfg)
	s := settingsFromContext(ctx)
	require.Equal(t, locale.English, s.language)
	require.Equal(t, locale.Medium, s.style)
	require.Equal(t, bsdate.NewSimpleDate(1970, 12, 30), s.converter.LastBS())

	log, err := os.ReadFile(filepath.Join(dir, "log.json"))
	require.NoError(t, err)
	require.Contains(t, string(log), `"msg":"loaded month length table"`)

	_, err = loadConfig(GlobalFlags{Config: filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)

	_, _, err = Config{Style: "long", Table: filepath.Join(dir, "missing.yaml")}.newContext(context.Background())
	require.Error(t, err)
}
