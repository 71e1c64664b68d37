// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/nepali/bsdate"
	"cloudeng.io/nepali/locale"
)

// Config represents the contents of the optional configuration file.
type Config struct {
	Language string                `yaml:"language" cmd:"language tag used for names and digits, eg. en or ne"`
	Style    string                `yaml:"style" cmd:"date style: full, long, medium or short"`
	Table    string                `yaml:"table" cmd:"yaml file containing an alternative month length table"`
	Logging  cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration"`
}

func loadConfig(fv GlobalFlags) (Config, error) {
	cfg := Config{
		Language: "en",
		Style:    "long",
		Logging:  cmdutil.LoggingConfig{Level: fv.LogLevel, Format: fv.LogFormat},
	}
	if len(fv.Config) > 0 {
		if err := cmdutil.ParseYAMLConfigFile(fv.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	if len(fv.Language) > 0 {
		cfg.Language = fv.Language
	}
	if len(fv.Style) > 0 {
		cfg.Style = fv.Style
	}
	if len(fv.Table) > 0 {
		cfg.Table = fv.Table
	}
	return cfg, nil
}

// settings are derived from a Config and made available to the commands
// via their context.
type settings struct {
	converter *bsdate.Converter
	language  locale.Language
	style     locale.Style
}

type settingsKey struct{}

func (cfg Config) newContext(ctx context.Context) (context.Context, func(), error) {
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return nil, nil, err
	}
	closer := func() { logger.Close() }
	ctx = ctxlog.Context(ctx, logger.Logger)
	s, err := cfg.settings(ctx)
	if err != nil {
		closer()
		return nil, nil, err
	}
	ctxlog.Logger(ctx).Info("configured", "language", s.language.Tag().String(), "style", s.style.String(),
		"first", s.converter.FirstBS().String(), "last", s.converter.LastBS().String())
	return context.WithValue(ctx, settingsKey{}, s), closer, nil
}

func (cfg Config) settings(ctx context.Context) (settings, error) {
	style, err := locale.ParseStyle(cfg.Style)
	if err != nil {
		return settings{}, err
	}
	s := settings{
		converter: bsdate.DefaultConverter(),
		language:  locale.Match(cfg.Language),
		style:     style,
	}
	if len(cfg.Table) == 0 {
		return s, nil
	}
	t, err := bsdate.LoadTableFile(ctx, cfg.Table)
	if err != nil {
		return settings{}, err
	}
	if s.converter, err = bsdate.NewConverter(t); err != nil {
		return settings{}, fmt.Errorf("%v: %w", cfg.Table, err)
	}
	return s, nil
}

func settingsFromContext(ctx context.Context) settings {
	if s, ok := ctx.Value(settingsKey{}).(settings); ok {
		return s
	}
	return settings{
		converter: bsdate.DefaultConverter(),
		language:  locale.English,
		style:     locale.Long,
	}
}
