// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/govdata/linkreport/internal/config"
	"github.com/govdata/linkreport/internal/enhance"
	"github.com/govdata/linkreport/internal/linkcheck"
	"github.com/govdata/linkreport/internal/piechart"
	"github.com/govdata/linkreport/internal/redact"
)

// loadConfig resolves the effective configuration: built-in defaults, the
// global file, the project file (or --config), then the values in cli.
func loadConfig(cli *config.Config) (*config.Config, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "linkreport: failed to load global config (%v)", err)
	}

	var file *config.Config
	if configPath != "" {
		file, err = config.LoadFile(configPath)
	} else {
		file, err = config.Load(".")
	}
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "linkreport: failed to load config (%v)", err)
	}

	cfg := config.Resolve(global, file, cli)
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "linkreport: %v", err)
	}
	redact.Register(cfg.Redis.Password)
	slog.Debug("config resolved", "redis", cfg.Redis.Addr, "db", cfg.Redis.DB, "dir", cfg.Report.Dir)
	return cfg, nil
}

func chartOptions(cfg *config.Config) piechart.Options {
	return piechart.Options{
		Width:   cfg.Chart.Width,
		Height:  cfg.Chart.Height,
		Palette: cfg.Chart.Palette,
	}
}

func chartRecords(cfg *config.Config, working, broken int) []piechart.Record {
	return []piechart.Record{
		{Type: cfg.Report.WorkingLabel, Count: working},
		{Type: cfg.Report.BrokenLabel, Count: broken},
	}
}

func enhanceOptions(cfg *config.Config) enhance.Options {
	return enhance.Options{
		TriggerTag:   cfg.Tables.TriggerTag,
		TriggerClass: cfg.Tables.TriggerClass,
		SortAttr:     cfg.Tables.SortAttr,
		SumClass:     cfg.Tables.SumClass,
		SumField:     cfg.Tables.SumField,
		SummaryID:    cfg.Tables.SummaryID,
	}
}

// withStore dials Redis, runs fn against the store and closes the client.
func withStore(ctx context.Context, cfg *config.Config, fn func(context.Context, *linkcheck.Store) error) error {
	client := linkcheck.Dial(linkcheck.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close() //nolint:errcheck // best-effort close

	slog.Debug("connecting to redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	if err := fn(ctx, linkcheck.NewStore(client)); err != nil {
		return fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
	}
	return nil
}
