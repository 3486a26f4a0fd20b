// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/govdata/linkreport/internal/listview"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Redis.DB < 0 || cfg.Redis.DB > 15 {
		errs = append(errs, fmt.Sprintf("redis.db: must be between 0 and 15, got %d", cfg.Redis.DB))
	}

	if cfg.Report.Sort != "" {
		if _, _, err := listview.ParseSortSpec(cfg.Report.Sort); err != nil {
			errs = append(errs, fmt.Sprintf("report.sort: %v", err))
		}
	}

	if cfg.Chart.Width < 0 {
		errs = append(errs, fmt.Sprintf("chart.width: must be non-negative, got %d", cfg.Chart.Width))
	}
	if cfg.Chart.Height < 0 {
		errs = append(errs, fmt.Sprintf("chart.height: must be non-negative, got %d", cfg.Chart.Height))
	}
	for i, c := range cfg.Chart.Palette {
		if !hexColor.MatchString(c) {
			errs = append(errs, fmt.Sprintf("chart.palette[%d]: invalid color %q (want #rgb or #rrggbb)", i, c))
		}
	}

	if strings.ContainsAny(cfg.Tables.TriggerClass, " \t") {
		errs = append(errs, fmt.Sprintf("tables.trigger_class: must be a single class name, got %q", cfg.Tables.TriggerClass))
	}
	if strings.ContainsAny(cfg.Tables.SummaryID, " \t") {
		errs = append(errs, fmt.Sprintf("tables.summary_id: must not contain whitespace, got %q", cfg.Tables.SummaryID))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
