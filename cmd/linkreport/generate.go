// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/govdata/linkreport/internal/config"
	"github.com/govdata/linkreport/internal/history"
	"github.com/govdata/linkreport/internal/linkcheck"
	"github.com/govdata/linkreport/internal/output"
	"github.com/govdata/linkreport/internal/report"
)

// Generate-specific flag values.
var (
	genRedisAddr     string
	genRedisDB       int
	genRedisPassword string
	genInput         string
	genOutput        string
	genSort          string
	genAPIURL        string
	genDetailURL     string
	genNoHistory     bool
)

// generateCmd builds the HTML report.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dead link report",
	Long: `Load the link checker results, aggregate them per portal and write
index.html, linkchecker.html and assets/report.css to the report directory.

Results are read from Redis unless --input names a JSON export.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addRedisFlags(generateCmd, &genRedisAddr, &genRedisDB, &genRedisPassword)
	generateCmd.Flags().StringVar(&genInput, "input", "", "read a JSON export instead of Redis")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "report directory (default \"report\")")
	generateCmd.Flags().StringVar(&genSort, "sort", "", "initial table order as field[:asc|desc] (default \"brokenrecords:desc\")")
	generateCmd.Flags().StringVar(&genAPIURL, "api-url", "", "CKAN API base URL for dataset links")
	generateCmd.Flags().StringVar(&genDetailURL, "detail-url", "", "prefix of dataset detail page links")
	generateCmd.Flags().BoolVar(&genNoHistory, "no-history", false, "do not record this run in history.json")
}

func addRedisFlags(cmd *cobra.Command, addr *string, db *int, password *string) {
	cmd.Flags().StringVar(addr, "redis-addr", "", "Redis address (default \"localhost:6379\")")
	cmd.Flags().IntVar(db, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(password, "redis-password", "", "Redis password (or "+config.PasswordEnv+")")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(&config.Config{
		Redis: config.RedisConfig{Addr: genRedisAddr, DB: genRedisDB, Password: genRedisPassword},
		Report: config.ReportConfig{
			Dir:       genOutput,
			Sort:      genSort,
			APIURL:    genAPIURL,
			DetailURL: genDetailURL,
		},
	})
	if err != nil {
		return err
	}

	start := time.Now()
	snap, err := loadSnapshot(cmd.Context(), cfg, genInput)
	if err != nil {
		return exitError(ExitDataSource, "linkreport: %v", err)
	}
	st := linkcheck.Aggregate(snap)
	slog.Info("aggregated link check results",
		"datasets", st.NumDatasets, "broken", st.Broken, "portals", len(st.Portals))

	gen := output.NewGenerator(output.Options{
		WorkingLabel: cfg.Report.WorkingLabel,
		BrokenLabel:  cfg.Report.BrokenLabel,
		APIURL:       cfg.Report.APIURL,
		DetailURL:    cfg.Report.DetailURL,
		Sort:         cfg.Report.Sort,
		Chart:        chartOptions(cfg),
		Tables:       enhanceOptions(cfg),
	}).WithFS(cmdFS)
	if _, err := gen.WriteDir(cmd.Context(), cfg.Report.Dir, st); err != nil {
		return exitError(ExitOutput, "linkreport: %v", err)
	}

	w := cmd.OutOrStdout()
	if err := report.RenderSummary(w, st, report.Labels{
		Working: cfg.Report.WorkingLabel,
		Broken:  cfg.Report.BrokenLabel,
	}); err != nil {
		return exitError(ExitOutput, "linkreport: %v", err)
	}
	if !genNoHistory {
		trends, err := recordHistory(cfg.Report.Dir, st, gen)
		if err != nil {
			slog.Warn("history not updated", "error", err)
		}
		if err := report.RenderTrend(w, trends); err != nil {
			return exitError(ExitOutput, "linkreport: %v", err)
		}
	}
	_, _ = fmt.Fprintf(w, "\nReport written to %s\n", cfg.Report.Dir)

	slog.Info("report complete", "dir", cfg.Report.Dir, "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// recordHistory appends this run to the report directory's history and
// returns the trends over the default window.
func recordHistory(dir string, st *linkcheck.Stats, gen *output.Generator) (*history.Trends, error) {
	h, err := history.Load(dir)
	if err != nil {
		return nil, err
	}
	h = history.Append(h, history.NewEntry(st, gen.ReportID(), gen.Now()))
	if err := history.Save(dir, h); err != nil {
		return nil, err
	}
	return history.ComputeTrends(h, history.DefaultWindowSize), nil
}

// loadSnapshot reads the JSON export at input, or Redis when input is empty.
func loadSnapshot(ctx context.Context, cfg *config.Config, input string) (*linkcheck.Snapshot, error) {
	if input != "" {
		f, err := cmdFS.Open(input)
		if err != nil {
			return nil, fmt.Errorf("cannot open input %q (%v)", input, err)
		}
		defer f.Close() //nolint:errcheck // read-only file
		snap, err := linkcheck.ReadSnapshot(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		slog.Debug("loaded snapshot", "path", input, "records", len(snap.Records))
		return snap, nil
	}

	var snap *linkcheck.Snapshot
	err := withStore(ctx, cfg, func(ctx context.Context, s *linkcheck.Store) error {
		var err error
		snap, err = s.Load(ctx)
		return err
	})
	return snap, err
}
