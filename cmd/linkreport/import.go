// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govdata/linkreport/internal/config"
	"github.com/govdata/linkreport/internal/linkcheck"
)

// Import/export flag values.
var (
	importRedisAddr     string
	importRedisDB       int
	importRedisPassword string

	exportRedisAddr     string
	exportRedisDB       int
	exportRedisPassword string
	exportOutput        string
)

// importCmd loads a JSON export into Redis.
var importCmd = &cobra.Command{
	Use:   "import <snapshot.json>",
	Short: "Load a JSON export into Redis",
	Long: `Write every dataset record of a JSON export to Redis, followed by the
general counters. Existing records with the same id are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// exportCmd writes the Redis contents as a JSON export.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the Redis contents as a JSON export",
	Long: `Read the general counters and every dataset record from Redis and write
them as JSON, the format accepted by "generate --input" and "import".`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	addRedisFlags(importCmd, &importRedisAddr, &importRedisDB, &importRedisPassword)
	addRedisFlags(exportCmd, &exportRedisAddr, &exportRedisDB, &exportRedisPassword)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(&config.Config{
		Redis: config.RedisConfig{Addr: importRedisAddr, DB: importRedisDB, Password: importRedisPassword},
	})
	if err != nil {
		return err
	}

	f, err := cmdFS.Open(args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, "linkreport: cannot open %q (%v)", args[0], err)
	}
	defer f.Close() //nolint:errcheck // read-only file
	snap, err := linkcheck.ReadSnapshot(f)
	if err != nil {
		return exitError(ExitInvalidArgs, "linkreport: %s: %v", args[0], err)
	}

	err = withStore(cmd.Context(), cfg, func(ctx context.Context, s *linkcheck.Store) error {
		return s.Import(ctx, snap)
	})
	if err != nil {
		return exitError(ExitDataSource, "linkreport: %v", err)
	}

	slog.Info("import complete", "records", len(snap.Records))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d record(s) into %s\n", len(snap.Records), cfg.Redis.Addr)
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(&config.Config{
		Redis: config.RedisConfig{Addr: exportRedisAddr, DB: exportRedisDB, Password: exportRedisPassword},
	})
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(cmd.Context(), cfg, "")
	if err != nil {
		return exitError(ExitDataSource, "linkreport: %v", err)
	}

	w := cmd.OutOrStdout()
	if exportOutput != "" {
		f, createErr := cmdFS.Create(exportOutput)
		if createErr != nil {
			return exitError(ExitOutput, "linkreport: cannot create output file %q (%v)", exportOutput, createErr)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}
	if err := linkcheck.WriteSnapshot(w, snap); err != nil {
		return exitError(ExitOutput, "linkreport: %v", err)
	}
	return nil
}
