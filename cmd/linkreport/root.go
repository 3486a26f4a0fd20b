// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	linkreportlog "github.com/govdata/linkreport/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	logJSON    bool
	configPath string
)

// rootCmd is the base command for linkreport.
var rootCmd = &cobra.Command{
	Use:   "linkreport",
	Short: "Build the dead link report of a link checker run",
	Long: `Linkreport reads the results of a dataset link checker from Redis (or a
JSON export) and writes a static HTML report: a pie chart of datasets with
working and broken links, and sortable per-portal tables with a running
total of broken datasets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		linkreportlog.Setup(verbose, quiet, logJSON)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: .linkreport.yaml or .linkreport.toml)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
