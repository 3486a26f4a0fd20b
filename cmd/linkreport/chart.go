// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govdata/linkreport/internal/config"
	"github.com/govdata/linkreport/internal/piechart"
)

// Chart-specific flag values.
var (
	chartWorking int
	chartBroken  int
	chartFormat  string
	chartOutput  string
	chartWidth   int
	chartHeight  int
)

// chartCmd renders the working/broken pie chart on its own.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the link check pie chart",
	Long: `Render the pie chart of working and broken datasets as SVG (chart and
legend) or PNG.

Examples:
  linkreport chart --working 40 --broken 10
  linkreport chart --working 40 --broken 10 --format png -o chart.png`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().IntVar(&chartWorking, "working", 0, "number of datasets without broken links")
	chartCmd.Flags().IntVar(&chartBroken, "broken", 0, "number of datasets with broken links")
	chartCmd.Flags().StringVarP(&chartFormat, "format", "f", "svg", "output format: svg or png")
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "", "output file (default: stdout)")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "canvas width (default 250)")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "canvas height (default 250)")
}

func runChart(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(chartFormat)
	if format != "svg" && format != "png" {
		return exitError(ExitInvalidArgs, "linkreport: unsupported chart format %q (must be svg or png)", chartFormat)
	}
	if chartWorking < 0 || chartBroken < 0 {
		return exitError(ExitInvalidArgs, "linkreport: counts must be non-negative")
	}

	cfg, err := loadConfig(&config.Config{Chart: config.ChartConfig{Width: chartWidth, Height: chartHeight}})
	if err != nil {
		return err
	}
	chart := piechart.Render(chartRecords(cfg, chartWorking, chartBroken), chartOptions(cfg))

	w := cmd.OutOrStdout()
	if chartOutput != "" {
		f, createErr := cmdFS.Create(chartOutput)
		if createErr != nil {
			return exitError(ExitOutput, "linkreport: cannot create output file %q (%v)", chartOutput, createErr)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}

	if err := writeChart(w, chart, format); err != nil {
		if errors.Is(err, piechart.ErrEmptyChart) {
			return exitError(ExitInvalidArgs, "linkreport: %v", err)
		}
		return exitError(ExitOutput, "linkreport: %v", err)
	}
	return nil
}

func writeChart(w io.Writer, chart *piechart.Chart, format string) error {
	if format == "png" {
		return chart.WritePNG(w)
	}
	if err := chart.WriteSVG(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
