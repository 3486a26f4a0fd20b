// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govdata/linkreport/internal/config"
	"github.com/govdata/linkreport/internal/dom"
	"github.com/govdata/linkreport/internal/enhance"
	"github.com/govdata/linkreport/internal/jsnum"
	"github.com/govdata/linkreport/internal/listview"
	"github.com/govdata/linkreport/internal/report"
)

// Enhance-specific flag values.
var (
	enhanceSort   string
	enhanceFilter []string
	enhanceSearch string
	enhanceOutput string
)

// enhanceCmd runs the table enhancer over an existing page.
var enhanceCmd = &cobra.Command{
	Use:   "enhance <file.html>",
	Short: "Make the tables of an HTML page sortable and summed",
	Long: `Bind every table of an HTML page that has sort triggers, optionally
sort, filter or search the rows, and recompute the running totals.

A table is enhanced when it contains a button with class "sort"; each
trigger's data-sort attribute names a field. Tables whose class contains
"has-sum" write the total of their brokenrecords column to #sumofdeadlinks.

Examples:
  linkreport enhance report/index.html
  linkreport enhance page.html --sort brokenrecords:desc -o sorted.html
  linkreport enhance page.html --filter datasource=berlin --search open`,
	Args: cobra.ExactArgs(1),
	RunE: runEnhance,
}

func init() {
	enhanceCmd.Flags().StringVar(&enhanceSort, "sort", "", "sort every table that has the field, as field[:asc|desc]")
	enhanceCmd.Flags().StringArrayVar(&enhanceFilter, "filter", nil, "keep rows where field equals value (field=value, repeatable)")
	enhanceCmd.Flags().StringVar(&enhanceSearch, "search", "", "keep rows containing the term in any field")
	enhanceCmd.Flags().StringVarP(&enhanceOutput, "output", "o", "", "write the enhanced page to this file")
}

func runEnhance(cmd *cobra.Command, args []string) error {
	filters, err := parseFilters(enhanceFilter)
	if err != nil {
		return exitError(ExitInvalidArgs, "linkreport: %v", err)
	}
	var sortField string
	var sortOrder listview.Order
	if enhanceSort != "" {
		if sortField, sortOrder, err = listview.ParseSortSpec(enhanceSort); err != nil {
			return exitError(ExitInvalidArgs, "linkreport: %v", err)
		}
	}

	cfg, err := loadConfig(&config.Config{})
	if err != nil {
		return err
	}

	data, err := cmdFS.ReadFile(args[0])
	if err != nil {
		return exitError(ExitDataSource, "linkreport: cannot read %q (%v)", args[0], err)
	}
	doc, err := dom.Parse(bytes.NewReader(data))
	if err != nil {
		return exitError(ExitDataSource, "linkreport: %v", err)
	}

	res := enhance.Tables(doc, enhanceOptions(cfg))
	for _, b := range res.Bindings {
		if len(filters) > 0 {
			b.List.Filter(matchAll(filters))
		}
		if enhanceSearch != "" {
			b.List.Search(enhanceSearch)
		}
		if sortField != "" {
			if err := b.List.Sort(sortField, sortOrder); err != nil && !errors.Is(err, listview.ErrUnknownField) {
				return exitError(ExitInvalidArgs, "linkreport: %v", err)
			}
		}
		if b.Summed && b.Updates == 0 {
			b.List.Update()
		}
	}

	if err := renderBindings(cmd, res); err != nil {
		return exitError(ExitOutput, "linkreport: %v", err)
	}

	if enhanceOutput == "" {
		return nil
	}
	var buf bytes.Buffer
	if err := dom.Render(&buf, doc); err != nil {
		return exitError(ExitOutput, "linkreport: %v", err)
	}
	if err := cmdFS.WriteFile(enhanceOutput, buf.Bytes(), 0o644); err != nil { //nolint:gosec // output page is meant to be readable
		return exitError(ExitOutput, "linkreport: cannot write %q (%v)", enhanceOutput, err)
	}
	return nil
}

func renderBindings(cmd *cobra.Command, res *enhance.Result) error {
	w := cmd.OutOrStdout()
	tbl := report.NewTable(
		report.Column{Header: "#", Align: report.AlignRight},
		report.Column{Header: "Fields"},
		report.Column{Header: "Items", Align: report.AlignRight},
		report.Column{Header: "Visible", Align: report.AlignRight},
		report.Column{Header: "Total", Align: report.AlignRight, Color: report.ColorBroken},
	)
	for i, b := range res.Bindings {
		total := ""
		if b.Summed {
			total = jsnum.Format(b.Total)
		}
		tbl.AddRow(
			strconv.Itoa(i+1),
			strings.Join(b.Fields, ","),
			strconv.Itoa(len(b.List.Items())),
			strconv.Itoa(len(b.List.Visible())),
			total,
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d table(s) enhanced, %d without sort triggers, %d failed\n",
		len(res.Bindings), res.Skipped, res.Failed)
	return err
}

type fieldFilter struct {
	field string
	value string
}

func parseFilters(specs []string) ([]fieldFilter, error) {
	var out []fieldFilter
	for _, spec := range specs {
		field, value, ok := strings.Cut(spec, "=")
		if !ok || strings.TrimSpace(field) == "" {
			return nil, fmt.Errorf("invalid filter %q (want field=value)", spec)
		}
		out = append(out, fieldFilter{field: strings.TrimSpace(field), value: value})
	}
	return out, nil
}

// matchAll accepts items whose fields equal every filter value, ignoring case.
func matchAll(filters []fieldFilter) func(*listview.Item) bool {
	return func(it *listview.Item) bool {
		for _, f := range filters {
			if !strings.EqualFold(it.Value(f.field), f.value) {
				return false
			}
		}
		return true
	}
}
