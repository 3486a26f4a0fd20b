// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package report renders the terminal summary of a link check run.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left. Use it for counts.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table renders aligned text tables to an io.Writer. An optional footer row
// is set off from the data rows by a second separator.
type Table struct {
	columns []Column
	rows    [][]string
	footer  []string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are ignored;
// missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, t.fit(values))
}

// SetFooter sets the footer row, typically a total.
func (t *Table) SetFooter(values ...string) {
	t.footer = t.fit(values)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

func (t *Table) fit(values []string) []string {
	row := make([]string, len(t.columns))
	copy(row, values)
	return row
}

// Render writes the table to w with computed column widths. Widths count
// runes so umlauts in portal names do not skew the layout.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range append(t.rows, t.footer) {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = bold.Sprint(pad(col.Header, widths[i], col.Align))
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, separator(widths)); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := writeLine(w, t.cells(row, widths)); err != nil {
			return err
		}
	}
	if t.footer == nil {
		return nil
	}
	if err := writeLine(w, separator(widths)); err != nil {
		return err
	}
	return writeLine(w, t.cells(t.footer, widths))
}

func (t *Table) cells(row []string, widths []int) []string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		padded := pad(row[i], widths[i], col.Align)
		if col.Color != nil && row[i] != "" {
			// Color the value only; padding is computed on the raw text.
			padded = strings.Replace(padded, row[i], col.Color(row[i]), 1)
		}
		parts[i] = padded
	}
	return parts
}

func pad(s string, width int, align Alignment) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

func separator(widths []int) []string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	return parts
}

func writeLine(w io.Writer, parts []string) error {
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
