// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/govdata/linkreport/internal/history"
)

// ColorDirection colors trend direction labels.
func ColorDirection(val string) string {
	switch history.Direction(val) {
	case history.Improving:
		return colorGreen.Sprint(val)
	case history.Degrading:
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// RenderTrend writes the movement of broken counts since the oldest run in
// the trend window. Portals whose count did not change are left out.
func RenderTrend(w io.Writer, t *history.Trends) error {
	if t == nil {
		return nil
	}
	title := fmt.Sprintf("Trend since %s (%d runs)", t.Since.Timestamp.Format("2006-01-02 15:04"), t.DataPoints)
	if _, err := fmt.Fprintf(w, "\n%s\n\n", SectionTitle(title)); err != nil {
		return fmt.Errorf("render trend: %w", err)
	}

	tbl := NewTable(
		Column{Header: "Portal"},
		Column{Header: "Before", Align: AlignRight},
		Column{Header: "Now", Align: AlignRight},
		Column{Header: "Delta", Align: AlignRight},
		Column{Header: "Direction", Color: ColorDirection},
	)
	for _, name := range sortedTrendKeys(t.Portals) {
		line := t.Portals[name]
		if line.Delta == 0 {
			continue
		}
		tbl.AddRow(name, strconv.Itoa(line.Previous), strconv.Itoa(line.Current), signed(line.Delta), string(line.Direction))
	}
	b := t.Broken
	tbl.SetFooter("Total", strconv.Itoa(b.Previous), strconv.Itoa(b.Current), signed(b.Delta), string(b.Direction))
	return tbl.Render(w)
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func sortedTrendKeys(m map[string]history.TrendLine) []string {
	counts := make(map[string]int, len(m))
	for k := range m {
		counts[k] = 0
	}
	return history.SortedKeys(counts)
}
