// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/govdata/linkreport/internal/linkcheck"
)

// Labels name the two halves of the summary.
type Labels struct {
	Working string
	Broken  string
}

// RenderSummary writes the overall counts followed by one row per portal.
func RenderSummary(w io.Writer, st *linkcheck.Stats, labels Labels) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", SectionTitle("Link check summary")); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	overview := NewTable(
		Column{Header: "Status", Color: ColorStatus(labels)},
		Column{Header: "Datasets", Align: AlignRight},
		Column{Header: "Share", Align: AlignRight},
	)
	overview.AddRow(labels.Working, strconv.Itoa(st.Working), share(st.Working, st.NumDatasets))
	overview.AddRow(labels.Broken, strconv.Itoa(st.Broken), share(st.Broken, st.NumDatasets))
	overview.SetFooter("Total", strconv.Itoa(st.NumDatasets), "")
	if err := overview.Render(w); err != nil {
		return err
	}

	if len(st.Portals) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n%s\n\n", SectionTitle("Broken datasets by portal")); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	portals := NewTable(
		Column{Header: "Portal"},
		Column{Header: "Broken", Align: AlignRight, Color: ColorBroken},
		Column{Header: "Of broken", Align: AlignRight, Color: ColorShare},
	)
	for _, p := range st.Portals {
		portals.AddRow(p.Name, strconv.Itoa(p.Broken()), share(p.Broken(), st.Broken))
	}
	portals.SetFooter("Total", strconv.Itoa(st.Broken), "")
	return portals.Render(w)
}

func share(n, total int) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}
