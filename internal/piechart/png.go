// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package piechart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyChart is returned when a raster image is requested for a chart
// whose counts do not add up to a positive total.
var ErrEmptyChart = errors.New("chart has no positive counts")

// WritePNG rasterizes the chart with the same colors and labels as the SVG.
func (c *Chart) WritePNG(w io.Writer) error {
	var total float64
	values := make([]chart.Value, 0, len(c.Slices))
	for _, s := range c.Slices {
		if s.Count <= 0 {
			continue
		}
		total += float64(s.Count)
		values = append(values, chart.Value{
			Label: s.Type,
			Value: float64(s.Count),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#")),
				StrokeColor: chart.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}
	if total <= 0 {
		return ErrEmptyChart
	}

	pie := chart.PieChart{
		Width:  c.Width,
		Height: c.Height,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render png chart: %w", err)
	}
	return nil
}
