// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package piechart draws the link-checker summary as an SVG pie chart with a
// color-keyed legend.
package piechart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/net/html"

	"github.com/govdata/linkreport/internal/dom"
)

// ErrMountNotFound is returned by Mount when the target element is missing.
var ErrMountNotFound = errors.New("chart mount element not found")

// Record is one labeled count. Each record becomes one slice and one legend row.
type Record struct {
	Type  string
	Count int
}

// Options controls the chart canvas.
type Options struct {
	Width   int
	Height  int
	Palette []string
}

// DefaultOptions returns the 250x250 canvas with the Category10 palette.
func DefaultOptions() Options {
	return Options{Width: 250, Height: 250, Palette: Category10}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if len(o.Palette) == 0 {
		o.Palette = d.Palette
	}
	return o
}

// LegendRow is one legend entry: a colored square followed by the label.
type LegendRow struct {
	Label string
	Color string
	X, Y  int
}

// Chart describes a rendered pie chart.
type Chart struct {
	Width  int
	Height int
	Radius float64
	Slices []Slice
	Legend []LegendRow
}

// OuterRadius is the radius slices are drawn with.
func (c *Chart) OuterRadius() float64 {
	return c.Radius - 10
}

// Render lays out data as a pie chart. It never fails: an empty sequence
// yields a chart without slices and malformed counts yield malformed wedges.
func Render(data []Record, opts Options) *Chart {
	opts = opts.withDefaults()
	scale := NewScale(opts.Palette)

	c := &Chart{
		Width:  opts.Width,
		Height: opts.Height,
		Radius: math.Min(float64(opts.Width), float64(opts.Height)) / 2,
	}

	c.Slices = Layout(data)
	for i := range c.Slices {
		s := &c.Slices[i]
		s.Color = scale.Color(s.Type)
		s.Path = ArcPath(c.OuterRadius(), s.StartAngle, s.EndAngle)
	}

	c.Legend = make([]LegendRow, len(data))
	for i, r := range data {
		c.Legend[i] = LegendRow{Label: r.Type, Color: scale.Color(r.Type), X: 40, Y: i * 20}
	}
	return c
}

// Nodes builds the chart and legend SVG elements. Each call returns fresh,
// detached nodes.
func (c *Chart) Nodes() []*html.Node {
	return []*html.Node{c.chartNode(), c.legendNode()}
}

func (c *Chart) chartNode() *html.Node {
	svg := dom.SVG("svg", "width", itoa(c.Width), "height", itoa(c.Height))
	g := dom.SVG("g", "transform", translate(float64(c.Width)/2, float64(c.Height)/2))
	svg.AppendChild(g)
	for _, s := range c.Slices {
		arc := dom.SVG("g", "class", "arc")
		arc.AppendChild(dom.SVG("path", "d", s.Path, "style", "fill: "+s.Color+";"))
		g.AppendChild(arc)
	}
	return svg
}

func (c *Chart) legendNode() *html.Node {
	height := 50
	if h := len(c.Legend) * 20; h > height {
		height = h
	}
	svg := dom.SVG("svg",
		"class", "legend",
		"width", num(c.Radius+150),
		"height", itoa(height),
	)
	for _, row := range c.Legend {
		g := dom.SVG("g", "transform", translate(float64(row.X), float64(row.Y)))
		g.AppendChild(dom.SVG("rect", "width", "18", "height", "18", "style", "fill: "+row.Color+";"))
		text := dom.SVG("text", "x", "24", "y", "9", "dy", ".35em")
		text.AppendChild(dom.TextNode(row.Label))
		g.AppendChild(text)
		svg.AppendChild(g)
	}
	return svg
}

// WriteSVG writes the chart followed by the legend.
func (c *Chart) WriteSVG(w io.Writer) error {
	for _, n := range c.Nodes() {
		if err := dom.Render(w, n); err != nil {
			return fmt.Errorf("write chart svg: %w", err)
		}
	}
	return nil
}

// Mount appends the chart and legend to the element with id targetID.
// Existing children are kept, so mounting twice draws two charts.
func Mount(doc *html.Node, targetID string, c *Chart) error {
	target := dom.ByID(doc, targetID)
	if target == nil {
		return fmt.Errorf("%w: #%s", ErrMountNotFound, targetID)
	}
	for _, n := range c.Nodes() {
		target.AppendChild(n)
	}
	return nil
}

func translate(x, y float64) string {
	return "translate(" + num(x) + "," + num(y) + ")"
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
