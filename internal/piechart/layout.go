// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package piechart

import (
	"math"
	"strconv"
	"strings"
)

const tau = 2 * math.Pi

// Slice is one laid-out wedge of the pie.
type Slice struct {
	Record
	Index      int
	StartAngle float64 // radians, 0 at twelve o'clock, clockwise
	EndAngle   float64
	Color      string
	Path       string
}

// Angle returns the angular extent of the slice.
func (s Slice) Angle() float64 {
	return s.EndAngle - s.StartAngle
}

// Layout computes start and end angles for data in input order. Angles are
// proportional to Count over the sum of all counts; when that sum is zero
// every slice is empty.
func Layout(data []Record) []Slice {
	var sum float64
	for _, r := range data {
		sum += float64(r.Count)
	}
	k := 0.0
	if sum != 0 {
		k = tau / sum
	}

	slices := make([]Slice, len(data))
	a := 0.0
	for i, r := range data {
		slices[i] = Slice{Record: r, Index: i, StartAngle: a}
		a += float64(r.Count) * k
		slices[i].EndAngle = a
	}
	return slices
}

// ArcPath returns the SVG path of a full-pie wedge (inner radius 0) with the
// given outer radius, centered on the origin.
func ArcPath(outer, start, end float64) string {
	a0 := start - math.Pi/2
	a1 := end - math.Pi/2
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	da := a1 - a0
	r := num(outer)

	var b strings.Builder
	if da >= tau-1e-6 {
		b.WriteString("M0," + r)
		b.WriteString("A" + r + "," + r + " 0 1,1 0," + num(-outer))
		b.WriteString("A" + r + "," + r + " 0 1,1 0," + r)
		b.WriteString("Z")
		return b.String()
	}

	large := "0"
	if da >= math.Pi {
		large = "1"
	}
	b.WriteString("M" + num(outer*math.Cos(a0)) + "," + num(outer*math.Sin(a0)))
	b.WriteString("A" + r + "," + r + " 0 " + large + ",1 ")
	b.WriteString(num(outer*math.Cos(a1)) + "," + num(outer*math.Sin(a1)))
	b.WriteString("L0,0Z")
	return b.String()
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
