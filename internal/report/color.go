// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Shared color printers for the summary.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// ColorBroken colors a broken count: 0 is green, anything else red.
func ColorBroken(val string) string {
	if n, err := strconv.Atoi(val); err == nil && n == 0 {
		return colorGreen.Sprint(val)
	}
	return colorRed.Sprint(val)
}

// ColorStatus returns a ColorFunc that paints the working label green and
// the broken label red.
func ColorStatus(labels Labels) ColorFunc {
	return func(val string) string {
		switch val {
		case labels.Working:
			return colorGreen.Sprint(val)
		case labels.Broken:
			return colorRed.Sprint(val)
		default:
			return val
		}
	}
}

// ColorShare colors a broken share: under 5% green, under 20% yellow,
// otherwise red. Values that are not percentages are left alone.
func ColorShare(val string) string {
	f, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
	if err != nil {
		return val
	}
	switch {
	case f < 5:
		return colorGreen.Sprint(val)
	case f < 20:
		return colorYellow.Sprint(val)
	default:
		return colorRed.Sprint(val)
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
