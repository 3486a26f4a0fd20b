// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package history

import "math"

// DefaultWindowSize is the default number of entries to compare for trends.
const DefaultWindowSize = 5

// deadbandPct is the relative change below which a trend is "stable".
const deadbandPct = 0.10

// Direction describes whether a broken count is improving, stable, or degrading.
type Direction string

const (
	Improving Direction = "improving"
	Stable    Direction = "stable"
	Degrading Direction = "degrading"
)

// TrendLine captures the change of a single count.
type TrendLine struct {
	Current   int       `json:"current"`
	Previous  int       `json:"previous"`
	Delta     int       `json:"delta"`
	Direction Direction `json:"direction"`
}

// Trends holds the broken-count trends over a window of runs.
type Trends struct {
	Broken     TrendLine            `json:"broken"`
	Portals    map[string]TrendLine `json:"portals"`
	Since      Entry                `json:"since"`
	WindowSize int                  `json:"window_size"`
	DataPoints int                  `json:"data_points"`
}

// ComputeTrends compares the oldest and newest entries within the window.
// It returns nil if fewer than 2 data points are available.
func ComputeTrends(h *History, windowSize int) *Trends {
	if h == nil || len(h.Entries) < 2 {
		return nil
	}
	if windowSize < 2 {
		windowSize = DefaultWindowSize
	}

	entries := h.Entries
	if len(entries) > windowSize {
		entries = entries[len(entries)-windowSize:]
	}
	oldest := entries[0]
	newest := entries[len(entries)-1]

	t := &Trends{
		Broken:     trendLine(oldest.Broken, newest.Broken),
		Portals:    make(map[string]TrendLine),
		Since:      oldest,
		WindowSize: windowSize,
		DataPoints: len(entries),
	}
	for _, k := range mergeKeys(oldest.PortalCounts, newest.PortalCounts) {
		t.Portals[k] = trendLine(oldest.PortalCounts[k], newest.PortalCounts[k])
	}
	return t
}

func trendLine(oldVal, newVal int) TrendLine {
	return TrendLine{
		Current:   newVal,
		Previous:  oldVal,
		Delta:     newVal - oldVal,
		Direction: classifyDirection(oldVal, newVal),
	}
}

// classifyDirection applies the deadband. Fewer broken datasets is an
// improvement.
func classifyDirection(oldVal, newVal int) Direction {
	if oldVal == newVal {
		return Stable
	}
	base := oldVal
	if base == 0 {
		base = newVal
	}
	if math.Abs(float64(newVal-oldVal))/float64(base) <= deadbandPct {
		return Stable
	}
	if newVal < oldVal {
		return Improving
	}
	return Degrading
}

// mergeKeys returns the sorted union of keys from two maps.
func mergeKeys(a, b map[string]int) []string {
	seen := make(map[string]int, len(a)+len(b))
	for k := range a {
		seen[k] = 0
	}
	for k := range b {
		seen[k] = 0
	}
	return SortedKeys(seen)
}
