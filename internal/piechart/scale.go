// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package piechart

// Category10 is the ten-color qualitative palette used for slices by default.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Scale is an ordinal color scale. Keys are assigned palette entries in the
// order they are first seen; the palette wraps when exhausted.
type Scale struct {
	palette []string
	index   map[string]int
	domain  []string
}

// NewScale returns a scale over palette. An empty palette means Category10.
func NewScale(palette []string) *Scale {
	if len(palette) == 0 {
		palette = Category10
	}
	return &Scale{palette: palette, index: make(map[string]int)}
}

// Color returns the color for key, assigning the next palette entry when key
// has not been seen before.
func (s *Scale) Color(key string) string {
	i, ok := s.index[key]
	if !ok {
		i = len(s.domain)
		s.index[key] = i
		s.domain = append(s.domain, key)
	}
	return s.palette[i%len(s.palette)]
}

// Domain returns the keys seen so far, in first-seen order.
func (s *Scale) Domain() []string {
	return append([]string(nil), s.domain...)
}
