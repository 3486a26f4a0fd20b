// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govdata/linkreport/internal/linkcheck"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestRenderSummary(t *testing.T) {
	noColor(t)
	st := &linkcheck.Stats{
		NumDatasets: 50,
		Working:     40,
		Broken:      10,
		Portals: []linkcheck.Portal{
			{Name: "portal-a", Records: make([]linkcheck.Record, 8)},
			{Name: "portal-b", Records: make([]linkcheck.Record, 2)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, st, Labels{Working: "working", Broken: "broken"}))

	out := buf.String()
	assert.Contains(t, out, "Link check summary")
	assert.Contains(t, out, "  working        40  80.0%")
	assert.Contains(t, out, "  broken         10  20.0%")
	assert.Contains(t, out, "Broken datasets by portal")
	assert.Contains(t, out, "portal-a       8      80.0%")
	assert.Contains(t, out, "portal-b       2      20.0%")
}

func TestRenderSummary_NoPortals(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, &linkcheck.Stats{}, Labels{Working: "w", Broken: "b"}))

	out := buf.String()
	assert.NotContains(t, out, "by portal")
	assert.Contains(t, out, "-")
}
