// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package piechart

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govdata/linkreport/internal/dom"
)

func linkData(working, broken int) []Record {
	return []Record{
		{Type: "Metadaten unversehrt", Count: working},
		{Type: "Metadaten mit toten Links", Count: broken},
	}
}

func TestRender_ProportionalAngles(t *testing.T) {
	data := []Record{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 0}, {"e", 4}}
	c := Render(data, Options{})

	require.Len(t, c.Slices, len(data))
	var total float64
	for i, s := range c.Slices {
		assert.Equal(t, i, s.Index)
		assert.InDelta(t, float64(data[i].Count)/10*tau, s.Angle(), 1e-9)
		total += s.Angle()
	}
	assert.InDelta(t, tau, total, 1e-9)
	assert.InDelta(t, 0.0, c.Slices[0].StartAngle, 1e-12)
	assert.InDelta(t, tau, c.Slices[len(c.Slices)-1].EndAngle, 1e-9)
}

func TestRender_InputOrderKept(t *testing.T) {
	c := Render([]Record{{"small", 1}, {"big", 9}}, Options{})
	assert.Equal(t, "small", c.Slices[0].Type)
	assert.Equal(t, "big", c.Slices[1].Type)
	assert.Less(t, c.Slices[0].EndAngle, c.Slices[1].EndAngle)
}

func TestRender_EndToEnd(t *testing.T) {
	c := Render(linkData(40, 10), DefaultOptions())

	require.Len(t, c.Slices, 2)
	assert.InDelta(t, 4.0, c.Slices[0].Angle()/c.Slices[1].Angle(), 1e-9)
	assert.Equal(t, 125.0, c.Radius)
	assert.Equal(t, 115.0, c.OuterRadius())

	require.Len(t, c.Legend, 2)
	assert.Equal(t, "Metadaten unversehrt", c.Legend[0].Label)
	assert.Equal(t, "Metadaten mit toten Links", c.Legend[1].Label)
	assert.Equal(t, 0, c.Legend[0].Y)
	assert.Equal(t, 20, c.Legend[1].Y)
	assert.Equal(t, Category10[0], c.Slices[0].Color)
	assert.Equal(t, Category10[1], c.Slices[1].Color)
}

func TestRender_SameTypeSameColor(t *testing.T) {
	c := Render([]Record{{"x", 1}, {"y", 1}, {"x", 2}}, Options{})
	assert.Equal(t, c.Slices[0].Color, c.Slices[2].Color)
	assert.NotEqual(t, c.Slices[0].Color, c.Slices[1].Color)
	assert.Equal(t, c.Slices[0].Color, c.Legend[2].Color)
}

func TestRender_Degenerate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c := Render(nil, Options{})
		assert.Empty(t, c.Slices)
		assert.Empty(t, c.Legend)
		var buf bytes.Buffer
		require.NoError(t, c.WriteSVG(&buf))
		assert.Contains(t, buf.String(), `class="legend"`)
	})

	t.Run("all_zero", func(t *testing.T) {
		c := Render(linkData(0, 0), Options{})
		for _, s := range c.Slices {
			assert.Zero(t, s.Angle())
			assert.False(t, math.IsNaN(s.EndAngle))
		}
	})

	t.Run("negative", func(t *testing.T) {
		assert.NotPanics(t, func() {
			c := Render([]Record{{"a", -3}, {"b", 5}}, Options{})
			var buf bytes.Buffer
			_ = c.WriteSVG(&buf)
		})
	})
}

func TestRender_CustomCanvas(t *testing.T) {
	c := Render(linkData(1, 1), Options{Width: 400, Height: 300, Palette: []string{"#000"}})
	assert.Equal(t, 150.0, c.Radius)
	assert.Equal(t, "#000", c.Slices[0].Color)
	assert.Equal(t, "#000", c.Slices[1].Color, "palette wraps")
}

func TestScale(t *testing.T) {
	s := NewScale(nil)
	assert.Equal(t, Category10[0], s.Color("a"))
	assert.Equal(t, Category10[1], s.Color("b"))
	assert.Equal(t, Category10[0], s.Color("a"))
	assert.Equal(t, []string{"a", "b"}, s.Domain())

	for i := 0; i < 9; i++ {
		s.Color(string(rune('c' + i)))
	}
	assert.Equal(t, Category10[0], s.Color("k"), "eleventh key wraps around")
}

func TestArcPath(t *testing.T) {
	assert.Equal(t, "M0,115A115,115 0 1,1 0,-115A115,115 0 1,1 0,115Z", ArcPath(115, 0, tau))
	assert.Equal(t, "M0,-100A100,100 0 0,1 100,0L0,0Z", ArcPath(100, 0, math.Pi/2))
	assert.Equal(t, "M0,-100A100,100 0 1,1 -100,0L0,0Z", ArcPath(100, 0, 3*math.Pi/2))
}

func TestWriteSVG(t *testing.T) {
	c := Render(linkData(40, 10), DefaultOptions())
	var buf bytes.Buffer
	require.NoError(t, c.WriteSVG(&buf))
	out := buf.String()

	assert.Contains(t, out, `<svg width="250" height="250">`)
	assert.Contains(t, out, `transform="translate(125,125)"`)
	assert.Equal(t, 2, strings.Count(out, `class="arc"`))
	assert.Contains(t, out, `class="legend" width="275" height="50"`)
	assert.Contains(t, out, `transform="translate(40,20)"`)
	assert.Contains(t, out, `width="18" height="18"`)
	assert.Contains(t, out, "Metadaten mit toten Links")
	assert.Less(t, strings.Index(out, "Metadaten unversehrt"), strings.Index(out, "Metadaten mit toten Links"))
}

func TestMount(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div id="linkchecker-pie-chart"><p>keep</p></div></body></html>`)
	require.NoError(t, err)

	c := Render(linkData(3, 1), DefaultOptions())
	require.NoError(t, Mount(doc, "linkchecker-pie-chart", c))
	require.NoError(t, Mount(doc, "linkchecker-pie-chart", c))

	target := dom.ByID(doc, "linkchecker-pie-chart")
	children := dom.Children(target)
	require.Len(t, children, 5)
	assert.Equal(t, "p", children[0].Data)
	assert.Len(t, dom.FindAll(target, dom.Class("legend")), 2)
}

func TestMount_MissingTarget(t *testing.T) {
	doc, err := dom.ParseString(`<html><body></body></html>`)
	require.NoError(t, err)

	err = Mount(doc, "nope", Render(linkData(1, 1), Options{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMountNotFound))
}

func TestWritePNG(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(linkData(40, 10), DefaultOptions()).WritePNG(&buf))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		err := Render(linkData(0, 0), DefaultOptions()).WritePNG(&buf)
		assert.ErrorIs(t, err, ErrEmptyChart)
	})
}
