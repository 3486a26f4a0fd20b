// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package jsnum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3", 3},
		{"  42", 42},
		{"\n\t7", 7},
		{"-5", -5},
		{"+8", 8},
		{"12abc", 12},
		{"3.9", 3},
		{"0x1F", 31},
		{"0XfF", 255},
		{"007", 7},
		{"1 000", 1},
		{"\u00a012", 12},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInt(tt.in))
		})
	}
}

func TestParseInt_NaN(t *testing.T) {
	for _, in := range []string{"", "x", "abc12", "-", "0x", "   ", ".5"} {
		t.Run(in, func(t *testing.T) {
			assert.True(t, math.IsNaN(ParseInt(in)), "ParseInt(%q) should be NaN", in)
		})
	}
}

func TestParseInt_NegativeZero(t *testing.T) {
	v := ParseInt("-0")
	assert.Equal(t, 0.0, v)
	assert.True(t, math.Signbit(v))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{10, "10"},
		{-3, "-3"},
		{1234567, "1234567"},
		{2.5, "2.5"},
		{1e21, "1e+21"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestSum_PoisonedByNonNumeric(t *testing.T) {
	assert.Equal(t, "10", Format(Sum([]string{"3", "5", "2"})))
	assert.Equal(t, "NaN", Format(Sum([]string{"3", "5", "x", "2"})))
	assert.Equal(t, "0", Format(Sum(nil)))
}
