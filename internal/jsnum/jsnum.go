// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package jsnum reproduces the number parsing and formatting rules of report
// pages, so totals computed here match what a browser would have displayed.
package jsnum

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseInt parses the leading integer of s the way parseInt(s) does in a
// browser. Leading whitespace is skipped, an optional sign is honored, a
// "0x" prefix switches to base 16, and parsing stops at the first character
// that is not a digit. When no digit is found the result is NaN.
func ParseInt(s string) float64 {
	s = strings.TrimLeftFunc(s, isSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == 0 {
		return math.NaN()
	}

	var v float64
	if base == 10 {
		// ParseFloat rounds correctly for long digit runs.
		v, _ = strconv.ParseFloat(s[:end], 64)
	} else {
		for i := 0; i < end; i++ {
			v = v*16 + float64(digitValue(s[i]))
		}
	}
	if neg {
		return -v
	}
	return v
}

// Format renders v the way a page renders a number it writes as text.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Sum adds the parsed integer value of each string. A single non-numeric
// entry turns the whole result into NaN.
func Sum(values []string) float64 {
	var sum float64
	for _, s := range values {
		sum += ParseInt(s)
	}
	return sum
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 36
	}
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
