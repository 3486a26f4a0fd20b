// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for linkreport using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Level maps the verbosity flags to a slog level.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// NewHandler returns a text handler writing to w, or a JSON handler when
// jsonFormat is set.
func NewHandler(w io.Writer, verbose, quiet, jsonFormat bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: Level(verbose, quiet)}
	if jsonFormat {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Setup configures the default slog logger based on verbosity flags.
// Output is written to stderr.
func Setup(verbose, quiet, jsonFormat bool) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, verbose, quiet, jsonFormat)))
}
