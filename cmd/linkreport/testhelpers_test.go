// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govdata/linkreport/internal/testable"
)

// newTestCmd redirects the root command's I/O and resets every flag. The
// global config directory is pointed at an empty temp dir.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	resetFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LINKREPORT_REDIS_PASSWORD", "")

	prevNoColor := color.NoColor
	t.Cleanup(func() {
		color.NoColor = prevNoColor
		cmdFS = testable.DefaultFS
	})

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags resets all package-level flags to their default values.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, cmd := range append(rootCmd.Commands(), configCmd.Commands()...) {
		cmd.Flags().VisitAll(reset)
		if h := cmd.Flags().Lookup("help"); h != nil {
			_ = h.Value.Set("false")
		}
	}

	// Reset slices AFTER VisitAll. pflag's StringArray.Set("[]") appends a
	// literal "[]" entry rather than clearing.
	enhanceFilter = nil
}

func requireExitCode(t *testing.T, err error, code int) *exitCodeError {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "want exitCodeError, got %T: %v", err, err)
	assert.Equal(t, code, ece.ExitCode(), ece.Error())
	return ece
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	return string(data)
}

const snapshotJSON = `{
  "general": {"num_datasets": 20},
  "records": [
    {"id": "1", "name": "alpha", "maintainer": "A", "maintainer_email": "a@example.org",
     "metadata_original_portal": "http://portal.example.org",
     "urls": {"http://example.org/a": {"status": 404, "date": "2026-10-01", "strikes": 2}}},
    {"id": "2", "name": "beta", "maintainer": "B", "maintainer_email": "b@example.org",
     "metadata_original_portal": "http://portal.example.org",
     "urls": {"http://example.org/b": {"status": "timeout", "date": "2026-10-02", "strikes": 1}}},
    {"id": "3", "name": "gamma", "maintainer": "C", "maintainer_email": "c@example.org",
     "metadata_original_portal": "http://other.example.org",
     "urls": {"http://example.org/c": {"status": 500, "date": "2026-10-03", "strikes": 3}}},
    {"id": "4", "name": "legacy", "urls": {"http://example.org/d": {"status": 404, "date": "2026-10-04", "strikes": 1}}},
    {"id": "5", "name": "clean", "metadata_original_portal": "http://portal.example.org", "urls": {}}
  ]
}`
