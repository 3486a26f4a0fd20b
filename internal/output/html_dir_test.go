// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package output

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govdata/linkreport/internal/testable"
)

func TestWriteDir_BasicOutput(t *testing.T) {
	dir := t.TempDir()
	pages, err := testGenerator(Options{}).WriteDir(context.Background(), dir, testStats())
	require.NoError(t, err)
	assert.Len(t, pages, 2)

	index := readFile(t, filepath.Join(dir, "index.html"))
	assert.Contains(t, index, `id="linkchecker-pie-chart"`)
	assert.Contains(t, index, "<svg")
	assert.Contains(t, index, `<td id="sumofdeadlinks">5</td>`)

	details := readFile(t, filepath.Join(dir, "linkchecker.html"))
	assert.Contains(t, details, `id="http---a-example-org"`)

	css := readFile(t, filepath.Join(dir, "assets", "report.css"))
	assert.Contains(t, css, "button.sort.desc")
}

func TestWriteDir_MkdirFails(t *testing.T) {
	g := testGenerator(Options{}).WithFS(&testable.MockFileSystem{
		MkdirAllFn: func(string, os.FileMode) error { return errors.New("read-only") },
	})
	_, err := g.WriteDir(context.Background(), t.TempDir(), testStats())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output directory")
}

func TestWriteDir_WriteFails(t *testing.T) {
	g := testGenerator(Options{}).WithFS(&testable.MockFileSystem{
		MkdirAllFn: func(string, os.FileMode) error { return nil },
		WriteFileFn: func(name string, _ []byte, _ os.FileMode) error {
			if strings.HasSuffix(name, LinkCheckerPage) {
				return errors.New("disk full")
			}
			return nil
		},
	})

	_, err := g.WriteDir(context.Background(), "report", testStats())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write linkchecker.html: disk full")
}

func TestWriteDir_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := testGenerator(Options{}).WithFS(&testable.MockFileSystem{
		MkdirAllFn:  func(string, os.FileMode) error { return nil },
		WriteFileFn: func(string, []byte, os.FileMode) error { return nil },
	})
	_, err := g.WriteDir(ctx, "report", testStats())
	assert.ErrorIs(t, err, context.Canceled)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	return string(data)
}
