// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package history records a summary of every report run next to the report
// so later runs can show how the number of broken datasets moved.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"github.com/govdata/linkreport/internal/linkcheck"
	"github.com/govdata/linkreport/internal/testable"
)

// FileName is the history file written into the report directory.
const FileName = "history.json"

// schemaVersion is the current history file schema version.
const schemaVersion = "1"

// maxEntries is the FIFO cap for history entries.
const maxEntries = 100

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// Entry captures the summary of a single report run.
type Entry struct {
	Timestamp    time.Time      `json:"timestamp"`
	ReportID     string         `json:"report_id"`
	NumDatasets  int            `json:"num_datasets"`
	Broken       int            `json:"broken"`
	PortalCounts map[string]int `json:"portal_counts"`
}

// History stores a time series of report summaries.
type History struct {
	Version string  `json:"version"`
	Entries []Entry `json:"entries"`
}

// Load reads <dir>/history.json. If the file does not exist, it returns
// (nil, nil).
func Load(dir string) (*History, error) {
	data, err := FS.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FileName, err)
	}
	return &h, nil
}

// Save writes h to <dir>/history.json, creating dir if needed.
func Save(dir string, h *History) error {
	if err := FS.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	if err := FS.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil { //nolint:gosec // history is published with the report
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}

// Append adds an entry to the history and enforces the FIFO cap.
func Append(h *History, e Entry) *History {
	if h == nil {
		h = &History{}
	}
	h.Version = schemaVersion
	h.Entries = append(h.Entries, e)
	if len(h.Entries) > maxEntries {
		h.Entries = h.Entries[len(h.Entries)-maxEntries:]
	}
	return h
}

// NewEntry summarizes st for the run identified by reportID.
func NewEntry(st *linkcheck.Stats, reportID string, now time.Time) Entry {
	counts := make(map[string]int, len(st.Portals))
	for _, p := range st.Portals {
		counts[p.Name] = p.Broken()
	}
	return Entry{
		Timestamp:    now.UTC(),
		ReportID:     reportID,
		NumDatasets:  st.NumDatasets,
		Broken:       st.Broken,
		PortalCounts: counts,
	}
}

// SortedKeys returns the sorted keys from a map[string]int.
func SortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
