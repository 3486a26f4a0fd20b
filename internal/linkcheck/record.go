// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package linkcheck reads the results a link checker leaves behind (one
// record per dataset with broken resource URLs, plus a general counter) and
// turns them into the numbers a report needs.
package linkcheck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Status is the outcome recorded for a URL: "HTTP <code>" for responses,
// otherwise a failure description such as "Timeout" or "SSL Error".
type Status string

// UnmarshalJSON accepts both integer status codes and strings.
func (s *Status) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Status(str)
		return nil
	}
	code, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	*s = Status(fmt.Sprintf("HTTP %d", code))
	return nil
}

// URLEntry tracks one failing URL of a dataset.
type URLEntry struct {
	Status  Status `json:"status"`
	Date    string `json:"date"`
	Strikes int    `json:"strikes"`
}

// Record is the stored state of one dataset.
type Record struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Maintainer      string              `json:"maintainer"`
	MaintainerEmail string              `json:"maintainer_email"`
	URLs            map[string]URLEntry `json:"urls,omitempty"`

	// Portal is the harvested source portal. HasPortal is false for records
	// written before the portal was tracked; those are not attributed.
	Portal    string `json:"-"`
	HasPortal bool   `json:"-"`
}

type recordJSON struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Maintainer      string              `json:"maintainer"`
	MaintainerEmail string              `json:"maintainer_email"`
	URLs            map[string]URLEntry `json:"urls,omitempty"`
	Portal          *string             `json:"metadata_original_portal,omitempty"`
}

// UnmarshalJSON decodes a record and notes whether the portal key exists,
// even when its value is null.
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}
	*r = Record{
		ID:              raw.ID,
		Name:            raw.Name,
		Maintainer:      raw.Maintainer,
		MaintainerEmail: raw.MaintainerEmail,
		URLs:            raw.URLs,
	}
	if _, ok := keys["metadata_original_portal"]; ok {
		r.HasPortal = true
		if raw.Portal != nil {
			r.Portal = *raw.Portal
		}
	}
	return nil
}

// MarshalJSON writes the portal key only when HasPortal is set.
func (r Record) MarshalJSON() ([]byte, error) {
	raw := recordJSON{
		ID:              r.ID,
		Name:            r.Name,
		Maintainer:      r.Maintainer,
		MaintainerEmail: r.MaintainerEmail,
		URLs:            r.URLs,
	}
	if r.HasPortal {
		p := r.Portal
		raw.Portal = &p
	}
	return json.Marshal(raw)
}

// BrokenURLs returns the number of failing URLs.
func (r Record) BrokenURLs() int {
	return len(r.URLs)
}

// General holds the counters stored under the general key.
type General struct {
	NumDatasets int `json:"num_datasets"`
}

// Snapshot is everything a report is built from.
type Snapshot struct {
	General General  `json:"general"`
	Records []Record `json:"records"`
}
