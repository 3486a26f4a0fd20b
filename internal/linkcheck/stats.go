// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package linkcheck

import (
	"sort"
	"strings"
)

// Portal groups the datasets with broken links harvested from one source.
type Portal struct {
	Name    string
	Anchor  string
	Records []Record
}

// Broken returns the number of datasets with broken links in the portal.
func (p Portal) Broken() int {
	return len(p.Records)
}

// Stats is the link checker summary of a snapshot.
type Stats struct {
	NumDatasets int
	Working     int
	Broken      int
	Portals     []Portal
}

// Aggregate summarizes snap. Only records with at least one failing URL and
// a portal key count as broken; every other dataset counts as working.
func Aggregate(snap *Snapshot) *Stats {
	byPortal := make(map[string][]Record)
	for _, r := range snap.Records {
		if len(r.URLs) == 0 || !r.HasPortal {
			continue
		}
		byPortal[r.Portal] = append(byPortal[r.Portal], r)
	}

	st := &Stats{NumDatasets: snap.General.NumDatasets}
	for name, records := range byPortal {
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].Name != records[j].Name {
				return records[i].Name < records[j].Name
			}
			return records[i].ID < records[j].ID
		})
		st.Portals = append(st.Portals, Portal{Name: name, Anchor: AmendPortal(name), Records: records})
		st.Broken += len(records)
	}
	sort.Slice(st.Portals, func(i, j int) bool {
		return st.Portals[i].Name < st.Portals[j].Name
	})
	st.Working = st.NumDatasets - st.Broken
	return st
}

var portalReplacer = strings.NewReplacer(
	":", "-", "/", "-", ".", "-",
	"&", "-", "?", "-", "=", "-",
)

// AmendPortal turns a portal URL into a string usable as an HTML anchor.
func AmendPortal(portal string) string {
	return portalReplacer.Replace(portal)
}
