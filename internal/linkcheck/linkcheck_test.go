// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package linkcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordWithIntStatus = `{
  "id": "ds-1", "name": "bike-lanes", "maintainer": "City", "maintainer_email": "open@city.example",
  "metadata_original_portal": "http://portal.example/?a=b",
  "urls": {"http://files.example/a.csv": {"status": 404, "date": "2026-01-02", "strikes": 3}}
}`

func TestRecord_UnmarshalNormalizesStatus(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(recordWithIntStatus), &r))

	assert.Equal(t, "ds-1", r.ID)
	assert.True(t, r.HasPortal)
	assert.Equal(t, "http://portal.example/?a=b", r.Portal)
	entry := r.URLs["http://files.example/a.csv"]
	assert.Equal(t, Status("HTTP 404"), entry.Status)
	assert.Equal(t, 3, entry.Strikes)
	assert.Equal(t, 1, r.BrokenURLs())
}

func TestRecord_StringStatus(t *testing.T) {
	var e URLEntry
	require.NoError(t, json.Unmarshal([]byte(`{"status": "SSL Error", "date": "2026-01-02", "strikes": 1}`), &e))
	assert.Equal(t, Status("SSL Error"), e.Status)

	require.Error(t, json.Unmarshal([]byte(`{"status": 4.5}`), &e))
}

func TestRecord_PortalPresence(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var r Record
		require.NoError(t, json.Unmarshal([]byte(`{"id": "x"}`), &r))
		assert.False(t, r.HasPortal)
	})

	t.Run("null", func(t *testing.T) {
		var r Record
		require.NoError(t, json.Unmarshal([]byte(`{"id": "x", "metadata_original_portal": null}`), &r))
		assert.True(t, r.HasPortal)
		assert.Equal(t, "", r.Portal)
	})

	t.Run("marshal_omits_when_absent", func(t *testing.T) {
		b, err := json.Marshal(Record{ID: "x"})
		require.NoError(t, err)
		assert.NotContains(t, string(b), "metadata_original_portal")

		b, err = json.Marshal(Record{ID: "x", HasPortal: true})
		require.NoError(t, err)
		assert.Contains(t, string(b), `"metadata_original_portal":""`)
	})
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	fc.data[GeneralKey] = `{"num_datasets": 50}`
	fc.data["ds-1"] = recordWithIntStatus
	fc.data["ds-2"] = `{"id": "ds-2", "name": "trees", "metadata_original_portal": "p2", "urls": {}}`
	fc.data["ds-3"] = `not json`
	fc.data["harvest_object_id::ds-1"] = `{"id": "ignored"}`

	snap, err := NewStore(fc).Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, 50, snap.General.NumDatasets)
	require.Len(t, snap.Records, 2, "undecodable record is skipped")
	assert.Equal(t, "ds-1", snap.Records[0].ID)
	assert.Equal(t, "ds-2", snap.Records[1].ID)
	assert.Greater(t, fc.scans, 1, "scan follows the cursor")
}

func TestStore_GeneralMissing(t *testing.T) {
	_, err := NewStore(newFakeClient()).Load(context.Background())
	assert.True(t, errors.Is(err, ErrGeneralMissing))
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()

	fc := newFakeClient()
	fc.getErr = errors.New("connection refused")
	_, err := NewStore(fc).General(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	fc = newFakeClient()
	fc.scanErr = errors.New("timeout")
	_, err = NewStore(fc).Keys(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan keys")

	fc = newFakeClient()
	fc.data[GeneralKey] = `{"num_datasets": "many"}`
	_, err = NewStore(fc).General(ctx)
	assert.Error(t, err)
}

func TestStore_ImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	st := NewStore(fc)

	snap := &Snapshot{
		General: General{NumDatasets: 3},
		Records: []Record{
			{ID: "b", Name: "B", Portal: "p", HasPortal: true, URLs: map[string]URLEntry{"u": {Status: "Timeout", Strikes: 1}}},
			{ID: "a", Name: "A"},
		},
	}
	require.NoError(t, st.Import(ctx, snap))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.General.NumDatasets)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "a", got.Records[0].ID)
	assert.Equal(t, Status("Timeout"), got.Records[1].URLs["u"].Status)

	assert.Error(t, st.Put(ctx, Record{}))
}

func TestSnapshotFile(t *testing.T) {
	in := `{"general": {"num_datasets": 7}, "records": [` + recordWithIntStatus + `]}`
	snap, err := ReadSnapshot(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 7, snap.General.NumDatasets)
	require.Len(t, snap.Records, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, snap))
	again, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, snap, again)

	_, err = ReadSnapshot(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestAggregate(t *testing.T) {
	broken := map[string]URLEntry{"u": {Status: "HTTP 500"}}
	snap := &Snapshot{
		General: General{NumDatasets: 50},
		Records: []Record{
			{ID: "1", Name: "zeta", Portal: "b.example", HasPortal: true, URLs: broken},
			{ID: "2", Name: "alpha", Portal: "b.example", HasPortal: true, URLs: broken},
			{ID: "3", Name: "x", Portal: "a.example", HasPortal: true, URLs: broken},
			{ID: "4", Name: "no-urls", Portal: "a.example", HasPortal: true},
			{ID: "5", Name: "legacy", URLs: broken},
		},
	}

	st := Aggregate(snap)
	assert.Equal(t, 3, st.Broken)
	assert.Equal(t, 47, st.Working)
	require.Len(t, st.Portals, 2)
	assert.Equal(t, "a.example", st.Portals[0].Name)
	assert.Equal(t, "a-example", st.Portals[0].Anchor)
	assert.Equal(t, 1, st.Portals[0].Broken())
	assert.Equal(t, []string{"alpha", "zeta"}, []string{st.Portals[1].Records[0].Name, st.Portals[1].Records[1].Name})
}

func TestAmendPortal(t *testing.T) {
	assert.Equal(t, "http---www-example-org-data-a-1-b-2", AmendPortal("http://www.example.org/data?a=1&b=2"))
	assert.Equal(t, "", AmendPortal(""))
}
