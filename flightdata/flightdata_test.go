// Package flightdata_test validates best-effort ingestion: field
// preference rules, undirected insertion, min-weight merge across files,
// and silent skipping of malformed files and records.
package flightdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerovia/itinera/flightdata"
	"github.com/aerovia/itinera/graph"
)

// writeJSON drops content into a temp file and returns its path.
func writeJSON(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	return p
}

func TestLoadGraph_BasicAndBothDirections(t *testing.T) {
	p := writeJSON(t, "flights.json", `[
		{"orig_iata": "LAX", "dest_iata": "SFO", "circle_distance": 293.4}
	]`)

	g := flightdata.LoadGraph(p)

	forward, ok := g.Edge("LAX", "SFO")
	require.True(t, ok)
	assert.Equal(t, 293.4, forward.Weight)

	back, ok := g.Edge("SFO", "LAX")
	require.True(t, ok, "undirected pairs must insert both directions")
	assert.Equal(t, 293.4, back.Weight)

	rec, isRec := forward.Payload.(flightdata.Record)
	require.True(t, isRec, "the record must ride along as edge payload")
	assert.Equal(t, "LAX", rec.OrigIATA)
}

func TestLoadGraph_FallbacksAndPreferences(t *testing.T) {
	p := writeJSON(t, "flights.json", `[
		{"orig_icao": "KLAX", "dest_icao": "KPHX", "actual_distance": 370},
		{"orig_iata": "DEN", "dest_iata": "PHX", "circle_distance": 500, "actual_distance": 999}
	]`)

	g := flightdata.LoadGraph(p)

	// ICAO fallback when IATA is absent.
	assert.True(t, g.HasNode("KLAX"))
	e, ok := g.Edge("KLAX", "KPHX")
	require.True(t, ok)
	assert.Equal(t, 370.0, e.Weight)

	// Great-circle distance preferred over actual.
	e, ok = g.Edge("DEN", "PHX")
	require.True(t, ok)
	assert.Equal(t, 500.0, e.Weight)
}

func TestLoadGraph_MinWeightMergeAcrossFiles(t *testing.T) {
	a := writeJSON(t, "a.json", `[{"orig_iata": "LAX", "dest_iata": "SFO", "circle_distance": 300}]`)
	b := writeJSON(t, "b.json", `[{"orig_iata": "SFO", "dest_iata": "LAX", "circle_distance": 290}]`)

	g := flightdata.LoadGraph(a, b)

	e, ok := g.Edge("LAX", "SFO")
	require.True(t, ok)
	assert.Equal(t, 290.0, e.Weight, "minimum observed distance must win")
}

func TestLoadGraph_SkipsMalformedSilently(t *testing.T) {
	p := writeJSON(t, "flights.json", `[
		{"orig_iata": "LAX", "dest_iata": "SFO", "circle_distance": 293},
		{"orig_iata": "", "dest_iata": "SFO", "circle_distance": 100},
		{"orig_iata": "AAA", "dest_iata": "BBB"},
		{"orig_iata": "CCC", "dest_iata": "ccc", "circle_distance": 50},
		{"orig_iata": "DDD", "dest_iata": "EEE", "circle_distance": -10}
	]`)

	g := flightdata.LoadGraph(p)

	// Only the first record survives; CCC/ccc is a self-pair after
	// normalization, -10 is negative, the others lack data.
	assert.Equal(t, []string{"LAX", "SFO"}, g.Nodes())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestLoadGraph_BadFilesAreSkipped(t *testing.T) {
	bad := writeJSON(t, "bad.json", `{"not": "an array"}`)
	good := writeJSON(t, "good.json", `[{"orig_iata": "A1", "dest_iata": "B1", "circle_distance": 7}]`)

	g := flightdata.LoadGraph(bad, filepath.Join(t.TempDir(), "missing.json"), good)

	assert.True(t, g.HasNode("A1"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestMerge_Direct(t *testing.T) {
	g := graph.New()

	ok := flightdata.Merge(g, flightdata.Record{
		OrigIATA: "JFK", DestIATA: "BOS", CircleDistance: 187,
	})
	assert.True(t, ok)
	assert.True(t, g.HasNode("JFK"))

	assert.False(t, flightdata.Merge(g, flightdata.Record{OrigIATA: "JFK"}))
}
