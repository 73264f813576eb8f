package flightdata

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/aerovia/itinera/graph"
)

// Record is one flight row as found in the source JSON exports. Field
// names mirror the files; absent numbers decode as zero, which the
// ingestion rules treat as "not provided".
type Record struct {
	OrigIATA       string  `json:"orig_iata"`
	OrigICAO       string  `json:"orig_icao"`
	DestIATA       string  `json:"dest_iata"`
	DestICAO       string  `json:"dest_icao"`
	CircleDistance float64 `json:"circle_distance"`
	ActualDistance float64 `json:"actual_distance"`
}

// Origin returns the preferred origin identifier (IATA, then ICAO).
func (r Record) Origin() string {
	if r.OrigIATA != "" {
		return r.OrigIATA
	}

	return r.OrigICAO
}

// Destination returns the preferred destination identifier.
func (r Record) Destination() string {
	if r.DestIATA != "" {
		return r.DestIATA
	}

	return r.DestICAO
}

// Distance returns the preferred distance (great-circle, then actual) and
// whether any positive distance was provided.
func (r Record) Distance() (float64, bool) {
	if r.CircleDistance > 0 {
		return r.CircleDistance, true
	}
	if r.ActualDistance > 0 {
		return r.ActualDistance, true
	}

	return 0, false
}

// LoadGraph reads every path and builds a graph from the records found.
// Best-effort: problems are logged and skipped, never returned. The result
// may be empty but is never nil.
func LoadGraph(paths ...string) *graph.Graph {
	g := graph.New()
	for _, p := range paths {
		if err := loadFile(g, p); err != nil {
			log.WithError(err).Warnf("skipping flight data file %s", p)
		}
	}
	log.Debugf("flight graph loaded: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	return g
}

// loadFile merges one file into g. Only file-level problems (unreadable,
// not a JSON array) are returned; record-level problems are skipped
// in-place.
func loadFile(g *graph.Graph, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var records []Record
	if err = json.Unmarshal(data, &records); err != nil {
		return err
	}

	var accepted int
	for _, rec := range records {
		if Merge(g, rec) {
			accepted++
		}
	}
	log.Debugf("%s: accepted %d of %d records", path, accepted, len(records))

	return nil
}

// Merge inserts one record into g as a pair of directed edges, reporting
// whether the record was usable. Malformed records (missing endpoint,
// missing distance, self-pair) are dropped silently per the ingestion
// contract.
func Merge(g *graph.Graph, rec Record) bool {
	origin, dest := rec.Origin(), rec.Destination()
	w, ok := rec.Distance()
	if origin == "" || dest == "" || !ok {
		return false
	}

	// The source pairs are undirected; the graph is directed, so insert
	// both directions explicitly.
	if err := g.AddEdge(origin, dest, w, rec); err != nil {
		log.WithError(err).Debugf("dropping record %s-%s", origin, dest)
		return false
	}
	if err := g.AddEdge(dest, origin, w, rec); err != nil {
		log.WithError(err).Debugf("dropping reverse record %s-%s", dest, origin)
		return false
	}

	return true
}
