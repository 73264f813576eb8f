package search

import (
	"fmt"

	"github.com/aerovia/itinera/graph"
)

// Leg is one traversed edge of a reconstructed route, carrying the payload
// the ingestion layer stored on it (the source flight record, in the
// flight deployment).
type Leg struct {
	From    string
	To      string
	Weight  float64
	Payload any
}

// Reconstruct maps a winning node sequence back onto the graph's edges,
// returning one Leg per consecutive pair and the total weight across legs.
//
// The search only walks edges that exist, so every pair must resolve; a
// missing edge means the path and the graph disagree and yields
// ErrBrokenPath (a defect, not a user condition). Paths of fewer than two
// nodes reconstruct to no legs and zero total.
func Reconstruct(g *graph.Graph, path []string) ([]Leg, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if len(path) < 2 {
		return nil, 0, nil
	}

	legs := make([]Leg, 0, len(path)-1)
	var total float64
	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]
		e, ok := g.Edge(from, to)
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s→%s", ErrBrokenPath, from, to)
		}
		legs = append(legs, Leg{From: from, To: to, Weight: e.Weight, Payload: e.Payload})
		total += e.Weight
	}

	return legs, total, nil
}
