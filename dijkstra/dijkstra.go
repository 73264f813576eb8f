package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/aerovia/itinera/graph"
)

// Sentinel errors returned by the oracle.
var (
	// ErrNilGraph indicates a nil *graph.Graph was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates the source node does not exist in the graph.
	ErrNodeNotFound = errors.New("dijkstra: source node not found")
)

// Distances computes shortest distances from source to every reachable node
// of g. Nodes absent from the result are unreachable.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must exist in g (ErrNodeNotFound, wrapped with the ID).
func Distances(g *graph.Graph, source string) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	source = graph.NormalizeID(source)
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, source)
	}

	dist := map[string]float64{source: 0}
	done := make(map[string]bool, g.NodeCount())

	pq := nodePQ{{id: source, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)

		// Stale entry: a shorter distance for this node was already finalized.
		if done[item.id] {
			continue
		}
		done[item.id] = true

		for nbr, e := range g.Neighbors(item.id) {
			next := item.dist + e.Weight
			if best, seen := dist[nbr]; seen && next >= best {
				continue
			}
			dist[nbr] = next
			heap.Push(&pq, &nodeItem{id: nbr, dist: next})
		}
	}

	return dist, nil
}

// Oracle memoizes Distances per source node over one immutable graph.
// It is not safe for concurrent use; each search invocation owns its own.
type Oracle struct {
	g     *graph.Graph
	cache map[string]map[string]float64
}

// NewOracle returns an Oracle over g. g must be non-nil and must not be
// mutated for the Oracle's lifetime.
func NewOracle(g *graph.Graph) *Oracle {
	return &Oracle{g: g, cache: make(map[string]map[string]float64)}
}

// From returns the shortest-distance map from source, computing it on first
// use and serving the cached map afterwards. Callers must treat the result
// as read-only.
func (o *Oracle) From(source string) (map[string]float64, error) {
	source = graph.NormalizeID(source)
	if d, ok := o.cache[source]; ok {
		return d, nil
	}

	d, err := Distances(o.g, source)
	if err != nil {
		return nil, err
	}
	o.cache[source] = d

	return d, nil
}

// nodeItem is a heap entry: a node and its tentative distance from source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance.
// Duplicates are expected (lazy decrease-key) and filtered on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
