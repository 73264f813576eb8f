package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates an edge endpoint with an empty identifier.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// Edge is a directed connection to a neighbor.
//
// Weight is a non-negative distance in whatever unit the ingestion layer
// used; the planner is unit-agnostic and only requires that all edges of
// one Graph share a unit. Payload holds the source record the edge was
// built from (or nil) and is returned verbatim by path reconstruction.
type Edge struct {
	Weight  float64
	Payload any
}

// Graph is a directed, weighted adjacency map: node ID → neighbor ID → Edge.
type Graph struct {
	adjacency map[string]map[string]Edge
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{adjacency: make(map[string]map[string]Edge)}
}

// NormalizeID uppercases and trims a node identifier. All Graph methods
// apply it to their arguments, so callers may pass IDs in any case.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// AddEdge inserts the directed edge from→to with the given weight and
// payload, registering both endpoints as nodes.
//
// If an edge for the ordered pair already exists, the lighter one wins and
// the payload follows the winning weight. Validation (in order):
//  1. Both endpoints non-empty after normalization (ErrEmptyNodeID).
//  2. Endpoints distinct (ErrSelfLoop).
//  3. Weight ≥ 0 (ErrNegativeWeight).
func (g *Graph) AddEdge(from, to string, weight float64, payload any) error {
	from = NormalizeID(from)
	to = NormalizeID(to)

	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to {
		return ErrSelfLoop
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}

	g.ensureNode(from)
	g.ensureNode(to)

	// Min-weight merge: keep the cheaper of duplicate records.
	if prev, ok := g.adjacency[from][to]; ok && prev.Weight <= weight {
		return nil
	}
	g.adjacency[from][to] = Edge{Weight: weight, Payload: payload}

	return nil
}

// ensureNode registers id with an empty (but non-nil) neighbor map.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]Edge)
	}
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adjacency[NormalizeID(id)]
	return ok
}

// Neighbors returns the outgoing edges of node, keyed by neighbor ID.
// The returned map is the graph's own storage and must not be mutated;
// unknown nodes yield nil.
func (g *Graph) Neighbors(node string) map[string]Edge {
	return g.adjacency[NormalizeID(node)]
}

// Edge returns the directed edge from→to, if present.
func (g *Graph) Edge(from, to string) (Edge, bool) {
	e, ok := g.adjacency[NormalizeID(from)][NormalizeID(to)]
	return e, ok
}

// Nodes returns all node IDs in ascending order.
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	var n int
	for _, nbrs := range g.adjacency {
		n += len(nbrs)
	}

	return n
}
