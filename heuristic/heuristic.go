package heuristic

import (
	"math/bits"

	"github.com/aerovia/itinera/dijkstra"
)

// Estimator produces admissible remaining-cost estimates for one search
// run. It is bound to an oracle over the run's graph and to the run's
// target arena: a stable, pre-enumerated slice of target IDs against which
// remaining-set bitmasks are interpreted (bit i ⇔ targets[i]).
//
// Not safe for concurrent use; each search invocation owns its own.
type Estimator struct {
	oracle  *dijkstra.Oracle
	targets []string
	memo    map[memoKey]memoVal
}

// memoKey identifies one heuristic evaluation: the node the estimate is
// taken from and the bitmask of targets still remaining.
type memoKey struct {
	node string
	rem  uint64
}

type memoVal struct {
	est float64
	ok  bool
}

// New returns an Estimator over the given oracle and target arena. The
// arena slice is retained and must not change during the estimator's
// lifetime; its order defines the meaning of every remaining-set bitmask.
func New(oracle *dijkstra.Oracle, targets []string) *Estimator {
	return &Estimator{
		oracle:  oracle,
		targets: targets,
		memo:    make(map[memoKey]memoVal),
	}
}

// Estimate returns a lower bound on the cost of visiting every target in
// the remaining bitmask starting from current. ok=false means some
// remaining target is unreachable (no finite estimate exists); the caller
// should prune rather than queue. An error is only possible when current
// or a target is missing from the graph, which a validated search never
// produces.
func (e *Estimator) Estimate(current string, remaining uint64) (est float64, ok bool, err error) {
	if remaining == 0 {
		return 0, true, nil
	}

	key := memoKey{node: current, rem: remaining}
	if v, hit := e.memo[key]; hit {
		return v.est, v.ok, nil
	}

	est, ok, err = e.compute(current, remaining)
	if err != nil {
		return 0, false, err
	}
	e.memo[key] = memoVal{est: est, ok: ok}

	return est, ok, nil
}

// compute evaluates the bound without consulting the memo.
func (e *Estimator) compute(current string, remaining uint64) (float64, bool, error) {
	// Materialize the remaining target IDs from the bitmask.
	nodes := make([]string, 0, bits.OnesCount64(remaining))
	for mask := remaining; mask != 0; mask &= mask - 1 {
		nodes = append(nodes, e.targets[bits.TrailingZeros64(mask)])
	}

	// One oracle call per remaining target gives the pairwise matrix rows.
	rows := make([]map[string]float64, len(nodes))
	for i, id := range nodes {
		d, err := e.oracle.From(id)
		if err != nil {
			return 0, false, err
		}
		rows[i] = d
	}

	mst, connected := primCost(nodes, rows)
	if !connected {
		return 0, false, nil
	}

	// Nearest remaining target from the current node.
	fromCurrent, err := e.oracle.From(current)
	if err != nil {
		return 0, false, err
	}
	nearest, reachable := 0.0, false
	for _, id := range nodes {
		if d, seen := fromCurrent[id]; seen && (!reachable || d < nearest) {
			nearest, reachable = d, true
		}
	}
	if !reachable {
		return 0, false, nil
	}

	return mst + nearest, true, nil
}

// primCost runs Prim's algorithm on the complete graph over nodes whose
// pair weights come from pairDist. It returns the MST total and whether
// the set is connected under finite distances.
//
// Time: O(n²) over n = len(nodes), which is tiny (≤ 64 targets) next to the
// Dijkstra runs that feed it.
func primCost(nodes []string, rows []map[string]float64) (float64, bool) {
	n := len(nodes)

	inTree := make([]bool, n)
	best := make([]float64, n)    // cheapest edge into the tree per node
	hasBest := make([]bool, n)    // whether any finite edge is known yet
	best[0], hasBest[0] = 0, true // grow from the first remaining target

	var total float64
	for it := 0; it < n; it++ {
		// Pick the cheapest connectable node not yet in the tree.
		u := -1
		for v := 0; v < n; v++ {
			if inTree[v] || !hasBest[v] {
				continue
			}
			if u < 0 || best[v] < best[u] {
				u = v
			}
		}
		if u < 0 {
			// No finite pair connects the tree to the rest: disconnected.
			return 0, false
		}

		inTree[u] = true
		total += best[u]

		// Relax distances from the freshly added node.
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if w, seen := pairDist(rows, nodes, u, v); seen && (!hasBest[v] || w < best[v]) {
				best[v], hasBest[v] = w, true
			}
		}
	}

	return total, true
}

// pairDist weights the unordered target pair (i, j) as the cheaper of the
// two directed shortest-path distances, finite when either direction is.
//
// The graph is directed and distances need not be symmetric, but the MST
// bound must stay a lower bound either way: a route touching both targets
// traverses one of the two directions, so it pays at least the minimum of
// them. Using a single direction here would overestimate on asymmetric
// graphs (destroying admissibility) and would misreport target sets as
// disconnected when only the reverse direction exists.
func pairDist(rows []map[string]float64, nodes []string, i, j int) (float64, bool) {
	forward, okF := rows[i][nodes[j]]
	reverse, okR := rows[j][nodes[i]]
	switch {
	case okF && okR:
		if reverse < forward {
			return reverse, true
		}

		return forward, true
	case okF:
		return forward, true
	case okR:
		return reverse, true
	default:
		return 0, false
	}
}
