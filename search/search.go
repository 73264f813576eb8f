package search

import (
	"container/heap"
	"fmt"
	"sort"
	"time"

	"github.com/aerovia/itinera/dijkstra"
	"github.com/aerovia/itinera/graph"
	"github.com/aerovia/itinera/heuristic"
)

// Solve finds a minimum-cost route in g from start that visits every node
// in targets, in any order. Target IDs are case-insensitive and
// deduplicated; the same set always produces the same result regardless of
// input order.
//
// Returns an input error (ErrNilGraph, ErrNodeNotFound, ErrTooManyTargets)
// before any search work, or a Result whose Found field says whether a
// route was proven within the iteration/time budgets.
func Solve(g *graph.Graph, start string, targets []string, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate inputs. None of this consumes search budget.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	start = graph.NormalizeID(start)
	if !g.HasNode(start) {
		return Result{}, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}

	arena, index := buildArena(targets)
	if len(arena) > 64 {
		return Result{}, fmt.Errorf("%w: got %d", ErrTooManyTargets, len(arena))
	}
	for _, id := range arena {
		if !g.HasNode(id) {
			return Result{}, fmt.Errorf("%w: target %q", ErrNodeNotFound, id)
		}
	}
	full := fullMask(len(arena))

	// 2) Per-invocation machinery: distance oracle and heuristic, both
	//    scoped to this call so nothing leaks across searches.
	oracle := dijkstra.NewOracle(g)
	est := heuristic.New(oracle, arena)

	// 3) Seed the frontier with the start state.
	var visited uint64
	if bit, ok := index[start]; ok {
		visited = 1 << uint(bit)
	}
	h0, reachable, err := est.Estimate(start, full&^visited)
	if err != nil {
		return Result{}, err
	}
	if !reachable {
		// Some target cannot be reached from anywhere near the start;
		// the frontier would only ever prune.
		return Result{Reason: ReasonExhausted}, nil
	}

	r := &runner{
		g:    g,
		est:  est,
		cfg:  cfg,
		full: full,
		idx:  index,
		best: map[stateKey]float64{{node: start, visited: visited}: 0},
	}
	heap.Init(&r.frontier)
	heap.Push(&r.frontier, &entry{
		f:       h0,
		node:    start,
		visited: visited,
		path:    []string{start},
	})

	return r.run()
}

// buildArena normalizes, deduplicates, and sorts the target IDs, returning
// the stable arena slice and the ID→bit index. The sort fixes bit
// positions independently of input order, which is what makes results
// invariant under target reordering.
func buildArena(targets []string) ([]string, map[string]int) {
	seen := make(map[string]struct{}, len(targets))
	arena := make([]string, 0, len(targets))
	for _, t := range targets {
		id := graph.NormalizeID(t)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		arena = append(arena, id)
	}
	sort.Strings(arena)

	index := make(map[string]int, len(arena))
	for i, id := range arena {
		index[id] = i
	}

	return arena, index
}

// fullMask returns the bitmask with the low n bits set.
func fullMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return (1 << uint(n)) - 1
}

// stateKey identifies a search state: the current node and the bitmask of
// targets already visited. Comparable, so it keys the best-cost table
// directly.
type stateKey struct {
	node    string
	visited uint64
}

// runner holds the mutable state of one Solve call.
type runner struct {
	g        *graph.Graph
	est      *heuristic.Estimator
	cfg      Options
	full     uint64
	idx      map[string]int
	best     map[stateKey]float64
	frontier frontier
	seq      uint64
	iters    int
}

// run is the main A* loop: budget check, pop, stale filter, goal test,
// expand.
func (r *runner) run() (Result, error) {
	deadline := time.Now().Add(r.cfg.TimeLimit)

	for r.frontier.Len() > 0 {
		// Budgets are checked before each pop, so MaxIterations counts pops.
		if r.iters >= r.cfg.MaxIterations {
			return Result{Reason: ReasonIterationLimit, Iterations: r.iters}, nil
		}
		if time.Now().After(deadline) {
			return Result{Reason: ReasonTimeLimit, Iterations: r.iters}, nil
		}

		e := heap.Pop(&r.frontier).(*entry)
		r.iters++

		// Stale entry: a cheaper route to this state was queued later.
		if e.g > r.best[stateKey{node: e.node, visited: e.visited}] {
			continue
		}

		// Lazy goal test: with an admissible heuristic, the first goal
		// popped is optimal.
		if e.visited == r.full {
			return Result{
				Path:       e.path,
				Cost:       e.g,
				Found:      true,
				Reason:     ReasonGoal,
				Iterations: r.iters,
			}, nil
		}

		if err := r.expand(e); err != nil {
			return Result{}, err
		}
	}

	return Result{Reason: ReasonExhausted, Iterations: r.iters}, nil
}

// expand pushes every non-dominated, non-pruned successor of e.
func (r *runner) expand(e *entry) error {
	// Neighbor maps iterate in random order; sort so equal-cost ties are
	// always broken the same way run after run.
	nbrs := r.g.Neighbors(e.node)
	ids := make([]string, 0, len(nbrs))
	for id := range nbrs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, v := range ids {
		ng := e.g + nbrs[v].Weight

		nvisited := e.visited
		if bit, isTarget := r.idx[v]; isTarget {
			nvisited |= 1 << uint(bit)
		}

		// Dominance: only a strictly better cost (beyond the tolerance)
		// earns a new frontier entry.
		key := stateKey{node: v, visited: nvisited}
		if prev, known := r.best[key]; known && ng+epsilon >= prev {
			continue
		}

		h, reachable, err := r.est.Estimate(v, r.full&^nvisited)
		if err != nil {
			return err
		}
		if !reachable {
			// Remaining targets cannot all be reached from v: prune.
			continue
		}

		r.best[key] = ng

		path := make([]string, len(e.path)+1)
		copy(path, e.path)
		path[len(e.path)] = v

		r.seq++
		heap.Push(&r.frontier, &entry{
			f:       ng + h,
			g:       ng,
			node:    v,
			visited: nvisited,
			path:    path,
			seq:     r.seq,
		})
	}

	return nil
}

// entry is a frontier element. seq is a monotone insertion counter and the
// final tie-break; the visited mask never participates in ordering.
type entry struct {
	f       float64
	g       float64
	node    string
	visited uint64
	path    []string
	seq     uint64
}

// frontier is a min-heap of *entry ordered by (f, g, seq) ascending — a
// strict total order, so pops are deterministic.
type frontier []*entry

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].g != q[j].g {
		return q[i].g < q[j].g
	}

	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x interface{}) { *q = append(*q, x.(*entry)) }

func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
