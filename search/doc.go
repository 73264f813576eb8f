// Package search implements the itinera planner's A* search over
// (current node, visited-target-subset) states, returning a minimum-cost
// route from a start node that visits every requested target.
//
// State space:
//
//   - A state is the pair (node, visited) where visited is the subset of
//     targets already satisfied, encoded as a bitmask over a stable,
//     pre-enumerated target arena. Two states are equal iff both components
//     are equal, regardless of the path taken; visited only ever grows.
//   - From (u, V), each outgoing edge u→v of weight w yields the successor
//     (v, V ∪ {v} if v is a target else V) at cost g+w.
//   - The goal is any state whose visited mask covers all targets, tested
//     lazily when the entry is popped.
//
// Frontier ordering is a strict total order: ascending f = g + h, then
// ascending g, then ascending insertion sequence number. The bitmask never
// participates in comparisons. With the admissible bound from package
// heuristic, the first goal pop is an optimal route.
//
// Bookkeeping follows the lazy decrease-key pattern shared with package
// dijkstra: improved paths push duplicate entries, a best-cost table keyed
// by state discards dominated and stale ones (with a 1e-9 tolerance so
// floating-point noise cannot re-queue a state), and successors whose
// heuristic is infinite — some remaining target unreachable — are pruned
// outright.
//
// The loop is bounded by an iteration cap and a wall-clock limit, both
// checked before each pop. Exhausting either, or emptying the frontier, is
// a normal outcome reported as Result{Found: false} with a StopReason —
// not an error. Errors are reserved for rejected inputs (unknown node,
// oversized target set, nil graph), detected before any search work.
//
// A Solve call is self-contained: it owns its oracle, estimator, frontier,
// and best-cost table, and nothing persists across calls. Concurrent Solve
// calls over one immutable Graph need no synchronization.
package search
