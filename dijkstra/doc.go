// Package dijkstra implements single-source shortest distances over an
// itinera graph, and is the distance oracle behind the planner's heuristic.
//
// The algorithm is the classic priority-queue Dijkstra with the
// "lazy decrease-key" strategy: improved distances push duplicate heap
// entries, and stale entries are discarded on pop once their node has been
// finalized. Edge weights are non-negative by graph construction, so no
// negative-weight pre-scan is needed here.
//
// Unreachable nodes are represented by absence: the returned distance map
// contains only nodes reachable from the source. There is no infinity
// sentinel to compare against.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per source.
//   - Space: O(V + E) (distance map plus worst-case heap entries).
//
// Oracle wraps one graph and memoizes Distances per source. A heuristic run
// asks for the same handful of sources over and over (one per remaining
// target, for every expanded state), so the memoization turns an O(states ·
// targets) stream of Dijkstra runs into at most one run per distinct source.
// The graph must not be mutated while an Oracle built on it is in use.
package dijkstra
