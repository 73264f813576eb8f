// Package heuristic computes the admissible lower bound that orders the
// planner's A* frontier.
//
// For a state (current node, remaining targets R) the estimate is
//
//	MST(R) + min distance from current to any node of R
//
// where MST(R) is the minimum-spanning-tree cost of the complete graph
// induced on R by pairwise shortest-path distances, computed with Prim's
// algorithm, and all distances come from the shared dijkstra.Oracle.
// Distances are directed and may be asymmetric; each target pair is
// weighted by the cheaper of its two directions, which keeps the bound
// valid on one-way networks.
//
// Both terms lower-bound the true remaining cost: any route must first
// reach some element of R (at least the nearest-distance term), and must
// connect all of R (at least the MST cost, since a path visiting R is a
// spanning structure over R). Their sum therefore never overestimates,
// which is what makes A* return optimal routes.
//
// An Estimator memoizes results per (node, remaining-set) for the duration
// of one search run; the set is a bitmask over the run's target arena, so
// the memo key is a comparable value with O(1) hashing.
//
// Disconnection is reported, not encoded as infinity: Estimate returns
// ok=false when some remaining target cannot be connected, and the search
// prunes that successor instead of queuing it.
package heuristic
