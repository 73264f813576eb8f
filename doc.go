// Package itinera plans minimum-distance routes that visit a required set
// of stops in a directed weighted network, using A* over
// (node, visited-subset) states with an admissible MST lower bound.
//
// What's inside:
//
//	graph/      — the directed weighted graph the planner searches over
//	dijkstra/   — single-source shortest distances + per-search oracle cache
//	heuristic/  — MST-over-remaining-targets admissible bound
//	search/     — the A* driver, budgets, and path reconstruction
//	flightdata/ — flight-record JSON ingestion (the reference deployment)
//	server/     — HTTP adapter: POST /itinerary
//	cmd/        — the itinera command-line wrapper
//
// The core (graph → dijkstra → heuristic → search) is adapter-agnostic:
// any collaborator that can fill a graph.Graph and read back a
// search.Result can sit in front of it. Each search invocation is
// independent and synchronous, bounded by an iteration cap and a
// wall-clock limit, and returns either a proven-optimal route or an
// explicit no-result, never a wrong path.
//
// Quick taste:
//
//	g := graph.New()
//	g.AddEdge("LAX", "SFO", 293, nil)
//	g.AddEdge("SFO", "DEN", 849, nil)
//	res, err := search.Solve(g, "LAX", []string{"DEN"})
//
// The planner is unit-agnostic: feed one graph from sources sharing a
// distance unit and the results come back in that unit.
package itinera
