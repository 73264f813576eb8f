// Package flightdata builds an itinera graph from flight-record JSON
// files, the ingestion adapter in front of the search core.
//
// Each file holds an array of records naming an origin, a destination, and
// a distance. Identifier preference is IATA over ICAO; distance preference
// is great-circle over actual. The files describe undirected city pairs,
// so every accepted record inserts two directed edges, each carrying the
// record itself as payload for later leg reconstruction.
//
// Ingestion is best-effort by contract: unreadable files, non-array
// documents, and malformed records are logged and skipped, and nothing is
// ever surfaced to the search core or its caller. Duplicate pairs collapse
// to the minimum observed distance (the graph's min-weight merge).
//
// The distance unit is whatever the files carry (historically nautical
// miles in some exports, kilometers in others); the planner is
// unit-agnostic, so one graph must be fed from files sharing a unit.
package flightdata
