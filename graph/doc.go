// Package graph provides the directed, weighted graph that the itinera
// planner searches over.
//
// Model:
//
//   - Nodes are string identifiers (airport codes in the flight deployment),
//     uppercased on insertion so lookups are case-insensitive by convention.
//   - Edges are directed and carry a non-negative float64 weight plus an
//     opaque payload (the source record the edge was built from). An edge
//     a→b says nothing about b→a; undirected source data must be inserted
//     as two explicit edges by the ingestion layer.
//   - Multiple insertions for the same ordered (from, to) pair collapse to
//     the minimum-weight edge; the payload follows the winning weight.
//
// A Graph is built once by an ingestion adapter and is read-only for the
// lifetime of any search using it. The type performs no internal locking:
// concurrent searches over one Graph are safe exactly because nothing
// mutates it after construction.
package graph
