// SPDX-License-Identifier: MIT

// Package core defines the word Graph used by wordpath: an undirected,
// simple adjacency structure over string labels.
//
// Every label is interned into a dense NodeID (arena index) at insertion
// time; the Graph keeps the ID ↔ label side table and stores adjacency as
// per-node ordered slices of NodeIDs. Algorithms that care about speed
// (ucs) work on IDs; presentation code works on labels.
//
// Invariants (enforced by AddEdge):
//
//   - Symmetric: B ∈ adj(A) ⇔ A ∈ adj(B).
//   - Simple: no self-loops, no duplicate neighbor entries.
//   - Ordered: neighbor lists preserve insertion order, so a graph built
//     from the same seed and labels enumerates neighbors identically.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("casa")
//	_ = g.AddVertex("perro")
//	_ = g.AddEdge("casa", "perro")
//	g.Freeze() // from here on every mutator returns ErrFrozen
//
// Concurrency:
//
//	All methods are safe for concurrent use (single sync.RWMutex).
//	A frozen Graph is immutable and may be shared read-only between
//	any number of searches.
//
// Errors:
//
//	ErrEmptyLabel      - label is the empty string.
//	ErrVertexNotFound  - requested label does not exist.
//	ErrLoopNotAllowed  - AddEdge(a, a).
//	ErrFrozen          - mutation after Freeze.
package core
