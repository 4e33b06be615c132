// File: methods_edges.go
// Role: Edge insertion with symmetric closure, adjacency queries.
//
// Determinism:
//   - Neighbor lists keep insertion order.
//   - Edges() is sorted by (From, To).

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects a and b in both directions.
//
// Implementation:
//   - Stage 1: Reject self-loops (ErrLoopNotAllowed).
//   - Stage 2: Resolve both labels (ErrVertexNotFound); vertices are never auto-added.
//   - Stage 3: If the unordered pair is new, append b to adj(a) and a to adj(b).
//
// Returns:
//   - added: false when the edge already existed (no-op).
//   - error: see Errors.
//
// Errors:
//   - ErrLoopNotAllowed, ErrVertexNotFound, ErrFrozen.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(a, b string) (bool, error) {
	if a == b {
		return false, fmt.Errorf("AddEdge(%q,%q): %w", a, b, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return false, fmt.Errorf("AddEdge(%q,%q): %w", a, b, ErrFrozen)
	}
	ia, ok := g.ids[a]
	if !ok {
		return false, fmt.Errorf("AddEdge: %q: %w", a, ErrVertexNotFound)
	}
	ib, ok := g.ids[b]
	if !ok {
		return false, fmt.Errorf("AddEdge: %q: %w", b, ErrVertexNotFound)
	}

	key := edgeKey(ia, ib)
	if _, dup := g.edgeSet[key]; dup {
		return false, nil
	}
	g.edgeSet[key] = struct{}{}
	g.adj[ia] = append(g.adj[ia], ib)
	g.adj[ib] = append(g.adj[ib], ia)

	return true, nil
}

// HasEdge reports whether a and b are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ia, okA := g.ids[a]
	ib, okB := g.ids[b]
	if !okA || !okB {
		return false
	}
	_, ok := g.edgeSet[edgeKey(ia, ib)]

	return ok
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeSet)
}

// Neighbors returns a copy of label's neighbor labels in insertion order.
//
// Errors:
//   - ErrVertexNotFound if label is absent.
//
// Complexity: O(d).
func (g *Graph) Neighbors(label string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.ids[label]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", label, ErrVertexNotFound)
	}
	out := make([]string, len(g.adj[id]))
	for i, nb := range g.adj[id] {
		out[i] = g.labels[nb]
	}

	return out, nil
}

// NeighborIDs returns the neighbor IDs of id, or nil if id is out of range.
//
// The returned slice aliases internal storage and MUST NOT be modified.
// Entries are never rewritten in place, so the slice stays valid even if
// the graph is still being built.
//
// Complexity: O(1).
func (g *Graph) NeighborIDs(id NodeID) []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if int(id) >= len(g.adj) {
		return nil
	}
	return g.adj[id]
}

// AdjacencyList returns a deep copy of the graph as label → ordered neighbor labels.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.labels))
	for id, label := range g.labels {
		nbrs := make([]string, len(g.adj[id]))
		for i, nb := range g.adj[id] {
			nbrs[i] = g.labels[nb]
		}
		out[label] = nbrs
	}

	return out
}

// Edges returns every undirected edge once, with From < To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edgeSet))
	for key := range g.edgeSet {
		a, b := g.labels[NodeID(key>>32)], g.labels[NodeID(key&0xFFFFFFFF)]
		if b < a {
			a, b = b, a
		}
		out = append(out, Edge{From: a, To: b})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
