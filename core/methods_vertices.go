// File: methods_vertices.go
// Role: Vertex lifecycle, label/ID translation and vertex queries.
//
// Determinism:
//   - Vertices() returns labels in insertion (NodeID) order.

package core

import "fmt"

// AddVertex interns label as a new vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty label (ErrEmptyLabel).
//   - Stage 2: Under the write lock reject frozen graphs, then assign the next NodeID.
//
// Returns:
//   - error: nil on success (including "already present").
//
// Errors:
//   - ErrEmptyLabel, ErrFrozen.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return fmt.Errorf("AddVertex(%q): %w", label, ErrFrozen)
	}
	if _, ok := g.ids[label]; ok {
		return nil
	}
	id := NodeID(len(g.labels))
	g.labels = append(g.labels, label)
	g.adj = append(g.adj, nil)
	g.ids[label] = id

	return nil
}

// HasVertex reports whether label is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(label string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.ids[label]
	return ok
}

// ID returns the NodeID of label.
// Complexity: O(1).
func (g *Graph) ID(label string) (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.ids[label]
	return id, ok
}

// Label returns the label interned as id, or "" if id is out of range.
// Complexity: O(1).
func (g *Graph) Label(id NodeID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if int(id) >= len(g.labels) {
		return ""
	}
	return g.labels[id]
}

// Vertices returns a copy of all labels in NodeID order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.labels)
}

// Degree returns the number of neighbors of label.
//
// Errors:
//   - ErrVertexNotFound if label is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(label string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.ids[label]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", label, ErrVertexNotFound)
	}
	return len(g.adj[id]), nil
}
