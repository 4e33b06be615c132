// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, NodeID, Edge types, sentinel errors and the constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that a vertex label is the empty string.
	ErrEmptyLabel = errors.New("core: label is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent label.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; word graphs are simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrFrozen indicates a mutation was attempted on a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")
)

// NodeID is the dense arena index of a vertex. IDs are assigned in
// insertion order starting at 0 and never reused.
type NodeID uint32

// Edge is an undirected connection reported by Graph.Edges.
// From is always lexically smaller than To.
type Edge struct {
	From string
	To   string
}

// Graph is an undirected simple graph over string labels.
//
// labels[id] is the label of NodeID id, ids is the inverse table, and
// adj[id] holds the neighbors of id in insertion order. edgeSet holds one
// packed key per undirected edge for O(1) duplicate detection.
type Graph struct {
	mu     sync.RWMutex
	frozen bool

	labels  []string
	ids     map[string]NodeID
	adj     [][]NodeID
	edgeSet map[uint64]struct{}
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		ids:     make(map[string]NodeID),
		edgeSet: make(map[uint64]struct{}),
	}
}

// NewGraphWithCapacity creates an empty Graph with storage pre-sized for n vertices.
// Complexity: O(n) for allocation.
func NewGraphWithCapacity(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{
		labels:  make([]string, 0, n),
		ids:     make(map[string]NodeID, n),
		adj:     make([][]NodeID, 0, n),
		edgeSet: make(map[uint64]struct{}, n),
	}
}

// Freeze makes the graph immutable. It is idempotent.
// After Freeze, AddVertex and AddEdge return ErrFrozen.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// edgeKey packs an unordered pair of IDs into a single map key.
func edgeKey(a, b NodeID) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}
