// File: components.go
// Role: Connected-component analysis. RandomNeighbors does not guarantee
// connectivity, so callers use this to explain Unreachable outcomes.

package core

import "github.com/RoaringBitmap/roaring/v2"

// Components returns the connected components of g as label slices.
//
// Implementation:
//   - Iterative DFS from every unseen NodeID in ascending order.
//   - Membership is tracked in a roaring bitmap keyed by NodeID.
//
// Determinism:
//   - Components are ordered by their smallest NodeID; labels inside a
//     component are listed in discovery order.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func (g *Graph) Components() [][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := roaring.New()
	var out [][]string
	stack := make([]NodeID, 0, len(g.labels))

	for root := range g.labels {
		if seen.Contains(uint32(root)) {
			continue
		}
		seen.Add(uint32(root))
		stack = append(stack[:0], NodeID(root))

		var comp []string
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, g.labels[u])
			for _, v := range g.adj[u] {
				if seen.CheckedAdd(uint32(v)) {
					stack = append(stack, v)
				}
			}
		}
		out = append(out, comp)
	}

	return out
}

// SameComponent reports whether a and b are connected by some path.
// Absent labels are never connected.
// Complexity: O(V + E) worst case.
func (g *Graph) SameComponent(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ia, okA := g.ids[a]
	ib, okB := g.ids[b]
	if !okA || !okB {
		return false
	}
	if ia == ib {
		return true
	}

	seen := roaring.New()
	seen.Add(uint32(ia))
	stack := []NodeID{ia}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range g.adj[u] {
			if v == ib {
				return true
			}
			if seen.CheckedAdd(uint32(v)) {
				stack = append(stack, v)
			}
		}
	}

	return false
}
