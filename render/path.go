package render

// pathIndex answers "is this node/edge on the path" in O(1).
type pathIndex struct {
	nodes map[string]bool
	edges map[[2]string]bool
}

func newPathIndex(path []string) pathIndex {
	idx := pathIndex{
		nodes: make(map[string]bool, len(path)),
		edges: make(map[[2]string]bool, len(path)),
	}
	for i, l := range path {
		idx.nodes[l] = true
		if i > 0 {
			idx.edges[pairKey(path[i-1], l)] = true
		}
	}
	return idx
}

func (p pathIndex) hasNode(l string) bool { return p.nodes[l] }

func (p pathIndex) hasEdge(a, b string) bool { return p.edges[pairKey(a, b)] }

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
