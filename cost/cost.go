// Package cost defines the step-cost policy of the word search.
//
// The cost of moving into a word is that word's intrinsic value: the sum of
// its character code points. It is a node potential rather than a true edge
// weight; the search adds cost(neighbor) per step regardless of the source.
// All values are non-negative, so Dijkstra's optimality holds.
package cost

// Func maps a label to a non-negative step cost. Implementations must be
// deterministic and side-effect free.
type Func func(label string) int64

// ASCII returns the sum of the Unicode code points of label.
// The empty string costs 0.
//
// Complexity: O(len(label)).
func ASCII(label string) int64 {
	var sum int64
	for _, r := range label {
		sum += int64(r)
	}
	return sum
}

// Table returns a Func backed by a fixed table. Labels missing from the
// table cost 0. The table is copied; later changes to m have no effect.
func Table(m map[string]int64) Func {
	t := make(map[string]int64, len(m))
	for k, v := range m {
		t[k] = v
	}
	return func(label string) int64 {
		return t[label]
	}
}
