// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordpath/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls keep the
// adjacency symmetric and free of duplicates.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.AddVertex("X"))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}

	var wg sync.WaitGroup
	wg.Add(2 * num)
	for i := 0; i < num; i++ {
		// Each edge is added twice, once per direction, from different goroutines.
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id))
			require.NoError(t, err)
		}(i)
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(fmt.Sprintf("V%d", id), "X")
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num, "expected %d unique neighbors", num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadsOnFrozenGraph runs many readers against a frozen graph.
func TestConcurrentReadsOnFrozenGraph(t *testing.T) {
	g := twoIslands(t)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Components()
			_, _ = g.Neighbors("b")
			_ = g.AdjacencyList()
		}()
	}
	wg.Wait()
}
