// Package builder_test verifies the word-graph constructors: structural
// invariants, determinism per seed and configuration validation.
package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordpath/builder"
	"github.com/katalvlaran/wordpath/core"
)

// words returns n distinct labels w0..w{n-1}.
func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("w%d", i)
	}
	return out
}

// requireSimpleSymmetric checks the two structural invariants of every
// builder output: B ∈ adj(A) ⇔ A ∈ adj(B), and A ∉ adj(A), no duplicates.
func requireSimpleSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	adj := g.AdjacencyList()
	for a, nbrs := range adj {
		seen := make(map[string]bool, len(nbrs))
		for _, b := range nbrs {
			require.NotEqual(t, a, b, "self-loop on %s", a)
			require.False(t, seen[b], "duplicate neighbor %s in adj(%s)", b, a)
			seen[b] = true
			require.Contains(t, adj[b], a, "asymmetric edge %s-%s", a, b)
		}
	}
}

func TestRandomNeighbors_Invariants(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 25; seed++ {
		g, err := builder.Build(words(30), 1, 4, builder.WithSeed(seed))
		require.NoError(t, err)
		require.True(t, g.Frozen())
		require.Equal(t, 30, g.VertexCount())
		requireSimpleSymmetric(t, g)

		// Every label drew at least one partner, so no vertex is isolated.
		for _, l := range g.Vertices() {
			deg, err := g.Degree(l)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, deg, 1, "seed=%d label=%s", seed, l)
		}
	}
}

func TestRandomNeighbors_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.Build(words(20), 1, 3, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Build(words(20), 1, 3, builder.WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, a.AdjacencyList(), b.AdjacencyList(), "same seed must yield identical graphs")

	c, err := builder.Build(words(20), 1, 3, builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	require.Equal(t, a.AdjacencyList(), c.AdjacencyList(), "WithRand(seed) must equal WithSeed(seed)")
}

func TestRandomNeighbors_MaxDegreeBound(t *testing.T) {
	t.Parallel()

	// With max = n-1 every label samples everyone else: the result is complete.
	g, err := builder.Build(words(5), 4, 4, builder.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 10, g.EdgeCount())
}

func TestRandomNeighbors_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		n        int
		min, max int
	}{
		{"min zero", 5, 0, 2},
		{"max below min", 5, 3, 2},
		{"max equals labels", 5, 1, 5},
		{"max above labels", 3, 1, 7},
		{"single label", 1, 1, 1},
		{"no labels", 0, 1, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(words(tc.n), tc.min, tc.max, builder.WithSeed(1))
			require.ErrorIs(t, err, builder.ErrInvalidDegreeRange)
		})
	}
}

func TestRandomNeighbors_NeedsRand(t *testing.T) {
	_, err := builder.Build(words(5), 1, 2)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestBuildGraph_Fixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		n     int
		wantE int
	}{
		{"Path(4)", builder.Path(), 4, 3},
		{"Complete(5)", builder.Complete(), 5, 10},
		{"Edges", builder.Edges([2]string{"w0", "w1"}, [2]string{"w1", "w0"}, [2]string{"w1", "w2"}), 3, 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(words(tc.n), nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.n, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			requireSimpleSymmetric(t, g)
		})
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(words(3), nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph([]string{"a", ""}, nil)
	require.ErrorIs(t, err, core.ErrEmptyLabel)

	_, err = builder.BuildGraph(words(1), nil, builder.Path())
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(words(2), nil, builder.Edges([2]string{"w0", "w0"}))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = builder.BuildGraph(words(2), nil, builder.Edges([2]string{"w0", "nope"}))
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestBuildGraph_DuplicateLabels(t *testing.T) {
	g, err := builder.BuildGraph([]string{"a", "b", "a"}, nil, builder.Complete())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, g.Vertices())
	require.Equal(t, 1, g.EdgeCount())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithLogger(nil) })
}
