package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordpath/core"
)

// twoIslands builds {a-b-c} and {x-y} plus the isolated vertex z.
func twoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range []string{"a", "b", "c", "x", "y", "z"} {
		require.NoError(t, g.AddVertex(l))
	}
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"x", "y"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	g.Freeze()

	return g
}

func TestComponents(t *testing.T) {
	g := twoIslands(t)

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, comps[0])
	assert.ElementsMatch(t, []string{"x", "y"}, comps[1])
	assert.Equal(t, []string{"z"}, comps[2])
}

func TestSameComponent(t *testing.T) {
	g := twoIslands(t)

	assert.True(t, g.SameComponent("a", "c"))
	assert.True(t, g.SameComponent("z", "z"))
	assert.False(t, g.SameComponent("a", "x"))
	assert.False(t, g.SameComponent("a", "missing"))
}

func TestComponentsEmpty(t *testing.T) {
	assert.Empty(t, core.NewGraph().Components())
}
