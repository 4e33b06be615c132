package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dump(t *testing.T, m *Metrics) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))
	return buf.String()
}

func TestObserveBuild(t *testing.T) {
	m := New()
	m.ObserveBuild(5, 7)
	m.ObserveBuild(3, 2)

	out := dump(t, m)
	assert.Contains(t, out, "# TYPE wordpath_graph_builds_total counter")
	assert.Contains(t, out, "wordpath_graph_builds_total 2\n")
	assert.Contains(t, out, "wordpath_graph_edges 2\n")
	assert.Contains(t, out, "wordpath_graph_vertices 3\n")
}

func TestObserveSearch(t *testing.T) {
	m := New()
	m.ObserveSearch(OutcomeFound, 4, time.Millisecond)
	m.ObserveSearch(OutcomeFound, 2, time.Millisecond)
	m.ObserveSearch(OutcomeUnreachable, 9, time.Millisecond)

	out := dump(t, m)
	assert.Contains(t, out, `wordpath_searches_total{outcome="found"} 2`)
	assert.Contains(t, out, `wordpath_searches_total{outcome="unreachable"} 1`)
	assert.NotContains(t, out, `outcome="error"`)
	assert.Contains(t, out, "wordpath_search_visited_nodes_count 3")
	assert.Contains(t, out, "wordpath_search_visited_nodes_sum 15")
	assert.Contains(t, out, "wordpath_search_duration_seconds_bucket")
}

func TestNewUsesPrivateRegistry(t *testing.T) {
	// Two instances must not collide on registration.
	a, b := New(), New()
	a.ObserveBuild(1, 0)

	assert.NotSame(t, a.Registry(), b.Registry())
	assert.Contains(t, dump(t, b), "wordpath_graph_builds_total 0\n")
}
