// Package metrics defines the Prometheus collectors recorded by wordpath
// runs and dumps them in the text exposition format.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeNotFound    = "not_found"
	OutcomeError       = "error"
)

// Metrics holds the collectors and the private registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	GraphBuildsTotal      prometheus.Counter
	GraphEdges            prometheus.Gauge
	GraphVertices         prometheus.Gauge
	SearchesTotal         *prometheus.CounterVec
	SearchVisitedNodes    prometheus.Histogram
	SearchDurationSeconds prometheus.Histogram
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GraphBuildsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordpath_graph_builds_total",
				Help: "Total number of word graphs built.",
			},
		),
		GraphEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordpath_graph_edges",
				Help: "Undirected edge count of the most recently built graph.",
			},
		),
		GraphVertices: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordpath_graph_vertices",
				Help: "Vertex count of the most recently built graph.",
			},
		),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordpath_searches_total",
				Help: "Total searches by outcome (found, unreachable, not_found, error).",
			},
			[]string{"outcome"},
		),
		SearchVisitedNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wordpath_search_visited_nodes",
				Help:    "Nodes finalized per search.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		SearchDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wordpath_search_duration_seconds",
				Help:    "Search latency in seconds.",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
			},
		),
	}

	m.registry.MustRegister(
		m.GraphBuildsTotal,
		m.GraphEdges,
		m.GraphVertices,
		m.SearchesTotal,
		m.SearchVisitedNodes,
		m.SearchDurationSeconds,
	)

	return m
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveBuild records one completed graph build.
func (m *Metrics) ObserveBuild(vertices, edges int) {
	m.GraphBuildsTotal.Inc()
	m.GraphVertices.Set(float64(vertices))
	m.GraphEdges.Set(float64(edges))
}

// ObserveSearch records one search with its outcome label.
func (m *Metrics) ObserveSearch(outcome string, visited int, elapsed time.Duration) {
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	m.SearchVisitedNodes.Observe(float64(visited))
	m.SearchDurationSeconds.Observe(elapsed.Seconds())
}

// Dump writes every gathered family to w in text exposition format.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
