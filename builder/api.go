// SPDX-License-Identifier: MIT
// Package: wordpath/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(labels, bopts, cons...). Creates g with every
//     label, resolves cfg, runs cons in order, freezes g.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return wrapped sentinel errors.

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/wordpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Vertices are already present (in input order) when a
// Constructor runs; constructors only add edges.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph over labels, resolves the builder
// configuration from bopts, applies all constructors in order and freezes
// the graph.
//
// Duplicate labels are interned once; the first occurrence fixes the NodeID.
// An empty label fails with core.ErrEmptyLabel.
//
// Complexity:
//   - O(|labels|) for vertex interning plus Σ cost of constructors.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against the
//     builder and core sentinels.
func BuildGraph(labels []string, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraphWithCapacity(len(labels))
	for _, l := range labels {
		if err := g.AddVertex(l); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	g.Freeze()

	cfg.logger.Debug("graph_built",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("constructors", len(cons)))

	return g, nil
}

// Build is the one-call form of the word-graph builder: a RandomNeighbors
// graph over labels with degree attempts drawn from [minDeg, maxDeg].
//
// Errors:
//   - ErrInvalidDegreeRange when the range is inconsistent or maxDeg ≥ |labels|.
//   - ErrNeedRandSource when neither WithSeed nor WithRand is supplied.
func Build(labels []string, minDeg, maxDeg int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(labels, opts, RandomNeighbors(minDeg, maxDeg))
}

// addEdge wraps g.AddEdge with constructor context.
func addEdge(g *core.Graph, method, a, b string) error {
	if _, err := g.AddEdge(a, b); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w: %w", method, a, b, ErrConstructFailed, err)
	}
	return nil
}
