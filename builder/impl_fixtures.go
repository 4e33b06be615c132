// SPDX-License-Identifier: MIT
// Package: wordpath/builder
//
// impl_fixtures.go - deterministic constructors for hand-checked graphs.
//
// Contract:
//   - Path:     labels connected consecutively in input order (|labels| ≥ 2).
//   - Complete: every unordered pair {i<j} exactly once (|labels| ≥ 1).
//   - Edges:    explicit pairs in the given order; endpoints must be labels.
//
// Determinism:
//   - Edge emission follows input order; no randomness is consumed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wordpath/core"
)

const (
	methodPath     = "Path"
	methodComplete = "Complete"
	methodEdges    = "Edges"

	minPathNodes     = 2
	minCompleteNodes = 1
)

// Path returns a Constructor connecting label i-1 to label i for every i.
func Path() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		labels := g.Vertices()
		if len(labels) < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, len(labels), minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < len(labels); i++ {
			if err := addEdge(g, methodPath, labels[i-1], labels[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor connecting every pair of labels.
func Complete() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		labels := g.Vertices()
		if len(labels) < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, len(labels), minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < len(labels); i++ {
			for j := i + 1; j < len(labels); j++ {
				if err := addEdge(g, methodComplete, labels[i], labels[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Edges returns a Constructor adding the given undirected pairs in order.
// Duplicate pairs are no-ops; self-loops and unknown labels fail.
func Edges(pairs ...[2]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, p := range pairs {
			if err := addEdge(g, methodEdges, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
