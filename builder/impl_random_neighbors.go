// SPDX-License-Identifier: MIT
// Package: wordpath/builder
//
// impl_random_neighbors.go - implementation of RandomNeighbors(min, max).
//
// Model:
//   1. Shuffle the label order once.
//   2. For each label L in that order draw k uniformly from [min, max].
//   3. Sample k distinct labels from all labels except L, without replacement.
//   4. Add each sampled edge symmetrically unless it already exists.
//
// A node's final degree may exceed its own k because other nodes can pick it.
// Connectivity is not guaranteed; isolated clusters are an accepted outcome.
//
// Contract:
//   - 1 ≤ min ≤ max < |labels| (else ErrInvalidDegreeRange, before any draw).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(V) per label for the candidate copy, O(V²) total; O(V·max) draws.
//   - Space: O(V) scratch.
//
// Determinism:
//   - All draws come from cfg.rng in a fixed order: shuffle, then per label
//     one Intn for k followed by k Intn calls for the partial Fisher–Yates.

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/wordpath/core"
)

const (
	methodRandomNeighbors = "RandomNeighbors"
	minDegreeAttempt      = 1
)

// RandomNeighbors returns a Constructor that wires every label to a random
// number of distinct random partners drawn from [minDeg, maxDeg].
func RandomNeighbors(minDeg, maxDeg int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		labels := g.Vertices()
		n := len(labels)

		// 1) Validate the degree range before consuming any randomness.
		if minDeg < minDegreeAttempt {
			return fmt.Errorf("%s: min=%d < %d: %w",
				methodRandomNeighbors, minDeg, minDegreeAttempt, ErrInvalidDegreeRange)
		}
		if maxDeg < minDeg {
			return fmt.Errorf("%s: max=%d < min=%d: %w",
				methodRandomNeighbors, maxDeg, minDeg, ErrInvalidDegreeRange)
		}
		if maxDeg >= n {
			return fmt.Errorf("%s: max=%d must be < |labels|=%d: %w",
				methodRandomNeighbors, maxDeg, n, ErrInvalidDegreeRange)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomNeighbors, ErrNeedRandSource)
		}
		rng := cfg.rng

		// 2) Randomize which labels claim their partners first.
		order := make([]string, n)
		copy(order, labels)
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

		candidates := make([]string, 0, n-1)
		added := 0
		for _, l := range order {
			// 3) Degree attempt for this label.
			k := minDeg + rng.Intn(maxDeg-minDeg+1)

			// 4) Candidate pool: every other label, in shuffled order.
			candidates = candidates[:0]
			for _, c := range order {
				if c != l {
					candidates = append(candidates, c)
				}
			}

			// 5) Partial Fisher–Yates: the first k slots become a uniform sample.
			for i := 0; i < k; i++ {
				j := i + rng.Intn(len(candidates)-i)
				candidates[i], candidates[j] = candidates[j], candidates[i]

				ok, err := g.AddEdge(l, candidates[i])
				if err != nil {
					return fmt.Errorf("%s: AddEdge(%s, %s): %w: %w",
						methodRandomNeighbors, l, candidates[i], ErrConstructFailed, err)
				}
				if ok {
					added++
				}
			}
		}

		cfg.logger.Debug("random_neighbors_done",
			slog.Int("labels", n),
			slog.Int("min_degree", minDeg),
			slog.Int("max_degree", maxDeg),
			slog.Int("edges_added", added))

		return nil
	}
}
