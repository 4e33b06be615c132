// SPDX-License-Identifier: MIT

// Package builder constructs word graphs over a label set.
//
// One orchestrator, BuildGraph, creates a core.Graph holding every label,
// resolves functional options into an immutable builderConfig, applies the
// requested constructors in order and freezes the result.
//
// Constructors:
//
//	RandomNeighbors(min, max) - each label draws k ∈ [min, max] distinct random
//	                            neighbors; edges are closed symmetrically.
//	Path()                    - consecutive labels connected in input order.
//	Complete()                - every pair of labels connected.
//	Edges(pairs...)           - explicit, hand-written fixtures.
//
// Determinism:
//
//	Same labels (same order), same options, same seed ⇒ identical graph,
//	including neighbor order. Randomness only flows through WithSeed/WithRand.
//
// Errors:
//
//	ErrInvalidDegreeRange - degree bounds incompatible with each other or with |labels|.
//	ErrNeedRandSource     - a stochastic constructor ran without WithSeed/WithRand.
//	ErrTooFewVertices     - label set too small for the constructor.
//	ErrConstructFailed    - nil constructor or a core mutation failed.
package builder
