// SPDX-License-Identifier: MIT
// Package: wordpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by redefining sentinels.
//   • Constructors never panic; option constructors (WithX) may.

package builder

import "errors"

// ErrInvalidDegreeRange indicates that the degree bounds passed to
// RandomNeighbors are inconsistent (min < 1, max < min) or that max is not
// strictly smaller than the number of labels, so a node could not find max
// distinct partners. Not retryable as-is: fix the configuration.
var ErrInvalidDegreeRange = errors.New("builder: invalid degree range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooFewVertices indicates that the label set is smaller than the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrConstructFailed indicates the builder could not finish construction
// (nil constructor, or the core graph rejected a mutation).
var ErrConstructFailed = errors.New("builder: construction failed")
