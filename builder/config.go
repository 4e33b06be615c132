// SPDX-License-Identifier: MIT
// Package: wordpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil          (no randomness unless seeded)
//   • logger = discard

package builder

import (
	"log/slog"
	"math/rand"
)

// Default degree range of RandomNeighbors when callers have no preference.
const (
	DefaultMinDegree = 1
	DefaultMaxDegree = 2
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Structured logger for construction diagnostics.
	logger *slog.Logger
}

// newBuilderConfig applies options in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
