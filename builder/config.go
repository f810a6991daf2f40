// SPDX-License-Identifier: MIT
// Package: top-trees/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil                         (pure/deterministic unless seeded)
//   • weightFn = constant defaultEdgeWeight

package builder

import "math/rand"

// defaultEdgeWeight is the weight of every edge unless WithWeightFn is set.
const defaultEdgeWeight int64 = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn func(*rand.Rand) int64
}

// newBuilderConfig applies options in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: func(*rand.Rand) int64 { return defaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
