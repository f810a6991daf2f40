// SPDX-License-Identifier: MIT
// Package: top-trees/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildForest(bopts, cons...). Creates f, resolves cfg, runs cons in order.
//   - Every constructor adds ONE new tree component on fresh vertex indices.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical forests.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import "fmt"

// Constructor appends one tree component to f using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate their vertices with f.AddVertex, never reuse existing ones.
//   - Preserve determinism for the same config and call order.
type Constructor func(f *Forest, cfg builderConfig) error

// BuildForest creates an empty Forest, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildForest: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildForest(bopts []BuilderOption, cons ...Constructor) (*Forest, error) {
	f := &Forest{}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildForest: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("BuildForest: %w", err)
		}
	}

	return f, nil
}
