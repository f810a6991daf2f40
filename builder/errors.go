// SPDX-License-Identifier: MIT
// Package: top-trees/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, depth, spine)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrCycle indicates an edge whose endpoints are already connected.
var ErrCycle = errors.New("builder: edge closes a cycle")

// ErrConstructFailed indicates a construction that cannot proceed, such as a
// nil constructor or an edge on an unknown vertex.
var ErrConstructFailed = errors.New("builder: construction failed")
