// Package builder provides deterministic tree and forest fixtures in the
// functional-options style: a BuildForest orchestrator, BuilderOption knobs
// (RNG, weight distribution) and one Constructor per topology.
//
// Each constructor appends a new tree component on fresh vertex indices,
// so composing several constructors yields a forest:
//
//	f, err := builder.BuildForest(
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Path(10),
//	    builder.Star(6),
//	    builder.RandomTree(50),
//	)
//
// The resulting Forest.Edges can be replayed with Link in order; the
// union-find inside Forest guarantees no edge closes a cycle.
//
// Topologies:
//
//   - Path(n):               P_n, degree ≤ 2.
//   - Star(n):               one hub of degree n-1; exercises subvertex chains.
//   - Caterpillar(s, l):     spine of s vertices with l leaves each.
//   - Binary(d):             complete binary tree of depth d.
//   - RandomTree(n):         random recursive tree, shuffled edge order.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrNeedRandSource, ErrCycle,
//     ErrConstructFailed) for invalid build parameters, wrapped with context.
//   - Same options, seed and constructor order ⇒ identical forests.
package builder
