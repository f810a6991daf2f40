// SPDX-License-Identifier: MIT
// Package: top-trees/builder
//
// impl_random_tree.go - implementation of RandomTree(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); cfg.rng required (else ErrNeedRandSource).
//   - Random recursive tree: vertex i attaches to a uniformly chosen earlier
//     vertex. Edges are then emitted in a shuffled order, so replaying them
//     merges partial components rather than growing one tree.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

import "fmt"

const methodRandomTree = "RandomTree"

// RandomTree returns a Constructor for a random tree on n vertices.
func RandomTree(n int) Constructor {
	return func(f *Forest, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomTree, n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		base := f.N
		for i := 0; i < n; i++ {
			f.AddVertex()
		}
		edges := make([]Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, Edge{U: base + cfg.rng.Intn(i), V: base + i, Weight: cfg.weight()})
		}
		cfg.rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
		for _, e := range edges {
			if err := f.AddEdge(e.U, e.V, e.Weight); err != nil {
				return fmt.Errorf("%s: %w", methodRandomTree, err)
			}
		}
		return nil
	}
}
