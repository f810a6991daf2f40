// SPDX-License-Identifier: MIT
// Package: top-trees/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first vertex of the component; leaves follow in order.
//   - Emits spokes hub → leaf[i] in increasing i. With n > 4 the hub exceeds
//     degree three, which makes Star the canonical fixture for subvertex
//     chains.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(f *Forest, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := f.AddVertex()
		for i := 1; i < n; i++ {
			leaf := f.AddVertex()
			if err := f.AddEdge(hub, leaf, cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}
		return nil
	}
}
