// SPDX-License-Identifier: MIT
// Package: top-trees/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(f *Forest, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		prev := f.AddVertex()
		for i := 1; i < n; i++ {
			cur := f.AddVertex()
			if err := f.AddEdge(prev, cur, cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
			prev = cur
		}
		return nil
	}
}
