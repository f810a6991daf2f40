// SPDX-License-Identifier: MIT
// Package: top-trees/builder
//
// impl_binary.go - implementation of Binary(depth).
//
// Contract:
//   - depth ≥ 1 (else ErrTooFewVertices); depth 1 is a single vertex.
//   - Heap layout: local vertex i has children 2i+1 and 2i+2; edges are
//     emitted parent → child in increasing child index.
//
// Complexity:
//   - Time: O(2^depth). Space: O(1) extra.

package builder

import "fmt"

const (
	methodBinary = "Binary"
	maxDepth     = 24
)

// Binary returns a Constructor for a complete binary tree with 2^depth-1
// vertices.
func Binary(depth int) Constructor {
	return func(f *Forest, cfg builderConfig) error {
		if depth < 1 || depth > maxDepth {
			return fmt.Errorf("%s: depth=%d outside [1,%d]: %w", methodBinary, depth, maxDepth, ErrTooFewVertices)
		}
		n := 1<<depth - 1
		base := f.N
		for i := 0; i < n; i++ {
			f.AddVertex()
		}
		for c := 1; c < n; c++ {
			if err := f.AddEdge(base+(c-1)/2, base+c, cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodBinary, err)
			}
		}
		return nil
	}
}
