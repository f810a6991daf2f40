// SPDX-License-Identifier: MIT
// Package: top-trees/builder
//
// impl_caterpillar.go - implementation of Caterpillar(spine, legs).
//
// Contract:
//   - spine ≥ 1 (else ErrTooFewVertices); legs ≥ 0 (else ErrTooFewVertices).
//   - Spine vertices come first and are linked in order, then every spine
//     vertex receives its legs in increasing spine order.
//
// Complexity:
//   - Time: O(spine·(legs+1)). Space: O(spine).

package builder

import "fmt"

const methodCaterpillar = "Caterpillar"

// Caterpillar returns a Constructor for a path of spine vertices with legs
// leaves hanging off each of them.
func Caterpillar(spine, legs int) Constructor {
	return func(f *Forest, cfg builderConfig) error {
		if spine < 1 || legs < 0 {
			return fmt.Errorf("%s: spine=%d legs=%d: %w", methodCaterpillar, spine, legs, ErrTooFewVertices)
		}
		ids := make([]int, spine)
		for i := range ids {
			ids[i] = f.AddVertex()
			if i == 0 {
				continue
			}
			if err := f.AddEdge(ids[i-1], ids[i], cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodCaterpillar, err)
			}
		}
		for _, s := range ids {
			for j := 0; j < legs; j++ {
				if err := f.AddEdge(s, f.AddVertex(), cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodCaterpillar, err)
				}
			}
		}
		return nil
	}
}
