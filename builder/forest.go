// SPDX-License-Identifier: MIT
// Package: top-trees/builder
//
// forest.go - the edge-list fixture produced by BuildForest.

package builder

import "fmt"

// Edge is an undirected weighted edge of a Forest.
type Edge struct {
	U, V   int
	Weight int64
}

// Forest is a vertex count plus an ordered edge list with no cycles.
// Edges appear in the order constructors emitted them; replaying them
// with Link in that order always succeeds.
type Forest struct {
	N     int
	Edges []Edge

	parent []int // union-find over vertices
}

// AddVertex appends a vertex and returns its index.
func (f *Forest) AddVertex() int {
	f.parent = append(f.parent, f.N)
	f.N++
	return f.N - 1
}

// AddEdge appends (u, v, w), rejecting unknown vertices and edges that
// would close a cycle.
// Complexity: amortized near O(1).
func (f *Forest) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= f.N || v < 0 || v >= f.N {
		return fmt.Errorf("AddEdge(%d,%d): vertex out of range [0,%d): %w", u, v, f.N, ErrConstructFailed)
	}
	ru, rv := f.find(u), f.find(v)
	if ru == rv {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrCycle)
	}
	f.parent[ru] = rv
	f.Edges = append(f.Edges, Edge{U: u, V: v, Weight: w})
	return nil
}

// Connected reports whether u and v lie in the same component.
func (f *Forest) Connected(u, v int) bool { return f.find(u) == f.find(v) }

func (f *Forest) find(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}
	return x
}
