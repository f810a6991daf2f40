// Package basegraph provides the plain adjacency-list forest that the top
// tree is built over: vertices with ordered neighbour lists, edges with a
// caller payload, and the subvertex machinery used to cap concrete vertex
// degree at three.
//
// What is a subvertex?
//
//	A logical vertex whose degree grows beyond MaxDegree is represented by
//	a chain of subvertices joined by synthetic edges:
//
//	    a   b        a   b   c   d
//	     \ /          \ /     \ /
//	      v    ==>    v₁ ─ ─ ─ v₂      (v₁, v₂ share Index with v)
//	      |                             ─ ─ synthetic edge
//	      c
//
//	Each subvertex carries at most MaxDegree incident edges. The superior
//	vertex keeps a mirror list of every real edge attached to its
//	subvertices, so its Degree() is the logical degree.
//
// Key Types:
//
//   - Vertex[E]: Index, ordered neighbour list, superior link, subvertex list.
//   - Edge[E]: From/To endpoints, Payload, Synthetic flag, list handles for
//     O(1) detach from both endpoints and both superior mirrors.
//   - Graph[E]: the vertex table and the attach/detach primitives.
//
// Complexity:
//
//   - Attach, Detach, NewSubvertex, RemoveSubvertex: O(1).
//   - FindEdge: O(deg) of the logical vertex.
//
// Errors:
//
//	ErrVertexNotFound  - index outside the vertex table.
//	ErrSelfLoop        - both endpoints resolve to the same logical vertex.
//	ErrDegreeExceeded  - a concrete endpoint already has MaxDegree edges.
//	ErrEdgeAttached    - Attach on an edge that is already attached.
//	ErrEdgeDetached    - Detach on an edge that is not attached.
//
// The package is not safe for concurrent mutation; the top tree owns it.
package basegraph
