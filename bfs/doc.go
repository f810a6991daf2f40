// Package bfs provides breadth-first search over the logical forest of a
// basegraph.Graph, returning unweighted distances, parent links, and visit
// order.
//
// What
//
//   - Explore logical vertices in non-decreasing distance from a start vertex.
//     Subvertex chains are invisible: a split vertex is visited once and its
//     neighbours are the logical endpoints of its real edges.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Components partitions the forest into connected components.
//
// Why
//
//   - The top tree uses Components to cross-check its root set.
//   - Tests use BFS paths as an independent oracle for exposed paths.
//
// Determinism
//
//	Neighbours are enqueued in the order their edges were attached, so the
//	visit sequence is reproducible for a given sequence of links.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a vertex is enqueued.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
