// Package dfs implements depth-first search over the logical forest of a
// basegraph.Graph.
//
// Key features:
//   - DFS(g, start, opts...): post-order traversal from one vertex, or of
//     the whole forest with WithFullTraversal.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order), an error aborts.
//   - Limits: MaxDepth and FilterNeighbor, with a SkippedNeighbors count.
//   - FindCycle(g): a cycle of the logical multigraph, if any. Parallel
//     edges form a cycle of length two.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the recursion stack and per-vertex metadata.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
