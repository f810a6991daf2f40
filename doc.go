// Package toptrees is a dynamic forest library built on topology top trees.
//
// A top tree keeps every tree of a forest as a hierarchy of clusters and
// lets the caller attach an aggregate to each cluster. Link, Cut and Expose
// run in O(log n) amortized time, and the aggregate of any path is one
// Expose away.
//
// Under the hood, everything is organized under these subpackages:
//
//	basegraph/  - the base forest: vertices, edges, subvertex chains that cap degree at three
//	toptree/    - the topology top tree: Link, Cut, Expose, Restore, invariant checks, metrics
//	bfs/        - breadth-first search over the logical forest, the oracle for tests and Check
//	dfs/        - depth-first search and cycle detection over the logical forest
//	builder/    - deterministic forest fixtures: paths, stars, caterpillars, binary and random trees
//	doubleconn/ - 2-edge-connectivity on a dynamic multigraph, traced with OpenTelemetry
//	trace/      - YAML operation traces replayed against a tree
//
// Quick example:
//
//	tree := toptree.New(4, toptree.ClusterFuncs[int, int]{
//		Create: func(c toptree.Cluster[int], w int) { *c.Data() = w },
//		Join:   func(a, b, out toptree.Cluster[int]) { *out.Data() = *a.Data() + *b.Data() },
//	})
//	tree.Link(0, 1, 3)
//	tree.Link(1, 2, 4)
//	root, _ := tree.Root(0)
//	fmt.Println(*root.Data()) // 7
package toptrees
