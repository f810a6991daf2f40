// Package toptree maintains a dynamic forest as a topology top tree.
//
// Every tree of the forest is covered by a hierarchy of clusters. A base
// cluster holds one vertex; an inner cluster has one child or two children
// joined by an edge. Paired clusters touch at most two outside edges, so
// the hierarchy has O(log n) levels. Vertices of degree above three are
// replaced by chains of subvertices linked with synthetic edges; callers
// never see them.
//
// The caller attaches an aggregate A to every cluster through
// ClusterFuncs: Create and Destroy for single edges, Join and Split for
// merges, Copy for one-child pass-throughs. Boundaries passed to the
// callbacks are logical vertex indices.
//
// Operations:
//
//   - Link(u, v, payload) and Cut(u, v): O(log n) amortized.
//   - Expose(u, v): a cluster whose path is the u-v path. Its aggregate may
//     be changed; Restore, called by every later operation, pushes the
//     change back into the tree.
//   - InSameComponent, Root, Roots, Degree, Neighbours.
//   - Check: a full invariant sweep, run after every update with
//     WithInvariantChecks.
//
// Logging goes through log/slog at debug level, metrics through
// Prometheus collectors built by NewMetrics. A Tree is not safe for
// concurrent use.
package toptree
