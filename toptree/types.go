package toptree

// Cluster is the view of a cluster handed to the user functions and
// returned by the public operations.
//
// Boundaries are logical vertex indices: subvertices report the index of
// their superior vertex. A cluster whose boundaries are equal is a point
// cluster; it has no path and all of its edges hang off that vertex.
type Cluster[A any] interface {
	// Left returns the first boundary vertex.
	Left() int
	// Right returns the second boundary vertex.
	Right() int
	// Data returns the cluster's aggregate.
	Data() *A
	// HasEdges reports whether the cluster contains at least one real edge.
	// Clusters without edges never reach the user functions.
	HasEdges() bool
}

// IsPoint reports whether c is a point cluster.
func IsPoint[A any](c Cluster[A]) bool { return c.Left() == c.Right() }

// ClusterFuncs are the user callbacks invoked at every structural merge
// and unmerge. Nil callbacks are no-ops; a nil Copy copies the value of A.
//
// Every Join(left, right, out) is one of:
//   - compress: out's boundaries are the ends of left and right that are
//     not shared;
//   - rake: out's boundaries equal the boundaries of one operand, the
//     other operand hangs off the shared vertex;
//   - point: out is a point cluster.
//
// Split(left, right, joined) must restore left and right to their state
// before the Join that produced joined.
type ClusterFuncs[E, A any] struct {
	// Create initializes the aggregate of a single-edge cluster.
	Create func(c Cluster[A], edge E)
	// Destroy finalizes a single-edge cluster.
	Destroy func(c Cluster[A], edge E)
	// Join combines left and right into out.
	Join func(left, right, out Cluster[A])
	// Split is the exact inverse of Join.
	Split func(left, right, joined Cluster[A])
	// Copy propagates the aggregate across a one-child pass-through.
	Copy func(src, dst Cluster[A])
}

func (f ClusterFuncs[E, A]) withDefaults() ClusterFuncs[E, A] {
	if f.Create == nil {
		f.Create = func(Cluster[A], E) {}
	}
	if f.Destroy == nil {
		f.Destroy = func(Cluster[A], E) {}
	}
	if f.Join == nil {
		f.Join = func(_, _, _ Cluster[A]) {}
	}
	if f.Split == nil {
		f.Split = func(_, _, _ Cluster[A]) {}
	}
	if f.Copy == nil {
		f.Copy = func(src, dst Cluster[A]) { *dst.Data() = *src.Data() }
	}
	return f
}

// Edge describes an edge for bulk construction with FromEdges.
type Edge[E any] struct {
	U, V    int
	Payload E
}
