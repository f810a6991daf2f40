package toptree

import "github.com/setnicka/top-trees/basegraph"

// simpleCluster is a cluster that lives outside the topology tree: an edge
// cluster fed to Create, or a composite assembled by Join during a join
// fold or an Expose.
type simpleCluster[E, A any] struct {
	left, right int
	data        A

	edge *basegraph.Edge[E] // edge clusters only

	first, second Cluster[A] // composites only
	parent        *simpleCluster[E, A]
	split         bool
}

func (s *simpleCluster[E, A]) Left() int      { return s.left }
func (s *simpleCluster[E, A]) Right() int     { return s.right }
func (s *simpleCluster[E, A]) Data() *A       { return &s.data }
func (s *simpleCluster[E, A]) HasEdges() bool { return true }

func (s *simpleCluster[E, A]) composite() bool { return s.first != nil && s.second != nil }

// newEdgeCluster wraps a real edge between the logical vertices l and r
// and hands it to Create.
func newEdgeCluster[E, A any](f *ClusterFuncs[E, A], e *basegraph.Edge[E], l, r int) *simpleCluster[E, A] {
	s := &simpleCluster[E, A]{left: l, right: r, edge: e}
	f.Create(s, e.Payload)
	return s
}

// newComposite joins two operands into a fresh cluster with the given
// boundaries.
func newComposite[E, A any](f *ClusterFuncs[E, A], first, second Cluster[A], l, r int) *simpleCluster[E, A] {
	s := &simpleCluster[E, A]{left: l, right: r, first: first, second: second}
	for _, op := range []Cluster[A]{first, second} {
		if child, ok := op.(*simpleCluster[E, A]); ok {
			child.parent = s
		}
	}
	f.Join(first, second, s)
	return s
}

// undo reverses the Create or Join that built s. Composites undo their
// parent first so that Split always runs top-down.
func (s *simpleCluster[E, A]) undo(f *ClusterFuncs[E, A]) {
	if s.split {
		return
	}
	if s.parent != nil {
		s.parent.undo(f)
	}
	s.split = true
	switch {
	case s.composite():
		f.Split(s.first, s.second, s)
	case s.edge != nil:
		f.Destroy(s, s.edge.Payload)
	}
}
