package toptree

import (
	"container/list"
	"errors"
	"fmt"
	"log/slog"

	"github.com/setnicka/top-trees/basegraph"
)

// Tree is a dynamic forest over vertices 0..n-1 maintained as a topology
// top tree. Every component is represented by one root cluster whose
// aggregate summarizes the component's edges.
//
// A Tree is not safe for concurrent use.
type Tree[E, A any] struct {
	g     *basegraph.Graph[E]
	funcs ClusterFuncs[E, A]
	opts  Options
	log   *slog.Logger

	roots  *list.List // of *cluster[E, A]
	nextID uint64

	// clusters whose aggregate is invalid until the next rejoin
	splitted []*cluster[E, A]
	// composites and edge clusters built by Expose, in creation order
	exposed []*simpleCluster[E, A]

	deleteList, changeList, abandonList []*cluster[E, A]
	nextDelete, nextChange, nextAbandon []*cluster[E, A]
	foundRoots                          []*cluster[E, A]
}

// New creates a forest of n isolated vertices.
func New[E, A any](n int, funcs ClusterFuncs[E, A], opts ...Option) *Tree[E, A] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tree[E, A]{
		g:     basegraph.New[E](0),
		funcs: funcs.withDefaults(),
		opts:  o,
		log:   o.Logger.With(slog.String("component", "toptree")),
		roots: list.New(),
	}
	for i := 0; i < n; i++ {
		t.AddVertex()
	}
	return t
}

// AddVertex appends an isolated vertex and returns its index.
func (t *Tree[E, A]) AddVertex() int {
	t.Restore()
	v := t.g.AddVertex()
	c := t.newBaseCluster(v)
	t.rejoin()
	t.addRoot(c)
	return v.Index
}

// Len returns the number of vertices.
func (t *Tree[E, A]) Len() int { return t.g.Len() }

// EdgeCount returns the number of edges in the forest.
func (t *Tree[E, A]) EdgeCount() int { return t.g.EdgeCount() }

// Roots returns the root cluster of every component, isolated vertices
// included, in the order the components last changed. A pending Expose is
// restored first.
func (t *Tree[E, A]) Roots() []Cluster[A] {
	t.Restore()
	out := make([]Cluster[A], 0, t.roots.Len())
	for el := t.roots.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*cluster[E, A]))
	}
	return out
}

// Root returns the root cluster of the component containing v.
func (t *Tree[E, A]) Root(v int) (Cluster[A], error) {
	t.Restore()
	vx, err := t.vertex(v)
	if err != nil {
		return nil, err
	}
	return t.rootOf(vx), nil
}

// InSameComponent reports whether u and v are connected.
func (t *Tree[E, A]) InSameComponent(u, v int) (bool, error) {
	vu, vv, err := t.vertexPair(u, v)
	if err != nil {
		return false, err
	}
	return t.rootOf(vu) == t.rootOf(vv), nil
}

// Degree returns the number of edges incident to v.
func (t *Tree[E, A]) Degree(v int) (int, error) {
	vx, err := t.vertex(v)
	if err != nil {
		return 0, err
	}
	return vx.Degree(), nil
}

// Neighbours returns the vertices adjacent to v.
func (t *Tree[E, A]) Neighbours(v int) ([]int, error) {
	vx, err := t.vertex(v)
	if err != nil {
		return nil, err
	}
	ns := t.g.Neighbours(vx)
	out := make([]int, len(ns))
	for i, n := range ns {
		out[i] = n.Index
	}
	return out, nil
}

// Graph exposes the underlying base forest, read-only by convention.
func (t *Tree[E, A]) Graph() *basegraph.Graph[E] { return t.g }

func (t *Tree[E, A]) vertex(i int) (*basegraph.Vertex[E], error) {
	v, err := t.g.Vertex(i)
	if err != nil {
		return nil, fmt.Errorf("vertex %d: %w", i, ErrVertexNotFound)
	}
	return v, nil
}

func (t *Tree[E, A]) vertexPair(u, v int) (*basegraph.Vertex[E], *basegraph.Vertex[E], error) {
	vu, err := t.vertex(u)
	if err != nil {
		return nil, nil, err
	}
	vv, err := t.vertex(v)
	if err != nil {
		return nil, nil, err
	}
	return vu, vv, nil
}

func (t *Tree[E, A]) newCluster() *cluster[E, A] {
	t.nextID++
	c := &cluster[E, A]{t: t, id: t.nextID, splitted: true}
	t.splitted = append(t.splitted, c)
	t.opts.Metrics.clusterCreated()
	return c
}

func (t *Tree[E, A]) newBaseCluster(v *basegraph.Vertex[E]) *cluster[E, A] {
	c := t.newCluster()
	c.vertex = v
	v.Cluster = c
	return c
}

func baseCluster[E, A any](v *basegraph.Vertex[E]) *cluster[E, A] {
	c, ok := v.Cluster.(*cluster[E, A])
	if !ok || c == nil {
		panic(invariant("base", "vertex %d has no base cluster", v.Index))
	}
	return c
}

// rootOf returns the root cluster of the component of the logical vertex v.
func (t *Tree[E, A]) rootOf(v *basegraph.Vertex[E]) *cluster[E, A] {
	c := baseCluster[E, A](v.Logical().Representative())
	for c.parent != nil {
		c = c.parent
	}
	return c
}

func (t *Tree[E, A]) addRoot(c *cluster[E, A]) {
	if c.rootElem != nil {
		return
	}
	c.rootElem = t.roots.PushBack(c)
	t.opts.Metrics.setRoots(t.roots.Len())
}

func (t *Tree[E, A]) dropRoot(c *cluster[E, A]) {
	if c.rootElem == nil {
		return
	}
	t.roots.Remove(c.rootElem)
	c.rootElem = nil
	t.opts.Metrics.setRoots(t.roots.Len())
}

// rejoin recomputes the aggregate of every split cluster.
func (t *Tree[E, A]) rejoin() {
	for i := 0; i < len(t.splitted); i++ {
		t.splitted[i].join()
	}
	t.splitted = t.splitted[:0]
}

// Restore undoes the last Expose: composites are split in reverse creation
// order, pushing any change made to the exposed aggregate down, then every
// cluster split by Expose is joined again. It is a no-op when nothing is
// exposed. Every mutating operation calls it first.
func (t *Tree[E, A]) Restore() {
	if len(t.exposed) == 0 && len(t.splitted) == 0 {
		return
	}
	for i := len(t.exposed) - 1; i >= 0; i-- {
		t.exposed[i].undo(&t.funcs)
	}
	t.exposed = t.exposed[:0]
	t.rejoin()
}

// SplitRoot splits a composite returned by Expose, or one of its
// composite operands, into the two clusters it was joined from. Parents
// are split first so that Split runs top-down. The split is final until
// Restore.
func (t *Tree[E, A]) SplitRoot(c Cluster[A]) (Cluster[A], Cluster[A], error) {
	s, ok := c.(*simpleCluster[E, A])
	if !ok || !s.composite() || s.split {
		return nil, nil, ErrNotSplittable
	}
	s.undo(&t.funcs)
	return s.first, s.second, nil
}

// finish records the outcome of a public operation and, when enabled,
// runs a full invariant sweep.
func (t *Tree[E, A]) finish(op string, err error) {
	t.opts.Metrics.op(op, err)
	if err != nil || !t.opts.CheckInvariants {
		return
	}
	if cerr := t.Check(); cerr != nil {
		var ie *InvariantError
		if errors.As(cerr, &ie) {
			panic(ie)
		}
		panic(invariant(op, "%v", cerr))
	}
}
