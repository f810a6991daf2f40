package toptree

import (
	"fmt"

	"github.com/setnicka/top-trees/basegraph"
)

// Link adds the edge (u, v) carrying payload and returns the root cluster
// of the merged component.
//
// Errors: ErrVertexNotFound, ErrSelfLoop, ErrAlreadyConnected.
//
// Implementation:
//   - Stage 1: Restore a pending Expose and validate.
//   - Stage 2: Drop both old roots from the root set.
//   - Stage 3: Pick concrete endpoints with a free slot, splitting
//     vertices of degree three into subvertex chains.
//   - Stage 4: Link, rebalance, rejoin and register the new root.
//
// Complexity: O(log n) amortized clusters touched.
func (t *Tree[E, A]) Link(u, v int, payload E) (_ Cluster[A], err error) {
	defer func() { t.finish("link", err) }()
	t.Restore()

	vu, vv, err := t.vertexPair(u, v)
	if err != nil {
		return nil, err
	}
	if u == v {
		return nil, fmt.Errorf("link %d-%d: %w", u, v, ErrSelfLoop)
	}
	ru, rv := t.rootOf(vu), t.rootOf(vv)
	if ru == rv {
		return nil, fmt.Errorf("link %d-%d: %w", u, v, ErrAlreadyConnected)
	}
	t.dropRoot(ru)
	t.dropRoot(rv)

	a := t.vertexToLink(vu)
	b := t.vertexToLink(vv)
	root := t.link(a, b, basegraph.NewEdge(a, b, payload))

	t.rejoin()
	t.addRoot(root)
	return root, nil
}

// Cut removes the edge (u, v) and returns the roots of the two resulting
// components, the one containing u first, together with the edge payload.
//
// Errors: ErrVertexNotFound, ErrNoSuchEdge.
//
// Complexity: O(log n) amortized clusters touched.
func (t *Tree[E, A]) Cut(u, v int) (_ Cluster[A], _ Cluster[A], payload E, err error) {
	defer func() { t.finish("cut", err) }()
	t.Restore()

	vu, vv, err := t.vertexPair(u, v)
	if err != nil {
		return nil, nil, payload, err
	}
	e := t.g.FindEdge(vu, vv)
	if e == nil {
		return nil, nil, payload, fmt.Errorf("cut %d-%d: %w", u, v, ErrNoSuchEdge)
	}
	t.dropRoot(t.rootOf(vu))

	a, b := e.From, e.To
	t.cut(a, b, e)
	if a.Superior() != nil {
		t.repairAfterCut(a)
	}
	if b.Superior() != nil {
		t.repairAfterCut(b)
	}

	t.rejoin()
	ru, rv := t.rootOf(vu), t.rootOf(vv)
	t.addRoot(ru)
	t.addRoot(rv)
	return ru, rv, e.Payload, nil
}

// link attaches e between the concrete vertices a and b, which must lie in
// different trees, and rebalances. It returns the single resulting root.
func (t *Tree[E, A]) link(a, b *basegraph.Vertex[E], e *basegraph.Edge[E]) *cluster[E, A] {
	ca, cb := baseCluster[E, A](a), baseCluster[E, A](b)
	ca.split()
	cb.split()

	e.From, e.To = a, b
	if err := t.g.Attach(e); err != nil {
		panic(invariant("link", "%v", err))
	}
	ca.calculateOuterEdges(false)
	cb.calculateOuterEdges(false)

	roots := t.update(ca, cb)
	if len(roots) != 1 {
		panic(invariant("link", "%d roots after linking %d-%d", len(roots), a.Index, b.Index))
	}
	return roots[0]
}

// cut detaches e between the concrete vertices a and b and rebalances.
// It returns the two resulting roots.
func (t *Tree[E, A]) cut(a, b *basegraph.Vertex[E], e *basegraph.Edge[E]) (*cluster[E, A], *cluster[E, A]) {
	ca, cb := baseCluster[E, A](a), baseCluster[E, A](b)
	ca.split()
	cb.split()

	if err := t.g.Detach(e); err != nil {
		panic(invariant("cut", "%v", err))
	}
	ca.calculateOuterEdges(false)
	cb.calculateOuterEdges(false)

	roots := t.update(ca, cb)
	if len(roots) != 2 {
		panic(invariant("cut", "%d roots after cutting %d-%d", len(roots), a.Index, b.Index))
	}
	return roots[0], roots[1]
}

// update seeds the change list with the given base clusters and runs the
// rebalancing engine.
func (t *Tree[E, A]) update(changed ...*cluster[E, A]) []*cluster[E, A] {
	t.deleteList, t.abandonList = nil, nil
	t.changeList = t.changeList[:0]
	t.foundRoots = nil
	for _, c := range changed {
		if !c.inChange {
			c.inChange = true
			t.changeList = append(t.changeList, c)
		}
	}
	t.rebalance()
	return t.foundRoots
}
