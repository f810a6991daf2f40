package toptree

import (
	"container/list"
	"fmt"

	"github.com/setnicka/top-trees/basegraph"
)

// outerEdge is an edge leaving a cluster, seen from inside.
type outerEdge[E, A any] struct {
	edge    *basegraph.Edge[E]
	cluster *cluster[E, A]       // neighbour cluster on the same level
	inner   *basegraph.Vertex[E] // endpoint inside this cluster
}

// cluster is a node of the topology tree.
//
// Base clusters hold exactly one concrete vertex. Inner clusters have one
// or two children; a cluster with two children is split along the edge
// between them. A cluster is splitted while its aggregate is not valid,
// that is, between split and the next join.
type cluster[E, A any] struct {
	t  *Tree[E, A]
	id uint64

	parent, first, second *cluster[E, A]
	vertex                *basegraph.Vertex[E] // base clusters only
	edge                  *basegraph.Edge[E]   // edge between the two children
	outer                 []outerEdge[E, A]

	left, right int
	top         bool // the aggregate covers at least one real edge
	// both outer edges come from one child, which the other child and the
	// connecting edge hang off
	rakeBranch bool

	splitted bool
	deleted  bool

	inDelete, inChange, inAbandon bool

	rootElem *list.Element

	// join fold, kept so that split can replay it backwards
	pieces      []Cluster[A]
	mids        []*simpleCluster[E, A]
	edgeCluster *simpleCluster[E, A]

	data A
}

func (c *cluster[E, A]) Left() int      { return c.left }
func (c *cluster[E, A]) Right() int     { return c.right }
func (c *cluster[E, A]) Data() *A       { return &c.data }
func (c *cluster[E, A]) HasEdges() bool { return c.top }

func (c *cluster[E, A]) String() string {
	kind := "inner"
	if c.isBase() {
		kind = "base"
	}
	return fmt.Sprintf("cluster#%d(%s %d-%d outer=%d top=%t rake=%t)",
		c.id, kind, c.left, c.right, len(c.outer), c.top, c.rakeBranch)
}

func (c *cluster[E, A]) isBase() bool { return c.vertex != nil }

func (c *cluster[E, A]) setFirst(child *cluster[E, A]) {
	c.split()
	c.first = child
	child.parent = c
}

func (c *cluster[E, A]) setSecond(child *cluster[E, A]) {
	c.split()
	c.second = child
	child.parent = c
}

// split invalidates the aggregate of c and of all its ancestors, top-down,
// and records every newly split cluster for the next rejoin.
func (c *cluster[E, A]) split() {
	if c.splitted || c.deleted {
		return
	}
	c.t.splitted = append(c.t.splitted, c)
	if c.parent != nil {
		c.parent.split()
	}
	c.undoFold()
	c.splitted = true
}

// undoFold replays the join fold of c in reverse.
func (c *cluster[E, A]) undoFold() {
	f := &c.t.funcs
	switch len(c.pieces) {
	case 0:
	case 1:
		f.Copy(c, c.pieces[0])
	default:
		last := len(c.pieces) - 1
		var left Cluster[A] = c.pieces[0]
		if len(c.mids) > 0 {
			left = c.mids[len(c.mids)-1]
		}
		f.Split(left, c.pieces[last], c)
		for i := len(c.mids) - 1; i >= 0; i-- {
			c.mids[i].undo(f)
		}
	}
	if c.edgeCluster != nil {
		c.edgeCluster.undo(f)
	}
	c.pieces, c.mids, c.edgeCluster = nil, nil, nil
}

// join recomputes the aggregate of c from its children, joining split
// children first.
func (c *cluster[E, A]) join() {
	if !c.splitted || c.deleted {
		return
	}
	if c.isBase() {
		c.left = c.vertex.Logical().Index
		c.right = c.left
		c.top = false
		c.splitted = false
		return
	}
	if c.first != nil {
		c.first.join()
	}
	if c.second != nil {
		c.second.join()
	}
	c.calculateOuterEdges(false)

	switch {
	case c.first == nil:
		panic(invariant("join", "%s has no children", c))
	case c.second == nil:
		ch := c.first
		c.top, c.rakeBranch = ch.top, ch.rakeBranch
		c.left, c.right = ch.left, ch.right
		if ch.top {
			c.pieces = []Cluster[A]{ch}
			c.t.funcs.Copy(ch, c)
		}
	default:
		c.joinPair()
	}
	c.splitted = false
}

// joinPair folds [first, edge, second] into c, skipping pieces without
// real edges.
//
// Implementation:
//   - Stage 1: Resolve the endpoints x (in first) and y (in second) of the
//     connecting edge and the boundary vertex each child contributes.
//   - Stage 2: Collect the pieces in path order.
//   - Stage 3: Join left to right; the intermediate cluster of a
//     three-piece fold ends at y.
func (c *cluster[E, A]) joinPair() {
	if c.edge == nil {
		panic(invariant("join", "%s has two children but no connecting edge", c))
	}
	f := &c.t.funcs

	var xv *basegraph.Vertex[E]
	for _, o := range c.first.outer {
		if o.edge == c.edge {
			xv = o.inner
			break
		}
	}
	if xv == nil {
		panic(invariant("join", "%s: connecting edge missing from first child", c))
	}
	x := xv.Logical().Index
	y := c.edge.Other(xv).Logical().Index

	a, hasA := c.first.boundaryExcept(c.edge)
	b, hasB := c.second.boundaryExcept(c.edge)
	if len(c.outer) == 0 {
		// root: the boundaries are free, keep the connecting edge on the path
		a, hasA = x, true
		b, hasB = y, !c.edge.Synthetic
	}
	l, r := a, b
	switch {
	case c.rakeBranch:
		// everything else is raked onto the single vertex both outer
		// edges leave from
		if hasA {
			l, r = a, a
		} else {
			l, r = b, b
		}
	case hasA && !hasB:
		r = a
	case hasB && !hasA:
		l = b
	case !hasA && !hasB:
		panic(invariant("join", "%s has no boundary", c))
	}

	if c.first.top {
		c.pieces = append(c.pieces, c.first)
	}
	if !c.edge.Synthetic {
		c.edgeCluster = newEdgeCluster(f, c.edge, x, y)
		c.pieces = append(c.pieces, c.edgeCluster)
	}
	if c.second.top {
		c.pieces = append(c.pieces, c.second)
	}

	c.top = len(c.pieces) > 0
	switch len(c.pieces) {
	case 0:
		c.left, c.right = x, x
	case 1:
		p := c.pieces[0]
		c.left, c.right = p.Left(), p.Right()
		f.Copy(p, c)
	case 2:
		c.left, c.right = l, r
		f.Join(c.pieces[0], c.pieces[1], c)
	case 3:
		ml := y
		if hasA {
			ml = a
		}
		mid := newComposite(f, c.pieces[0], c.pieces[1], ml, y)
		c.mids = []*simpleCluster[E, A]{mid}
		c.left, c.right = l, r
		f.Join(mid, c.pieces[2], c)
	}
}

// boundaryExcept returns the logical vertex at which c touches edges other
// than skip. A multi-vertex cluster touches the outside at no more than
// two vertices, so each side contributes at most one.
func (c *cluster[E, A]) boundaryExcept(skip *basegraph.Edge[E]) (int, bool) {
	v, found := 0, false
	for _, o := range c.outer {
		if o.edge == skip {
			continue
		}
		idx := o.inner.Logical().Index
		if found && idx != v {
			panic(invariant("join", "%s exposes more than one boundary beside the parent edge", c))
		}
		v, found = idx, true
	}
	return v, found
}

// unlink detaches c from the tree for good.
func (c *cluster[E, A]) unlink() {
	c.parent, c.first, c.second = nil, nil, nil
	c.vertex, c.edge = nil, nil
	c.outer = nil
	c.pieces, c.mids, c.edgeCluster = nil, nil, nil
	c.deleted = true
	c.inDelete, c.inChange, c.inAbandon = false, false, false
}
