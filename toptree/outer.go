package toptree

import "github.com/setnicka/top-trees/basegraph"

// calculateOuterEdges rebuilds the outer edge list of c.
//
// A base cluster reads the edges of its vertex. A cluster with one child
// inherits the child's list. A cluster with two children keeps the
// symmetric difference of the children's lists; the single shared edge
// becomes the connecting edge. Neighbour clusters are always taken one
// level up from the children's neighbours.
//
// With checkNeighbours set, every neighbour gets its back-reference
// repaired or added.
func (c *cluster[E, A]) calculateOuterEdges(checkNeighbours bool) {
	c.split()
	c.outer = c.outer[:0]
	c.rakeBranch = false

	switch {
	case c.isBase():
		v := c.vertex
		for _, e := range v.Edges() {
			if e.From != v && e.To != v {
				continue // mirror of a subvertex edge
			}
			other := e.Other(v)
			oc, ok := other.Cluster.(*cluster[E, A])
			if !ok || oc == nil {
				panic(invariant("outer", "vertex %d has no base cluster", other.Index))
			}
			c.outer = append(c.outer, outerEdge[E, A]{edge: e, cluster: oc, inner: v})
		}
	case c.second == nil && c.first != nil:
		for _, o := range c.first.outer {
			c.outer = append(c.outer, outerEdge[E, A]{edge: o.edge, cluster: c.parentOf(o.cluster), inner: o.inner})
		}
		c.rakeBranch = c.first.rakeBranch
	case c.first != nil:
		c.edge = nil
		fromFirst := c.collectFrom(c.first, c.second)
		fromSecond := c.collectFrom(c.second, c.first)
		c.rakeBranch = isRake(fromFirst, fromSecond)
	}

	if checkNeighbours {
		c.checkNeighbours()
	}
}

// collectFrom appends the outer edges of child that do not lead to other,
// recording the one that does as the connecting edge. It returns the number
// of edges appended.
func (c *cluster[E, A]) collectFrom(child, other *cluster[E, A]) int {
	n := 0
	for _, o := range child.outer {
		if o.cluster == other {
			c.edge = o.edge
			continue
		}
		c.outer = append(c.outer, outerEdge[E, A]{edge: o.edge, cluster: c.parentOf(o.cluster), inner: o.inner})
		n++
	}
	return n
}

// isRake reports whether a pair whose children contribute fromFirst and
// fromSecond outer edges is a rake: exactly two from one child, none from
// the other.
func isRake(fromFirst, fromSecond int) bool {
	return (fromFirst == 2 && fromSecond == 0) || (fromFirst == 0 && fromSecond == 2)
}

func (c *cluster[E, A]) parentOf(n *cluster[E, A]) *cluster[E, A] {
	if n == nil || n.parent == nil {
		panic(invariant("outer", "%s: neighbour has no parent", c))
	}
	return n.parent
}

// checkNeighbours makes every neighbour point back at c through the shared
// edge.
func (c *cluster[E, A]) checkNeighbours() {
	for _, o := range c.outer {
		n := o.cluster
		found := false
		for i := range n.outer {
			if n.outer[i].edge == o.edge {
				n.outer[i].cluster = c
				found = true
				break
			}
		}
		if !found {
			n.outer = append(n.outer, outerEdge[E, A]{edge: o.edge, cluster: c, inner: o.edge.Other(o.inner)})
		}
	}
}

// removeAllOuterEdges erases c from its neighbours' lists and clears its own.
func (c *cluster[E, A]) removeAllOuterEdges() {
	for _, o := range c.outer {
		n := o.cluster
		if n == nil {
			continue
		}
		kept := n.outer[:0]
		for _, no := range n.outer {
			if no.edge == o.edge && no.cluster == c {
				continue
			}
			kept = append(kept, no)
		}
		n.outer = kept
	}
	c.outer = nil
}

// hasOuterEdge reports whether e leaves c.
func (c *cluster[E, A]) hasOuterEdge(e *basegraph.Edge[E]) bool {
	for _, o := range c.outer {
		if o.edge == e {
			return true
		}
	}
	return false
}
