package basegraph

// NewSubvertex creates a subvertex of the logical vertex v and places it in
// the chain right after `after`, or at the end of the chain when after is
// nil. The subvertex has no edges yet.
// Complexity: O(1).
func (g *Graph[E]) NewSubvertex(v, after *Vertex[E]) *Vertex[E] {
	s := newVertex[E](v.Index, v)
	if after != nil && after.subElem != nil {
		s.subElem = v.subvertices.InsertAfter(s, after.subElem)
	} else {
		s.subElem = v.subvertices.PushBack(s)
	}
	return s
}

// RemoveSubvertex drops s from its superior's chain. The caller detaches
// the edges of s first.
func (g *Graph[E]) RemoveSubvertex(s *Vertex[E]) {
	if s.superior == nil || s.subElem == nil {
		return
	}
	s.superior.subvertices.Remove(s.subElem)
	s.subElem = nil
	s.Cluster = nil
}

// ClearSubvertices forgets the whole chain of v, turning it back into a
// plain vertex. Remaining chain edges are forgotten too.
func (g *Graph[E]) ClearSubvertices(v *Vertex[E]) {
	for el := v.subvertices.Front(); el != nil; el = el.Next() {
		s := el.Value.(*Vertex[E])
		s.subElem = nil
		s.Cluster = nil
	}
	v.subvertices.Init()
	for el := v.chain.Front(); el != nil; el = el.Next() {
		el.Value.(*Edge[E]).chainElem = nil
	}
	v.chain.Init()
}

// NewChainEdge returns a detached synthetic edge between two subvertices of
// the same superior vertex and records it in the superior's chain list.
func (g *Graph[E]) NewChainEdge(from, to *Vertex[E]) *Edge[E] {
	e := &Edge[E]{From: from, To: to, Synthetic: true}
	if s := from.superior; s != nil {
		e.chainElem = s.chain.PushBack(e)
	}
	return e
}

// ForgetChainEdge removes a synthetic edge from the superior's chain list.
func (g *Graph[E]) ForgetChainEdge(e *Edge[E]) {
	if e.chainElem == nil {
		return
	}
	if s := e.From.superior; s != nil {
		s.chain.Remove(e.chainElem)
	}
	e.chainElem = nil
}
