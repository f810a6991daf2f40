package basegraph

import (
	"container/list"
	"errors"
)

// MaxDegree is the number of edges a concrete vertex may carry.
const MaxDegree = 3

// Sentinel errors for base graph operations.
var (
	// ErrVertexNotFound indicates an index outside the vertex table.
	ErrVertexNotFound = errors.New("basegraph: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints are the same logical vertex.
	ErrSelfLoop = errors.New("basegraph: self-loop not allowed")

	// ErrDegreeExceeded indicates a concrete endpoint already has MaxDegree edges.
	ErrDegreeExceeded = errors.New("basegraph: vertex degree exceeded")

	// ErrEdgeAttached indicates Attach on an edge already registered at its endpoints.
	ErrEdgeAttached = errors.New("basegraph: edge already attached")

	// ErrEdgeDetached indicates Detach on an edge that is not registered.
	ErrEdgeDetached = errors.New("basegraph: edge not attached")
)

// Vertex is a node of the base forest.
//
// A vertex is either a logical vertex (Superior() == nil) or a subvertex of
// one. Subvertices share the Index of their superior vertex.
type Vertex[E any] struct {
	// Index identifies the logical vertex.
	Index int

	// Cluster is an opaque slot owned by the structure built on top of the
	// graph (the top tree keeps its base cluster here).
	Cluster any

	superior    *Vertex[E]
	neighbours  *list.List // of *Edge[E]
	subvertices *list.List // of *Vertex[E], superior vertices only
	subElem     *list.Element
	chain       *list.List // synthetic edges between own subvertices
}

func newVertex[E any](index int, superior *Vertex[E]) *Vertex[E] {
	return &Vertex[E]{
		Index:       index,
		superior:    superior,
		neighbours:  list.New(),
		subvertices: list.New(),
		chain:       list.New(),
	}
}

// Superior returns the vertex this subvertex belongs to, or nil for a
// logical vertex.
func (v *Vertex[E]) Superior() *Vertex[E] { return v.superior }

// Logical resolves a possibly split vertex to its logical identity.
func (v *Vertex[E]) Logical() *Vertex[E] {
	if v.superior != nil {
		return v.superior
	}
	return v
}

// Degree returns the number of registered edges. For a split vertex this
// is the logical degree, counted through the mirror list.
func (v *Vertex[E]) Degree() int { return v.neighbours.Len() }

// IsSplit reports whether the vertex is represented by a subvertex chain.
func (v *Vertex[E]) IsSplit() bool { return v.subvertices.Len() > 0 }

// Edges returns a snapshot of the neighbour list in insertion order.
// The snapshot stays valid while edges are detached and re-attached.
func (v *Vertex[E]) Edges() []*Edge[E] {
	out := make([]*Edge[E], 0, v.neighbours.Len())
	for el := v.neighbours.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*Edge[E]))
	}
	return out
}

// Subvertices returns the subvertex chain in chain order.
func (v *Vertex[E]) Subvertices() []*Vertex[E] {
	out := make([]*Vertex[E], 0, v.subvertices.Len())
	for el := v.subvertices.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*Vertex[E]))
	}
	return out
}

// FirstSubvertex returns the head of the chain, or nil when not split.
func (v *Vertex[E]) FirstSubvertex() *Vertex[E] {
	if el := v.subvertices.Front(); el != nil {
		return el.Value.(*Vertex[E])
	}
	return nil
}

// Representative returns the concrete vertex that stands for v inside the
// forest: v itself, or the first subvertex of its chain.
func (v *Vertex[E]) Representative() *Vertex[E] {
	if s := v.FirstSubvertex(); s != nil {
		return s
	}
	return v
}

// ChainEdges returns the synthetic edges joining the subvertices of v.
func (v *Vertex[E]) ChainEdges() []*Edge[E] {
	out := make([]*Edge[E], 0, v.chain.Len())
	for el := v.chain.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*Edge[E]))
	}
	return out
}

// Edge connects two concrete vertices.
//
// Synthetic edges join subvertices of the same logical vertex and never
// carry a meaningful Payload.
type Edge[E any] struct {
	From, To  *Vertex[E]
	Payload   E
	Synthetic bool

	fromElem, toElem       *list.Element
	supFromElem, supToElem *list.Element
	chainElem              *list.Element
}

// NewEdge returns a detached real edge.
func NewEdge[E any](from, to *Vertex[E], payload E) *Edge[E] {
	return &Edge[E]{From: from, To: to, Payload: payload}
}

// Other returns the endpoint opposite to v, or nil when v is not an endpoint.
func (e *Edge[E]) Other(v *Vertex[E]) *Vertex[E] {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	}
	return nil
}

// OtherLogical returns the logical vertex opposite to the logical vertex v.
func (e *Edge[E]) OtherLogical(v *Vertex[E]) *Vertex[E] {
	switch v {
	case e.From.Logical():
		return e.To.Logical()
	case e.To.Logical():
		return e.From.Logical()
	}
	return nil
}

// Attached reports whether the edge is registered at its endpoints.
func (e *Edge[E]) Attached() bool { return e.fromElem != nil }
