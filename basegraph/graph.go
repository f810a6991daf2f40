package basegraph

import "fmt"

// Graph is the vertex table of a base forest.
//
// Only logical vertices live in the table; subvertices are reachable
// through their superior vertex.
type Graph[E any] struct {
	vertices []*Vertex[E]
	edges    int // attached real edges
}

// New creates a graph with n isolated vertices indexed 0..n-1.
// Complexity: O(n).
func New[E any](n int) *Graph[E] {
	g := &Graph[E]{vertices: make([]*Vertex[E], 0, n)}
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	return g
}

// AddVertex appends a new isolated logical vertex and returns it.
func (g *Graph[E]) AddVertex() *Vertex[E] {
	v := newVertex[E](len(g.vertices), nil)
	g.vertices = append(g.vertices, v)
	return v
}

// Vertex returns the logical vertex with the given index.
func (g *Graph[E]) Vertex(i int) (*Vertex[E], error) {
	if i < 0 || i >= len(g.vertices) {
		return nil, fmt.Errorf("vertex %d: %w", i, ErrVertexNotFound)
	}
	return g.vertices[i], nil
}

// Vertices returns the logical vertices in index order.
func (g *Graph[E]) Vertices() []*Vertex[E] {
	out := make([]*Vertex[E], len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Len returns the number of logical vertices.
func (g *Graph[E]) Len() int { return len(g.vertices) }

// EdgeCount returns the number of attached real edges.
func (g *Graph[E]) EdgeCount() int { return g.edges }

// Attach registers e at both endpoints and, for a real edge whose endpoint
// is a subvertex, at the superior vertex mirror list.
//
// Implementation:
//   - Stage 1: Reject attached edges, logical self-loops and full endpoints.
//   - Stage 2: Push e to both neighbour lists, keeping the handles.
//   - Stage 3: Mirror real edges at superior vertices.
//
// Complexity: O(1).
func (g *Graph[E]) Attach(e *Edge[E]) error {
	if e.Attached() {
		return ErrEdgeAttached
	}
	if e.From == e.To || (!e.Synthetic && e.From.Logical() == e.To.Logical()) {
		return fmt.Errorf("attach %d-%d: %w", e.From.Index, e.To.Index, ErrSelfLoop)
	}
	if e.From.Degree() >= MaxDegree || e.To.Degree() >= MaxDegree {
		return fmt.Errorf("attach %d-%d: %w", e.From.Index, e.To.Index, ErrDegreeExceeded)
	}

	e.fromElem = e.From.neighbours.PushBack(e)
	e.toElem = e.To.neighbours.PushBack(e)
	if !e.Synthetic {
		if s := e.From.superior; s != nil {
			e.supFromElem = s.neighbours.PushBack(e)
		}
		if s := e.To.superior; s != nil {
			e.supToElem = s.neighbours.PushBack(e)
		}
		g.edges++
	}
	return nil
}

// Detach removes e from every list it was registered in.
// Complexity: O(1).
func (g *Graph[E]) Detach(e *Edge[E]) error {
	if !e.Attached() {
		return ErrEdgeDetached
	}
	e.From.neighbours.Remove(e.fromElem)
	e.To.neighbours.Remove(e.toElem)
	if e.supFromElem != nil {
		e.From.superior.neighbours.Remove(e.supFromElem)
	}
	if e.supToElem != nil {
		e.To.superior.neighbours.Remove(e.supToElem)
	}
	e.fromElem, e.toElem, e.supFromElem, e.supToElem = nil, nil, nil, nil
	if !e.Synthetic {
		g.edges--
	}
	return nil
}

// FindEdge returns the real edge between the logical vertices of u and v,
// or nil when there is none.
// Complexity: O(deg(u)).
func (g *Graph[E]) FindEdge(u, v *Vertex[E]) *Edge[E] {
	u, v = u.Logical(), v.Logical()
	for el := u.neighbours.Front(); el != nil; el = el.Next() {
		e := el.Value.(*Edge[E])
		if e.Synthetic {
			continue
		}
		if e.OtherLogical(u) == v {
			return e
		}
	}
	return nil
}

// Neighbours returns the logical neighbours of the logical vertex v in
// neighbour-list order.
func (g *Graph[E]) Neighbours(v *Vertex[E]) []*Vertex[E] {
	v = v.Logical()
	out := make([]*Vertex[E], 0, v.neighbours.Len())
	for el := v.neighbours.Front(); el != nil; el = el.Next() {
		e := el.Value.(*Edge[E])
		if e.Synthetic {
			continue
		}
		out = append(out, e.OtherLogical(v))
	}
	return out
}
