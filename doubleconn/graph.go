package doubleconn

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/setnicka/top-trees/toptree"
)

// EdgeID identifies an inserted edge.
type EdgeID uuid.UUID

func (id EdgeID) String() string { return uuid.UUID(id).String() }

// edge is one edge of the multigraph. Tree edges carry the number of
// non-tree edges covering them; the counter is current only while the
// edge is outside the top tree's clusters and is refreshed by Destroy.
type edge struct {
	id    EdgeID
	u, v  int
	tree  bool
	cover int
	slot  int // index in Graph.nonTree, non-tree edges only
}

// Graph is a dynamic multigraph answering 2-edge-connectivity queries.
// It is not safe for concurrent use.
type Graph struct {
	forest  *toptree.Tree[*edge, cover]
	edges   map[EdgeID]*edge
	nonTree []*edge
	tracer  trace.Tracer
	log     *slog.Logger
}

// New creates a graph on n isolated vertices.
func New(n int, opts ...Option) *Graph {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	treeOpts := append([]toptree.Option{toptree.WithLogger(o.logger)}, o.treeOpts...)
	return &Graph{
		forest: toptree.New(n, coverFuncs(), treeOpts...),
		edges:  make(map[EdgeID]*edge),
		tracer: o.tracer.Tracer(tracerName),
		log:    o.logger.With(slog.String("component", "doubleconn")),
	}
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return g.forest.Len() }

// EdgeCount returns the number of edges, tree and non-tree.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Insert adds the edge (u, v). Parallel edges are allowed.
//
// Errors: toptree.ErrVertexNotFound, toptree.ErrSelfLoop, or the context
// error.
func (g *Graph) Insert(ctx context.Context, u, v int) (_ EdgeID, err error) {
	ctx, span := g.tracer.Start(ctx, "doubleconn.Insert", trace.WithAttributes(
		attribute.Int("vertex_u", u),
		attribute.Int("vertex_v", v),
	))
	defer func() { endSpan(span, err) }()
	if err := ctx.Err(); err != nil {
		return EdgeID{}, err
	}

	if u == v {
		return EdgeID{}, fmt.Errorf("doubleconn: insert %d-%d: %w", u, v, toptree.ErrSelfLoop)
	}
	connected, err := g.forest.InSameComponent(u, v)
	if err != nil {
		return EdgeID{}, fmt.Errorf("doubleconn: insert %d-%d: %w", u, v, err)
	}

	e := &edge{id: EdgeID(uuid.New()), u: u, v: v}
	if connected {
		g.addNonTree(e)
		g.cover(e, 1)
	} else {
		e.tree = true
		if _, err := g.forest.Link(u, v, e); err != nil {
			return EdgeID{}, fmt.Errorf("doubleconn: insert %d-%d: %w", u, v, err)
		}
	}
	g.edges[e.id] = e
	span.SetAttributes(
		attribute.String("edge_id", e.id.String()),
		attribute.Bool("tree_edge", e.tree),
	)
	return e.id, nil
}

// Delete removes the edge id.
//
// Errors: ErrEdgeNotFound or the context error.
func (g *Graph) Delete(ctx context.Context, id EdgeID) (err error) {
	ctx, span := g.tracer.Start(ctx, "doubleconn.Delete", trace.WithAttributes(
		attribute.String("edge_id", id.String()),
	))
	defer func() { endSpan(span, err) }()
	if err := ctx.Err(); err != nil {
		return err
	}

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("doubleconn: delete %s: %w", id, ErrEdgeNotFound)
	}
	span.SetAttributes(
		attribute.Int("vertex_u", e.u),
		attribute.Int("vertex_v", e.v),
		attribute.Bool("tree_edge", e.tree),
	)
	delete(g.edges, id)

	if !e.tree {
		g.cover(e, -1)
		g.removeNonTree(e)
		return nil
	}

	for _, f := range g.nonTree {
		g.cover(f, -1)
	}
	if _, _, _, err := g.forest.Cut(e.u, e.v); err != nil {
		return fmt.Errorf("doubleconn: delete %s: %w", id, err)
	}
	if f := g.replacement(); f != nil {
		g.removeNonTree(f)
		f.tree, f.cover = true, 0
		if _, err := g.forest.Link(f.u, f.v, f); err != nil {
			return fmt.Errorf("doubleconn: promote %s: %w", f.id, err)
		}
		span.SetAttributes(attribute.String("replacement_id", f.id.String()))
		g.log.Debug("doubleconn_replacement",
			slog.String("deleted", id.String()),
			slog.String("promoted", f.id.String()),
			slog.Int("u", f.u),
			slog.Int("v", f.v),
		)
	}
	for _, f := range g.nonTree {
		g.cover(f, 1)
	}
	return nil
}

// DoubleEdgeConnected reports whether u and v stay connected after the
// deletion of any single edge. A vertex is 2-edge-connected to itself.
//
// Errors: toptree.ErrVertexNotFound or the context error.
func (g *Graph) DoubleEdgeConnected(ctx context.Context, u, v int) (ok bool, err error) {
	ctx, span := g.tracer.Start(ctx, "doubleconn.DoubleEdgeConnected", trace.WithAttributes(
		attribute.Int("vertex_u", u),
		attribute.Int("vertex_v", v),
	))
	defer func() {
		span.SetAttributes(attribute.Bool("result", ok))
		endSpan(span, err)
	}()
	if err := ctx.Err(); err != nil {
		return false, err
	}

	connected, err := g.forest.InSameComponent(u, v)
	if err != nil {
		return false, fmt.Errorf("doubleconn: query %d-%d: %w", u, v, err)
	}
	if !connected {
		return false, nil
	}
	if u == v {
		return true, nil
	}
	c, err := g.forest.Expose(u, v)
	if err != nil {
		return false, fmt.Errorf("doubleconn: query %d-%d: %w", u, v, err)
	}
	return c.Data().pathMin > 0, nil
}

// Check validates the spanning forest.
func (g *Graph) Check() error { return g.forest.Check() }

// cover adds delta to every tree edge on the path of the non-tree edge e.
func (g *Graph) cover(e *edge, delta int) {
	c, err := g.forest.Expose(e.u, e.v)
	if err != nil {
		panic(fmt.Sprintf("doubleconn: non-tree edge %s spans two components: %v", e.id, err))
	}
	c.Data().add(delta)
}

// replacement returns the first non-tree edge joining two components.
func (g *Graph) replacement() *edge {
	for _, f := range g.nonTree {
		if ok, _ := g.forest.InSameComponent(f.u, f.v); !ok {
			return f
		}
	}
	return nil
}

func (g *Graph) addNonTree(e *edge) {
	e.slot = len(g.nonTree)
	g.nonTree = append(g.nonTree, e)
}

func (g *Graph) removeNonTree(e *edge) {
	last := g.nonTree[len(g.nonTree)-1]
	g.nonTree[e.slot] = last
	last.slot = e.slot
	g.nonTree = g.nonTree[:len(g.nonTree)-1]
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
