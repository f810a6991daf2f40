package toptree

import (
	"fmt"
	"log/slog"

	"github.com/setnicka/top-trees/basegraph"
)

// FromEdges creates a forest of n vertices holding the given edges.
//
// Errors: the first edge that names a missing vertex (ErrVertexNotFound),
// is a loop (ErrSelfLoop) or closes a cycle (ErrAlreadyConnected), wrapped
// with its index.
//
// Implementation:
//   - Stage 1: Validate every edge with a union-find before touching the
//     tree.
//   - Stage 2: Lay out a subvertex chain for every vertex whose final
//     degree exceeds the cap, then attach all edges to the base forest.
//   - Stage 3: Compute the outer edges of every base cluster and build the
//     whole hierarchy in one rebalancing pass, bottom-up.
//
// Complexity: O(n + m).
func FromEdges[E, A any](n int, edges []Edge[E], funcs ClusterFuncs[E, A], opts ...Option) (_ *Tree[E, A], err error) {
	t := New(n, funcs, opts...)
	defer func() { t.finish("build", err) }()

	if err := t.validateForest(edges); err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return t, nil
	}

	degree := make([]int, n)
	for _, e := range edges {
		degree[e.U]++
		degree[e.V]++
	}
	vertices := t.g.Vertices()
	slots := make([][]*basegraph.Vertex[E], n)
	for i, v := range vertices {
		slots[i] = t.layoutSlots(v, degree[i])
	}
	for _, e := range edges {
		a, b := slots[e.U][0], slots[e.V][0]
		slots[e.U], slots[e.V] = slots[e.U][1:], slots[e.V][1:]
		if err := t.g.Attach(basegraph.NewEdge(a, b, e.Payload)); err != nil {
			panic(invariant("build", "%v", err))
		}
	}

	var base []*cluster[E, A]
	for _, v := range vertices {
		if !v.IsSplit() {
			base = append(base, baseCluster[E, A](v))
			continue
		}
		for _, s := range v.Subvertices() {
			base = append(base, baseCluster[E, A](s))
		}
	}
	for _, c := range base {
		c.split()
	}
	for _, c := range base {
		c.calculateOuterEdges(false)
	}

	for el := t.roots.Front(); el != nil; {
		next := el.Next()
		t.dropRoot(el.Value.(*cluster[E, A]))
		el = next
	}
	roots := t.update(base...)
	t.rejoin()
	for _, r := range roots {
		t.addRoot(r)
	}
	t.log.Debug("toptree_built",
		slog.Int("vertices", n),
		slog.Int("edges", len(edges)),
		slog.Int("roots", len(roots)),
	)
	return t, nil
}

// validateForest checks that edges form a forest over the vertices of t.
func (t *Tree[E, A]) validateForest(edges []Edge[E]) error {
	parent := make([]int, t.g.Len())
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	for i, e := range edges {
		if _, _, err := t.vertexPair(e.U, e.V); err != nil {
			return fmt.Errorf("edge %d (%d-%d): %w", i, e.U, e.V, err)
		}
		if e.U == e.V {
			return fmt.Errorf("edge %d (%d-%d): %w", i, e.U, e.V, ErrSelfLoop)
		}
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			return fmt.Errorf("edge %d (%d-%d): %w", i, e.U, e.V, ErrAlreadyConnected)
		}
		parent[ru] = rv
	}
	return nil
}

// layoutSlots returns one concrete vertex per edge v is going to receive.
//
// Up to the degree cap every slot is v itself. Above it v becomes a chain
// of degree-2 subvertices: both ends take two real edges, every interior
// subvertex one, so a chain of k holds k+2 edges.
func (t *Tree[E, A]) layoutSlots(v *basegraph.Vertex[E], degree int) []*basegraph.Vertex[E] {
	slots := make([]*basegraph.Vertex[E], 0, degree)
	if degree <= basegraph.MaxDegree {
		for i := 0; i < degree; i++ {
			slots = append(slots, v)
		}
		return slots
	}

	k := degree - 2
	chain := make([]*basegraph.Vertex[E], k)
	for i := range chain {
		chain[i] = t.g.NewSubvertex(v, nil)
		t.newBaseCluster(chain[i])
		if i > 0 {
			if err := t.g.Attach(t.g.NewChainEdge(chain[i-1], chain[i])); err != nil {
				panic(invariant("build", "%v", err))
			}
		}
	}
	slots = append(slots, chain[0])
	slots = append(slots, chain...)
	slots = append(slots, chain[k-1])

	t.opts.Metrics.vertexSplit(k)
	t.log.Debug("toptree_vertex_split", slog.Int("vertex", v.Index), slog.Int("chain", k))
	return slots
}
