package toptree

import (
	"log/slog"

	"github.com/setnicka/top-trees/basegraph"
)

// vertexToLink returns a concrete vertex of the logical vertex v that can
// take one more edge.
//
// A vertex below the degree cap is returned as is. A vertex at the cap is
// replaced by two subvertices joined by a synthetic edge: the first takes
// two of the edges, the second the third one and the new edge. A vertex
// that is already split gets one more subvertex inserted after the head of
// its chain.
func (t *Tree[E, A]) vertexToLink(v *basegraph.Vertex[E]) *basegraph.Vertex[E] {
	if v.IsSplit() {
		subs := v.Subvertices()
		if len(subs) < 2 {
			panic(invariant("subvertex", "vertex %d has a chain of %d", v.Index, len(subs)))
		}
		first, second := subs[0], subs[1]
		var chain *basegraph.Edge[E]
		for _, e := range first.Edges() {
			if e.Synthetic && e.Other(first) == second {
				chain = e
				break
			}
		}
		if chain == nil {
			panic(invariant("subvertex", "vertex %d: head of chain not linked to its successor", v.Index))
		}

		s := t.g.NewSubvertex(v, first)
		t.newBaseCluster(s)
		t.cut(first, second, chain)
		t.link(first, s, chain)
		t.link(s, second, t.g.NewChainEdge(s, second))

		t.opts.Metrics.vertexSplit(1)
		t.log.Debug("toptree_subvertex_inserted",
			slog.Int("vertex", v.Index),
			slog.Int("chain", len(subs)+1),
		)
		return s
	}

	if v.Degree() < basegraph.MaxDegree {
		return v
	}

	a := t.g.NewSubvertex(v, nil)
	b := t.g.NewSubvertex(v, nil)
	t.newBaseCluster(a)
	t.newBaseCluster(b)
	for _, e := range v.Edges() {
		target := a
		if a.Degree() >= 2 {
			target = b
		}
		other := e.Other(v)
		t.cut(v, other, e)
		if e.From == v {
			t.link(target, other, e)
		} else {
			t.link(other, target, e)
		}
	}
	t.link(a, b, t.g.NewChainEdge(a, b))

	t.opts.Metrics.vertexSplit(2)
	t.log.Debug("toptree_vertex_split", slog.Int("vertex", v.Index))
	return b
}

// repairAfterCut keeps the subvertex chain of v's superior well formed
// after v lost an edge.
//
// An interior subvertex has nothing left but its two chain edges and is
// spliced out. An end subvertex of a two-element chain collapses the whole
// chain back into the superior vertex. Any other end subvertex takes over
// a real edge from its chain neighbour and the neighbour is repaired in
// turn.
func (t *Tree[E, A]) repairAfterCut(v *basegraph.Vertex[E]) {
	sup := v.Superior()
	var chain []*basegraph.Edge[E]
	for _, e := range v.Edges() {
		if e.Synthetic {
			chain = append(chain, e)
		}
	}

	switch len(chain) {
	case 2:
		n1, n2 := chain[0].Other(v), chain[1].Other(v)
		t.cut(n1, v, chain[0])
		t.g.ForgetChainEdge(chain[0])
		t.cut(n2, v, chain[1])
		t.link(n1, n2, chain[1])
		t.dropBaseCluster(v)
		t.g.RemoveSubvertex(v)
		t.log.Debug("toptree_subvertex_removed", slog.Int("vertex", sup.Index))

	case 1:
		n := chain[0].Other(v)
		if syntheticDegree(n) == 1 {
			t.collapse(sup, v, n)
			return
		}
		for _, e := range n.Edges() {
			if e.Synthetic {
				continue
			}
			other := e.Other(n)
			t.cut(n, other, e)
			if e.From == n {
				t.link(v, other, e)
			} else {
				t.link(other, v, e)
			}
			break
		}
		t.repairAfterCut(n)

	default:
		panic(invariant("subvertex", "subvertex of %d has %d chain edges", sup.Index, len(chain)))
	}
}

// collapse merges the two-subvertex chain (v, w) back into sup.
func (t *Tree[E, A]) collapse(sup, v, w *basegraph.Vertex[E]) {
	type moved struct {
		other *basegraph.Vertex[E]
		edge  *basegraph.Edge[E]
	}
	var keep []moved
	for _, s := range []*basegraph.Vertex[E]{v, w} {
		for _, e := range s.Edges() {
			other := e.Other(s)
			if !e.Synthetic {
				keep = append(keep, moved{other: other, edge: e})
			}
			t.cut(s, other, e)
		}
	}

	t.dropBaseCluster(v)
	t.dropBaseCluster(w)
	t.g.ClearSubvertices(sup)
	for _, m := range keep {
		t.link(sup, m.other, m.edge)
	}

	t.opts.Metrics.vertexMerge()
	t.log.Debug("toptree_vertex_merged", slog.Int("vertex", sup.Index), slog.Int("degree", sup.Degree()))
}

// dropBaseCluster retires the base cluster of a subvertex that has lost
// all of its edges.
func (t *Tree[E, A]) dropBaseCluster(v *basegraph.Vertex[E]) {
	c := baseCluster[E, A](v)
	if c.parent != nil || len(c.outer) != 0 {
		panic(invariant("subvertex", "dropping attached base cluster of %d", v.Index))
	}
	c.unlink()
	t.opts.Metrics.clusterDeleted()
}

func syntheticDegree[E any](v *basegraph.Vertex[E]) int {
	n := 0
	for _, e := range v.Edges() {
		if e.Synthetic {
			n++
		}
	}
	return n
}
