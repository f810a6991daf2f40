package toptree

import (
	"github.com/setnicka/top-trees/basegraph"
	"github.com/setnicka/top-trees/bfs"
	"github.com/setnicka/top-trees/dfs"
)

// Check validates the whole structure and returns the first violation as
// an *InvariantError. It restores a pending Expose first.
//
// Implementation:
//   - Stage 1: Every concrete vertex respects the degree cap and every
//     chain is linked by synthetic edges only inside one superior.
//   - Stage 2: Every root cluster is parentless, joined and its subtree
//     is consistent: parent links, connecting edges, outer edge bounds,
//     rake flags.
//   - Stage 3: Every concrete vertex is reached from exactly one root and
//     the root set has one entry per component.
//   - Stage 4: The logical forest has no cycle.
//
// Complexity: O(n).
func (t *Tree[E, A]) Check() error {
	t.Restore()

	vertices := t.g.Vertices()
	concrete := 0
	for _, v := range vertices {
		if err := checkVertex(v); err != nil {
			return err
		}
		if !v.IsSplit() {
			concrete++
			continue
		}
		for _, s := range v.Subvertices() {
			if err := checkVertex(s); err != nil {
				return err
			}
			concrete++
		}
	}

	reached := make(map[*cluster[E, A]]*cluster[E, A])
	for el := t.roots.Front(); el != nil; el = el.Next() {
		r := el.Value.(*cluster[E, A])
		if r.parent != nil || r.deleted {
			return invariant("check", "%s in root set is not a root", r)
		}
		if err := t.checkSubtree(r, r, reached); err != nil {
			return err
		}
	}
	if len(reached) != concrete {
		return invariant("check", "roots reach %d base clusters, forest has %d concrete vertices", len(reached), concrete)
	}

	comps, err := bfs.Components(t.g)
	if err != nil {
		return invariant("check", "%v", err)
	}
	if len(comps) != t.roots.Len() {
		return invariant("check", "%d roots for %d components", t.roots.Len(), len(comps))
	}
	for _, comp := range comps {
		r := t.rootOf(vertices[comp[0]])
		if r.rootElem == nil {
			return invariant("check", "root of %d missing from the root set", comp[0])
		}
		for _, i := range comp[1:] {
			if t.rootOf(vertices[i]) != r {
				return invariant("check", "component of %d spans several roots", comp[0])
			}
		}
	}
	if cyc := dfs.FindCycle(t.g); cyc != nil {
		return invariant("check", "forest has a cycle %v", cyc)
	}
	return nil
}

func checkVertex[E any](v *basegraph.Vertex[E]) error {
	mirrors := 0
	for _, e := range v.Edges() {
		if e.From != v && e.To != v {
			mirrors++
			continue
		}
		if e.Synthetic && e.From.Superior() != e.To.Superior() {
			return invariant("check", "chain edge of %d leaves its vertex", v.Index)
		}
	}
	if v.IsSplit() {
		if n := len(v.Subvertices()); n < 2 {
			return invariant("check", "vertex %d split into %d subvertices", v.Index, n)
		}
		if mirrors != v.Degree() {
			return invariant("check", "split vertex %d holds direct edges", v.Index)
		}
		return nil
	}
	if v.Degree() > basegraph.MaxDegree {
		return invariant("check", "vertex %d has degree %d", v.Index, v.Degree())
	}
	return nil
}

func (t *Tree[E, A]) checkSubtree(c, root *cluster[E, A], reached map[*cluster[E, A]]*cluster[E, A]) error {
	if c.deleted || c.splitted {
		return invariant("check", "%s reachable while deleted or split", c)
	}
	if c.isBase() {
		if baseCluster[E, A](c.vertex) != c {
			return invariant("check", "%s is not the base cluster of its vertex", c)
		}
		if _, dup := reached[c]; dup {
			return invariant("check", "%s reached twice", c)
		}
		reached[c] = root
		if len(c.outer) > basegraph.MaxDegree {
			return invariant("check", "%s has %d outer edges", c, len(c.outer))
		}
		return nil
	}

	if c.first == nil || c.first.parent != c {
		return invariant("check", "%s has a broken first child", c)
	}
	if c.second == nil {
		if len(c.outer) != len(c.first.outer) || c.rakeBranch != c.first.rakeBranch {
			return invariant("check", "%s does not mirror its only child", c)
		}
		return t.checkSubtree(c.first, root, reached)
	}
	if c.second.parent != c {
		return invariant("check", "%s has a broken second child", c)
	}
	if c.edge == nil || !c.first.hasOuterEdge(c.edge) || !c.second.hasOuterEdge(c.edge) {
		return invariant("check", "%s children are not joined by its edge", c)
	}
	if len(c.outer) > 2 {
		return invariant("check", "%s has %d outer edges", c, len(c.outer))
	}
	if err := checkRake(c); err != nil {
		return err
	}
	if err := t.checkSubtree(c.first, root, reached); err != nil {
		return err
	}
	return t.checkSubtree(c.second, root, reached)
}

// checkRake validates the rake flag of a two-child cluster: it is set
// exactly when one child contributes both outer edges, and such a cluster
// touches the rest of the tree at one logical vertex.
func checkRake[E, A any](c *cluster[E, A]) error {
	want := isRake(len(c.first.outer)-1, len(c.second.outer)-1)
	if c.rakeBranch != want {
		return invariant("check", "%s has rake flag %t", c, c.rakeBranch)
	}
	if want && c.outer[0].inner.Logical() != c.outer[1].inner.Logical() {
		return invariant("check", "%s is a rake with two boundary vertices", c)
	}
	return nil
}
