package dfs

import "github.com/setnicka/top-trees/basegraph"

// FindCycle returns a cycle of the logical multigraph g as a closed
// sequence [v0, v1, ..., v0], or nil when g is a forest. The edge a vertex
// was entered through is skipped by identity, so two parallel edges are
// reported as the cycle [u, v, u].
//
// Complexity: O(V + E).
func FindCycle[E any](g *basegraph.Graph[E]) []int {
	if g == nil {
		return nil
	}
	verts := g.Vertices()
	state := make([]int, len(verts))
	var path []int

	var visit func(v *basegraph.Vertex[E], via *basegraph.Edge[E]) []int
	visit = func(v *basegraph.Vertex[E], via *basegraph.Edge[E]) []int {
		state[v.Index] = Gray
		path = append(path, v.Index)
		for _, e := range v.Edges() {
			if e.Synthetic || e == via {
				continue
			}
			nb := e.OtherLogical(v)
			switch state[nb.Index] {
			case White:
				if cyc := visit(nb, e); cyc != nil {
					return cyc
				}
			case Gray:
				return closeCycle(path, nb.Index)
			}
		}
		path = path[:len(path)-1]
		state[v.Index] = Black
		return nil
	}

	for _, v := range verts {
		if state[v.Index] != White {
			continue
		}
		if cyc := visit(v, nil); cyc != nil {
			return cyc
		}
	}
	return nil
}

// closeCycle cuts the stack at start and closes the loop.
func closeCycle(path []int, start int) []int {
	i := len(path) - 1
	for path[i] != start {
		i--
	}
	out := append([]int(nil), path[i:]...)
	return append(out, start)
}
