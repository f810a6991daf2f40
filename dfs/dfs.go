package dfs

import (
	"fmt"

	"github.com/setnicka/top-trees/basegraph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[E any] struct {
	graph *basegraph.Graph[E]
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start, or over the whole
// forest with WithFullTraversal (start is then ignored).
func DFS[E any](g *basegraph.Graph[E], start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal {
		if _, err := g.Vertex(start); err != nil {
			return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
		}
	}

	n := g.Len()
	w := &dfsWalker[E]{graph: g, opts: o, res: &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make(map[int]bool, n),
	}}

	if o.FullTraversal {
		for i := 0; i < n; i++ {
			if w.res.Visited[i] {
				continue
			}
			if err := w.traverse(i, 0); err != nil {
				return w.res, err
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return w.res, err
	}

	w.res.SkippedNeighbors = w.opts.SkippedNeighbors
	return w.res, nil
}

// traverse visits id at the given depth and recurses into its neighbours.
func (w *dfsWalker[E]) traverse(id, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	v, err := w.graph.Vertex(id)
	if err != nil {
		return fmt.Errorf("dfs: %w", err)
	}
	for _, nb := range w.graph.Neighbours(v) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nb.Index) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nb.Index] {
			continue
		}
		w.res.Parent[nb.Index] = id
		if err := w.traverse(nb.Index, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)
	return nil
}
