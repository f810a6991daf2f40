package bfs

import (
	"fmt"

	"github.com/setnicka/top-trees/basegraph"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[E any] struct {
	graph   *basegraph.Graph[E]
	opts    BFSOptions
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[E any](g *basegraph.Graph[E], start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, err := g.Vertex(start); err != nil {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Len()
	w := &walker[E]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// Components partitions the logical vertices of g into connected
// components. Each component lists its vertices in BFS order from its
// smallest index; components are ordered by that index.
func Components[E any](g *basegraph.Graph[E]) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := &walker[E]{
		graph:   g,
		opts:    DefaultOptions(),
		visited: make(map[int]bool, g.Len()),
	}
	var out [][]int
	for i := 0; i < g.Len(); i++ {
		if w.visited[i] {
			continue
		}
		w.res = &BFSResult{Depth: map[int]int{}, Parent: map[int]int{}}
		w.enqueue(i, 0, -1)
		if err := w.loop(); err != nil {
			return nil, err
		}
		out = append(out, w.res.Order)
	}
	return out, nil
}

// enqueue marks id visited at depth d, records its parent (-1 for the
// start) and adds it to the queue.
func (w *walker[E]) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each
// unseen logical neighbour.
func (w *walker[E]) enqueueNeighbors(item queueItem) {
	v, err := w.graph.Vertex(item.id)
	if err != nil {
		return
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.graph.Neighbours(v) {
		if w.visited[nb.Index] || !w.opts.FilterNeighbor(item.id, nb.Index) {
			continue
		}
		w.enqueue(nb.Index, next, item.id)
	}
}
