package toptree

import "fmt"

// unit is a cluster taking part in an Expose, seen as an edge between its
// boundary vertices of the component's logical tree.
type unit[A any] struct {
	c    Cluster[A]
	used bool
}

func (u *unit[A]) other(x int) int {
	if u.c.Left() == x {
		return u.c.Right()
	}
	return u.c.Left()
}

// Expose builds a temporary cluster whose boundaries are exactly u and v
// and whose path is the u-v path of the forest. The returned cluster may
// be modified; Restore (called by every later operation) pushes the
// modification down into the tree.
//
// Errors: ErrVertexNotFound, ErrSameVertex, ErrDisconnected.
//
// Implementation:
//   - Stage 1: Split the ancestors of the base clusters of u and v.
//   - Stage 2: Collect units: each split two-child cluster contributes its
//     connecting edge, each unsplit sibling with real edges contributes
//     itself.
//   - Stage 3: Find the u-v path among the units.
//   - Stage 4: Rake everything hanging off the path onto it, then compress
//     along the path from u to v.
//
// Complexity: O(log n) units.
func (t *Tree[E, A]) Expose(u, v int) (_ Cluster[A], err error) {
	defer func() { t.opts.Metrics.op("expose", err) }()
	t.Restore()

	vu, vv, err := t.vertexPair(u, v)
	if err != nil {
		return nil, err
	}
	if u == v {
		return nil, fmt.Errorf("expose %d: %w", u, ErrSameVertex)
	}
	if t.rootOf(vu) != t.rootOf(vv) {
		return nil, fmt.Errorf("expose %d-%d: %w", u, v, ErrDisconnected)
	}

	bu := baseCluster[E, A](vu.Representative())
	bv := baseCluster[E, A](vv.Representative())
	bu.split()
	bv.split()

	var units []*unit[A]
	seen := make(map[*cluster[E, A]]bool)
	units = t.collectUnits(bu, nil, seen, units)
	units = t.collectUnits(bv, seen, nil, units)

	adj := make(map[int][]*unit[A])
	for _, un := range units {
		adj[un.c.Left()] = append(adj[un.c.Left()], un)
		if !IsPoint(un.c) {
			adj[un.c.Right()] = append(adj[un.c.Right()], un)
		}
	}

	nodes, path := findPath(adj, u, v)
	if path == nil {
		panic(invariant("expose", "no path between %d and %d among %d units", u, v, len(units)))
	}
	for _, p := range path {
		p.used = true
	}

	var acc Cluster[A]
	for i, x := range nodes {
		hang := t.gather(adj, x)
		switch {
		case i == 0:
			acc = path[0].c
			if hang != nil {
				acc = t.compose(acc, hang, u, nodes[1])
			}
		case i < len(path):
			next := path[i].c
			if hang != nil {
				next = t.compose(next, hang, x, nodes[i+1])
			}
			acc = t.compose(acc, next, u, nodes[i+1])
		default:
			if hang != nil {
				acc = t.compose(acc, hang, u, v)
			}
		}
	}
	return acc, nil
}

// collectUnits walks from the base cluster b to the root and appends the
// units hanging off that walk. The walk stops at a cluster in stop;
// clusters visited are recorded in seen.
func (t *Tree[E, A]) collectUnits(b *cluster[E, A], stop, seen map[*cluster[E, A]]bool, units []*unit[A]) []*unit[A] {
	for child, p := b, b.parent; p != nil; child, p = p, p.parent {
		if stop[p] {
			break
		}
		if seen != nil {
			seen[p] = true
		}
		if p.second == nil {
			continue
		}
		if e := p.edge; e != nil && !e.Synthetic {
			s := newEdgeCluster(&t.funcs, e, e.From.Logical().Index, e.To.Logical().Index)
			t.exposed = append(t.exposed, s)
			units = append(units, &unit[A]{c: s})
		}
		sib := p.first
		if sib == child {
			sib = p.second
		}
		if !sib.splitted && sib.top {
			units = append(units, &unit[A]{c: sib})
		}
	}
	return units
}

// findPath returns the vertices and units of the u-v path over the path
// units in adj.
func findPath[A any](adj map[int][]*unit[A], u, v int) ([]int, []*unit[A]) {
	type step struct {
		prev int
		via  *unit[A]
	}
	from := map[int]step{u: {prev: u}}
	queue := []int{u}
	for len(queue) > 0 && !hasKey(from, v) {
		x := queue[0]
		queue = queue[1:]
		for _, un := range adj[x] {
			if IsPoint(un.c) {
				continue
			}
			y := un.other(x)
			if _, ok := from[y]; ok {
				continue
			}
			from[y] = step{prev: x, via: un}
			queue = append(queue, y)
		}
	}
	if !hasKey(from, v) {
		return nil, nil
	}

	var nodes []int
	var path []*unit[A]
	for x := v; x != u; x = from[x].prev {
		nodes = append(nodes, x)
		path = append(path, from[x].via)
	}
	nodes = append(nodes, u)
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return nodes, path
}

func hasKey[K comparable, V any](m map[K]V, k K) bool {
	_, ok := m[k]
	return ok
}

// gather joins every unused unit reachable from x without crossing the
// path into one cluster hanging at x. It returns nil when nothing hangs
// there.
func (t *Tree[E, A]) gather(adj map[int][]*unit[A], x int) Cluster[A] {
	var acc Cluster[A]
	for _, un := range adj[x] {
		if un.used {
			continue
		}
		un.used = true
		c := un.c
		if !IsPoint(c) {
			y := un.other(x)
			if h := t.gather(adj, y); h != nil {
				c = t.compose(c, h, x, x)
			}
		}
		if acc == nil {
			acc = c
		} else {
			acc = t.compose(acc, c, x, x)
		}
	}
	return acc
}

// compose joins two clusters into a composite with boundaries (l, r) and
// records it for Restore.
func (t *Tree[E, A]) compose(first, second Cluster[A], l, r int) Cluster[A] {
	s := newComposite(&t.funcs, first, second, l, r)
	t.exposed = append(t.exposed, s)
	return s
}
