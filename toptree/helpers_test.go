package toptree_test

import (
	"fmt"
	"math"
	"slices"

	"github.com/setnicka/top-trees/basegraph"
	"github.com/setnicka/top-trees/bfs"
	"github.com/setnicka/top-trees/toptree"
)

// pathAgg records the edge ids on the cluster path, oriented from Left to
// Right, and the sorted ids of every other edge in the cluster.
type pathAgg struct {
	path []int
	off  []int
}

// pathTracker counts user function calls and records inconsistencies
// instead of panicking inside the tree.
type pathTracker struct {
	created, destroyed, joins, splits int
	errs                              []string
}

func (pt *pathTracker) fail(format string, args ...any) {
	pt.errs = append(pt.errs, fmt.Sprintf(format, args...))
}

func (pt *pathTracker) funcs() toptree.ClusterFuncs[int, pathAgg] {
	return toptree.ClusterFuncs[int, pathAgg]{
		Create: func(c toptree.Cluster[pathAgg], e int) {
			pt.created++
			if toptree.IsPoint(c) {
				pt.fail("edge %d created as a point cluster", e)
			}
			*c.Data() = pathAgg{path: []int{e}}
		},
		Destroy: func(c toptree.Cluster[pathAgg], e int) {
			pt.destroyed++
			if d := c.Data(); len(d.path) != 1 || d.path[0] != e {
				pt.fail("destroying edge %d holding %v", e, d.path)
			}
		},
		Join: func(a, b, out toptree.Cluster[pathAgg]) {
			pt.joins++
			*out.Data() = pt.join(a, b, out)
		},
		Split: func(a, b, joined toptree.Cluster[pathAgg]) {
			pt.splits++
			want := pt.join(a, b, joined)
			got := joined.Data()
			if !slices.Equal(want.path, got.path) || !slices.Equal(want.off, got.off) {
				pt.fail("split of %d-%d: joined %v/%v, operands give %v/%v",
					joined.Left(), joined.Right(), got.path, got.off, want.path, want.off)
			}
		},
	}
}

func sameEnds[A any](x, y toptree.Cluster[A]) bool {
	return (x.Left() == y.Left() && x.Right() == y.Right()) ||
		(x.Left() == y.Right() && x.Right() == y.Left())
}

func oriented(c toptree.Cluster[pathAgg], from int) []int {
	p := slices.Clone(c.Data().path)
	if c.Left() != from {
		slices.Reverse(p)
	}
	return p
}

func all(c toptree.Cluster[pathAgg]) []int {
	return append(slices.Clone(c.Data().path), c.Data().off...)
}

func sorted(xs ...[]int) []int {
	out := slices.Concat(xs...)
	slices.Sort(out)
	return out
}

func (pt *pathTracker) join(a, b, out toptree.Cluster[pathAgg]) pathAgg {
	switch {
	case toptree.IsPoint(out):
		return pathAgg{off: sorted(all(a), all(b))}
	case !toptree.IsPoint(a) && sameEnds(out, a):
		return pathAgg{path: oriented(a, out.Left()), off: sorted(a.Data().off, all(b))}
	case !toptree.IsPoint(b) && sameEnds(out, b):
		return pathAgg{path: oriented(b, out.Left()), off: sorted(b.Data().off, all(a))}
	}

	first, second := a, b
	if out.Left() != a.Left() && out.Left() != a.Right() {
		first, second = b, a
	}
	shared := first.Right()
	if first.Left() != out.Left() {
		shared = first.Left()
	}
	if toptree.IsPoint(first) || toptree.IsPoint(second) ||
		(second.Left() != shared && second.Right() != shared) {
		pt.fail("join %d-%d + %d-%d into %d-%d is not a compress",
			a.Left(), a.Right(), b.Left(), b.Right(), out.Left(), out.Right())
		return pathAgg{off: sorted(all(a), all(b))}
	}
	return pathAgg{
		path: append(oriented(first, out.Left()), oriented(second, shared)...),
		off:  sorted(first.Data().off, second.Data().off),
	}
}

// oracle mirrors the forest as a plain edge map and answers path queries
// through bfs.
type oracle struct {
	ids map[[2]int]int
}

func newOracle() *oracle { return &oracle{ids: make(map[[2]int]int)} }

func key(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

func (o *oracle) link(u, v, id int) { o.ids[key(u, v)] = id }
func (o *oracle) cut(u, v int)      { delete(o.ids, key(u, v)) }

// pathIDs returns the edge ids on the u-v path of g.
func pathIDs[E any](g *basegraph.Graph[E], o *oracle, u, v int) ([]int, error) {
	res, err := bfs.BFS(g, u)
	if err != nil {
		return nil, err
	}
	vs, err := res.PathTo(v)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(vs)-1)
	for i := 1; i < len(vs); i++ {
		ids = append(ids, o.ids[key(vs[i-1], vs[i])])
	}
	return ids, nil
}

// componentIDs returns the sorted edge ids of the component of v.
func componentIDs[E any](g *basegraph.Graph[E], o *oracle, v int) []int {
	res, _ := bfs.BFS(g, v)
	var ids []int
	for x, p := range res.Parent {
		ids = append(ids, o.ids[key(x, p)])
	}
	slices.Sort(ids)
	return ids
}

// coverAgg keeps the minimum of a counter over path edges with a lazy add
// pending for the path edges of the children.
type coverAgg struct {
	pathMin int
	lazy    int
}

const noPath = math.MaxInt / 2

func onPath[A any](a, b, out toptree.Cluster[A]) (bool, bool) {
	switch {
	case toptree.IsPoint(out):
		return false, false
	case !toptree.IsPoint(a) && sameEnds(out, a):
		return true, false
	case !toptree.IsPoint(b) && sameEnds(out, b):
		return false, true
	}
	return true, true
}

func coverFuncs() toptree.ClusterFuncs[*int, coverAgg] {
	return toptree.ClusterFuncs[*int, coverAgg]{
		Create: func(c toptree.Cluster[coverAgg], e *int) {
			*c.Data() = coverAgg{pathMin: *e}
		},
		Destroy: func(c toptree.Cluster[coverAgg], e *int) {
			*e = c.Data().pathMin
		},
		Join: func(a, b, out toptree.Cluster[coverAgg]) {
			pa, pb := onPath(a, b, out)
			m := noPath
			if pa {
				m = min(m, a.Data().pathMin)
			}
			if pb {
				m = min(m, b.Data().pathMin)
			}
			*out.Data() = coverAgg{pathMin: m}
		},
		Split: func(a, b, joined toptree.Cluster[coverAgg]) {
			lazy := joined.Data().lazy
			if lazy == 0 {
				return
			}
			pa, pb := onPath(a, b, joined)
			for _, c := range []struct {
				on bool
				cl toptree.Cluster[coverAgg]
			}{{pa, a}, {pb, b}} {
				if c.on {
					c.cl.Data().pathMin += lazy
					c.cl.Data().lazy += lazy
				}
			}
		},
	}
}

// addOnPath adds delta to every edge of the exposed path.
func addOnPath(c toptree.Cluster[coverAgg], delta int) {
	c.Data().pathMin += delta
	c.Data().lazy += delta
}
