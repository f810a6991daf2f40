package doubleconn

import (
	"math"

	"github.com/setnicka/top-trees/toptree"
)

// uncovered is the path minimum of a cluster without a path.
const uncovered = math.MaxInt32

// cover is the aggregate of a cluster: the minimum cover counter over its
// path edges, with lazy already included, and an add still to be pushed
// into the path edges of its operands.
type cover struct {
	pathMin int
	lazy    int
}

func (c *cover) add(delta int) {
	c.pathMin += delta
	c.lazy += delta
}

func ends(c toptree.Cluster[cover]) (int, int) {
	if c.Left() < c.Right() {
		return c.Left(), c.Right()
	}
	return c.Right(), c.Left()
}

// onPath reports which operands of a join lie on the path of out.
func onPath(a, b, out toptree.Cluster[cover]) (bool, bool) {
	if toptree.IsPoint(out) {
		return false, false
	}
	ol, or := ends(out)
	if al, ar := ends(a); !toptree.IsPoint(a) && al == ol && ar == or {
		return true, false
	}
	if bl, br := ends(b); !toptree.IsPoint(b) && bl == ol && br == or {
		return false, true
	}
	return true, true
}

func coverFuncs() toptree.ClusterFuncs[*edge, cover] {
	return toptree.ClusterFuncs[*edge, cover]{
		Create: func(c toptree.Cluster[cover], e *edge) {
			*c.Data() = cover{pathMin: e.cover}
		},
		Destroy: func(c toptree.Cluster[cover], e *edge) {
			e.cover = c.Data().pathMin
		},
		Join: func(a, b, out toptree.Cluster[cover]) {
			pa, pb := onPath(a, b, out)
			m := uncovered
			if pa {
				m = min(m, a.Data().pathMin)
			}
			if pb {
				m = min(m, b.Data().pathMin)
			}
			*out.Data() = cover{pathMin: m}
		},
		Split: func(a, b, joined toptree.Cluster[cover]) {
			lazy := joined.Data().lazy
			if lazy == 0 {
				return
			}
			pa, pb := onPath(a, b, joined)
			if pa {
				a.Data().add(lazy)
			}
			if pb {
				b.Data().add(lazy)
			}
			joined.Data().lazy = 0
		},
	}
}
