package trace

import "github.com/setnicka/top-trees/toptree"

// Sum is the aggregate replayed traces run with: the weight of the cluster
// path and of every edge in the cluster.
type Sum struct {
	Path  int64
	Total int64
}

func sameEnds(x, y toptree.Cluster[Sum]) bool {
	return (x.Left() == y.Left() && x.Right() == y.Right()) ||
		(x.Left() == y.Right() && x.Right() == y.Left())
}

// SumFuncs returns the cluster functions maintaining Sum.
func SumFuncs() toptree.ClusterFuncs[int64, Sum] {
	return toptree.ClusterFuncs[int64, Sum]{
		Create: func(c toptree.Cluster[Sum], w int64) {
			*c.Data() = Sum{Path: w, Total: w}
		},
		Join: func(a, b, out toptree.Cluster[Sum]) {
			d := out.Data()
			d.Total = a.Data().Total + b.Data().Total
			switch {
			case toptree.IsPoint(out):
				d.Path = 0
			case !toptree.IsPoint(a) && sameEnds(a, out):
				d.Path = a.Data().Path
			case !toptree.IsPoint(b) && sameEnds(b, out):
				d.Path = b.Data().Path
			default:
				d.Path = a.Data().Path + b.Data().Path
			}
		},
	}
}
