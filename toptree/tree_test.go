package toptree_test

import (
	"io"
	"log/slog"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/setnicka/top-trees/builder"
	"github.com/setnicka/top-trees/toptree"
)

type TreeSuite struct {
	suite.Suite
	pt     *pathTracker
	tree   *toptree.Tree[int, pathAgg]
	o      *oracle
	nextID int
}

func (s *TreeSuite) SetupTest() {
	s.reset(10)
}

func (s *TreeSuite) reset(n int) {
	s.pt = &pathTracker{}
	s.o = newOracle()
	s.nextID = 0
	debug := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.tree = toptree.New(n, s.pt.funcs(), toptree.WithLogger(debug), toptree.WithInvariantChecks())
}

func (s *TreeSuite) link(u, v int) int {
	id := s.nextID
	s.nextID++
	_, err := s.tree.Link(u, v, id)
	s.Require().NoError(err, "link %d-%d", u, v)
	s.o.link(u, v, id)
	return id
}

func (s *TreeSuite) cut(u, v int) int {
	_, _, id, err := s.tree.Cut(u, v)
	s.Require().NoError(err, "cut %d-%d", u, v)
	s.o.cut(u, v)
	return id
}

// assertExpose checks the exposed path and the off-path edges of u-v.
func (s *TreeSuite) assertExpose(u, v int) {
	require := s.Require()
	c, err := s.tree.Expose(u, v)
	require.NoError(err, "expose %d-%d", u, v)
	require.ElementsMatch([]int{u, v}, []int{c.Left(), c.Right()})

	want, err := pathIDs(s.tree.Graph(), s.o, u, v)
	require.NoError(err)
	require.Equal(want, oriented(c, u), "path %d-%d", u, v)
	require.Equal(componentIDs(s.tree.Graph(), s.o, u), sorted(all(c)), "edges around %d-%d", u, v)
}

// assertConsistent checks the roots and the bookkeeping of the tracker.
func (s *TreeSuite) assertConsistent() {
	require := s.Require()
	require.NoError(s.tree.Check())
	require.Empty(s.pt.errs)
	require.Equal(s.tree.EdgeCount(), s.pt.created-s.pt.destroyed, "live edge clusters")

	seen := map[toptree.Cluster[pathAgg]]bool{}
	for v := 0; v < s.tree.Len(); v++ {
		r, err := s.tree.Root(v)
		require.NoError(err)
		if seen[r] {
			continue
		}
		seen[r] = true
		if !r.HasEdges() {
			require.Empty(r.Data().path)
			require.Empty(r.Data().off)
			continue
		}
		require.Equal(componentIDs(s.tree.Graph(), s.o, v), sorted(all(r)), "root of %d", v)
		if !toptree.IsPoint(r) {
			want, err := pathIDs(s.tree.Graph(), s.o, r.Left(), r.Right())
			require.NoError(err)
			require.Equal(want, oriented(r, r.Left()), "root path of %d", v)
		}
	}
	require.Len(s.tree.Roots(), len(seen))
}

func (s *TreeSuite) TestLinkCutPath() {
	require := s.Require()
	for i := 0; i < 5; i++ {
		s.link(i, i+1)
	}
	s.assertConsistent()
	require.Len(s.tree.Roots(), 5)

	s.assertExpose(0, 5)
	s.assertExpose(4, 1)
	s.assertExpose(2, 3)

	ru, rv, id, err := s.tree.Cut(2, 3)
	require.NoError(err)
	s.o.cut(2, 3)
	require.Equal(2, id)
	require.NotEqual(ru, rv)
	require.Len(s.tree.Roots(), 6)

	ok, err := s.tree.InSameComponent(0, 5)
	require.NoError(err)
	require.False(ok)
	s.assertConsistent()
	s.assertExpose(0, 2)
	s.assertExpose(5, 3)
}

func (s *TreeSuite) TestErrors() {
	require := s.Require()
	s.link(0, 1)
	s.link(1, 2)

	_, err := s.tree.Link(0, 99, 0)
	require.ErrorIs(err, toptree.ErrVertexNotFound)
	_, err = s.tree.Link(3, 3, 0)
	require.ErrorIs(err, toptree.ErrSelfLoop)
	_, err = s.tree.Link(0, 2, 0)
	require.ErrorIs(err, toptree.ErrAlreadyConnected)
	_, _, _, err = s.tree.Cut(0, 2)
	require.ErrorIs(err, toptree.ErrNoSuchEdge)
	_, _, _, err = s.tree.Cut(-1, 2)
	require.ErrorIs(err, toptree.ErrVertexNotFound)
	_, err = s.tree.Expose(1, 1)
	require.ErrorIs(err, toptree.ErrSameVertex)
	_, err = s.tree.Expose(0, 9)
	require.ErrorIs(err, toptree.ErrDisconnected)
	_, err = s.tree.Root(10)
	require.ErrorIs(err, toptree.ErrVertexNotFound)
	_, err = s.tree.Degree(-3)
	require.ErrorIs(err, toptree.ErrVertexNotFound)

	// Failed operations leave the forest untouched.
	s.assertConsistent()
}

func (s *TreeSuite) TestHighDegreeStar() {
	require := s.Require()
	f, err := builder.BuildForest(nil, builder.Star(9))
	require.NoError(err)
	s.reset(f.N)
	for _, e := range f.Edges {
		s.link(e.U, e.V)
		s.assertConsistent()
	}

	deg, err := s.tree.Degree(0)
	require.NoError(err)
	require.Equal(8, deg)
	nbs, err := s.tree.Neighbours(0)
	require.NoError(err)
	slices.Sort(nbs)
	require.Equal([]int{1, 2, 3, 4, 5, 6, 7, 8}, nbs)

	hub, err := s.tree.Graph().Vertex(0)
	require.NoError(err)
	require.True(hub.IsSplit())

	for leaf := 1; leaf < 9; leaf++ {
		s.assertExpose(0, leaf)
	}
	s.assertExpose(3, 7)
	s.assertExpose(8, 1)

	for leaf := 1; leaf < 9; leaf++ {
		s.cut(0, leaf)
		s.assertConsistent()
	}
	require.False(hub.IsSplit())
	require.Len(s.tree.Roots(), 9)
}

func (s *TreeSuite) TestFromEdgesAndAddVertex() {
	require := s.Require()
	f, err := builder.BuildForest(nil, builder.Caterpillar(4, 3))
	require.NoError(err)

	pt := &pathTracker{}
	edges := make([]toptree.Edge[int], len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = toptree.Edge[int]{U: e.U, V: e.V, Payload: i}
	}
	tree, err := toptree.FromEdges(f.N, edges, pt.funcs())
	require.NoError(err)
	require.Equal(len(f.Edges), tree.EdgeCount())
	require.Len(tree.Roots(), 1)
	require.NoError(tree.Check())

	v := tree.AddVertex()
	require.Equal(f.N, v)
	require.Len(tree.Roots(), 2)
	_, err = tree.Link(v, 0, len(edges))
	require.NoError(err)
	require.NoError(tree.Check())
	require.Empty(pt.errs)

	_, err = toptree.FromEdges(3, []toptree.Edge[int]{{U: 0, V: 1}, {U: 1, V: 0}}, pt.funcs())
	require.ErrorIs(err, toptree.ErrAlreadyConnected)
}

func (s *TreeSuite) TestFromEdgesBuildsBottomUp() {
	require := s.Require()
	forests := map[string][]builder.Constructor{
		"star":        {builder.Star(9)},
		"caterpillar": {builder.Caterpillar(5, 4)},
		"mixed":       {builder.Path(5), builder.Star(6), builder.RandomTree(30)},
	}
	for name, cons := range forests {
		f, err := builder.BuildForest([]builder.BuilderOption{builder.WithSeed(11)}, cons...)
		require.NoError(err, name)

		s.pt = &pathTracker{}
		s.o = newOracle()
		edges := make([]toptree.Edge[int], len(f.Edges))
		for i, e := range f.Edges {
			edges[i] = toptree.Edge[int]{U: e.U, V: e.V, Payload: i}
			s.o.link(e.U, e.V, i)
		}
		s.nextID = len(edges)
		s.tree, err = toptree.FromEdges(f.N, edges, s.pt.funcs(), toptree.WithInvariantChecks())
		require.NoError(err, name)
		require.Equal(len(edges), s.tree.EdgeCount(), name)
		s.assertConsistent()

		rng := rand.New(rand.NewSource(int64(len(edges))))
		for i := 0; i < 20; i++ {
			e := f.Edges[rng.Intn(len(f.Edges))]
			w := rng.Intn(f.N)
			if same, err := s.tree.InSameComponent(e.U, w); err == nil && same && e.U != w {
				s.assertExpose(e.U, w)
			}
		}

		// the bulk-built chains must survive ordinary updates
		for _, i := range rng.Perm(len(f.Edges)) {
			s.cut(f.Edges[i].U, f.Edges[i].V)
		}
		s.assertConsistent()
		require.Len(s.tree.Roots(), f.N, name)
		for _, e := range f.Edges {
			s.link(e.U, e.V)
		}
		s.assertConsistent()
	}

	for name, tc := range map[string]struct {
		edges []toptree.Edge[int]
		want  error
	}{
		"missing vertex": {[]toptree.Edge[int]{{U: 0, V: 1}, {U: 1, V: 4}}, toptree.ErrVertexNotFound},
		"loop":           {[]toptree.Edge[int]{{U: 2, V: 2}}, toptree.ErrSelfLoop},
		"cycle":          {[]toptree.Edge[int]{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}, toptree.ErrAlreadyConnected},
	} {
		_, err := toptree.FromEdges(3, tc.edges, s.pt.funcs())
		require.ErrorIs(err, tc.want, name)
	}
	_, err := toptree.FromEdges(3, []toptree.Edge[int]{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}, s.pt.funcs())
	require.ErrorContains(err, "edge 2 (2-0)")
}

func (s *TreeSuite) TestSplitRoot() {
	require := s.Require()
	s.link(0, 1)
	s.link(1, 2)
	s.link(2, 3)
	s.link(1, 4)

	c, err := s.tree.Expose(0, 3)
	require.NoError(err)
	left, right, err := s.tree.SplitRoot(c)
	require.NoError(err)
	got := sorted(all(left), all(right))
	require.Equal([]int{0, 1, 2, 3}, got)

	_, _, err = s.tree.SplitRoot(c)
	require.ErrorIs(err, toptree.ErrNotSplittable)
	root, err := s.tree.Root(0)
	require.NoError(err)
	_, _, err = s.tree.SplitRoot(root)
	require.ErrorIs(err, toptree.ErrNotSplittable)

	s.tree.Restore()
	s.assertConsistent()
}

func (s *TreeSuite) TestLinkThenCutRestores() {
	require := s.Require()
	s.link(0, 1)
	s.link(1, 2)
	s.link(1, 3)
	s.link(1, 4)
	before, err := s.tree.Neighbours(1)
	require.NoError(err)
	roots := len(s.tree.Roots())

	s.link(1, 5)
	same, err := s.tree.InSameComponent(0, 5)
	require.NoError(err)
	require.True(same)
	s.assertConsistent()

	s.cut(1, 5)
	same, err = s.tree.InSameComponent(0, 5)
	require.NoError(err)
	require.False(same)
	after, err := s.tree.Neighbours(1)
	require.NoError(err)
	require.ElementsMatch(before, after)
	require.Len(s.tree.Roots(), roots)
	s.assertConsistent()
}

// TestRandomOperations drives the tree with a random mix of links and cuts
// biased towards a few hubs and compares everything with bfs.
func (s *TreeSuite) TestRandomOperations() {
	const n = 30
	s.reset(n)
	rng := rand.New(rand.NewSource(7))
	var edges [][2]int

	pick := func() int {
		if rng.Intn(2) == 0 {
			return rng.Intn(3)
		}
		return rng.Intn(n)
	}

	for step := 0; step < 400; step++ {
		u, v := pick(), pick()
		same, err := s.tree.InSameComponent(u, v)
		s.Require().NoError(err)
		switch {
		case u != v && !same && rng.Intn(3) > 0:
			s.link(u, v)
			edges = append(edges, [2]int{u, v})
		case len(edges) > 0:
			i := rng.Intn(len(edges))
			e := edges[i]
			edges = slices.Delete(edges, i, i+1)
			s.cut(e[0], e[1])
		}

		if step%8 == 0 {
			s.assertConsistent()
		}
		same, err = s.tree.InSameComponent(u, v)
		s.Require().NoError(err)
		if u != v && same {
			s.assertExpose(u, v)
		}
	}
	s.assertConsistent()
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeSuite))
}

// TestLazyCover adds one along random paths through Expose and checks the
// count of every edge against a brute-force walk.
func TestLazyCover(t *testing.T) {
	require := require.New(t)
	f, err := builder.BuildForest(
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.Caterpillar(5, 4),
		builder.RandomTree(12),
	)
	require.NoError(err)

	tree := toptree.New(f.N, coverFuncs())
	o := newOracle()
	counts := make([]*int, len(f.Edges))
	want := make(map[[2]int]int)
	for i, e := range f.Edges {
		counts[i] = new(int)
		_, err := tree.Link(e.U, e.V, counts[i])
		require.NoError(err)
		o.link(e.U, e.V, i)
	}

	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 150; round++ {
		u, v := rng.Intn(f.N), rng.Intn(f.N)
		same, err := tree.InSameComponent(u, v)
		require.NoError(err)
		if u == v || !same {
			continue
		}
		c, err := tree.Expose(u, v)
		require.NoError(err)
		addOnPath(c, 1)

		ids, err := pathIDs(tree.Graph(), o, u, v)
		require.NoError(err)
		for _, id := range ids {
			e := f.Edges[id]
			want[key(e.U, e.V)]++
		}

		if round%25 == 0 {
			for _, e := range f.Edges {
				c, err := tree.Expose(e.U, e.V)
				require.NoError(err)
				require.Equal(want[key(e.U, e.V)], c.Data().pathMin, "edge %d-%d", e.U, e.V)
			}
		}
	}

	for i, e := range f.Edges {
		_, _, p, err := tree.Cut(e.U, e.V)
		require.NoError(err)
		require.Same(counts[i], p)
		require.Equal(want[key(e.U, e.V)], *p, "edge %d-%d", e.U, e.V)
	}
	require.NoError(tree.Check())
}
