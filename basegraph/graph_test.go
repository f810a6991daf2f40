package basegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setnicka/top-trees/basegraph"
)

func TestGraph_VertexLookup(t *testing.T) {
	g := basegraph.New[string](3)
	require.Equal(t, 3, g.Len())

	v, err := g.Vertex(2)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Index)
	assert.Nil(t, v.Superior())
	assert.Same(t, v, v.Logical())
	assert.Same(t, v, v.Representative())

	_, err = g.Vertex(3)
	assert.ErrorIs(t, err, basegraph.ErrVertexNotFound)
	_, err = g.Vertex(-1)
	assert.ErrorIs(t, err, basegraph.ErrVertexNotFound)

	w := g.AddVertex()
	assert.Equal(t, 3, w.Index)
	assert.Equal(t, 4, g.Len())
}

func TestGraph_AttachDetach(t *testing.T) {
	g := basegraph.New[string](3)
	vs := g.Vertices()

	e := basegraph.NewEdge(vs[0], vs[1], "a")
	require.NoError(t, g.Attach(e))
	assert.True(t, e.Attached())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, vs[0].Degree())
	assert.Same(t, vs[1], e.Other(vs[0]))
	assert.Nil(t, e.Other(vs[2]))
	assert.Same(t, e, g.FindEdge(vs[1], vs[0]))
	assert.Nil(t, g.FindEdge(vs[1], vs[2]))

	assert.ErrorIs(t, g.Attach(e), basegraph.ErrEdgeAttached)

	require.NoError(t, g.Detach(e))
	assert.False(t, e.Attached())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, vs[0].Degree())
	assert.ErrorIs(t, g.Detach(e), basegraph.ErrEdgeDetached)
}

func TestGraph_AttachRejects(t *testing.T) {
	g := basegraph.New[int](5)
	vs := g.Vertices()

	assert.ErrorIs(t, g.Attach(basegraph.NewEdge(vs[0], vs[0], 0)), basegraph.ErrSelfLoop)

	for i := 1; i <= basegraph.MaxDegree; i++ {
		require.NoError(t, g.Attach(basegraph.NewEdge(vs[0], vs[i], i)))
	}
	err := g.Attach(basegraph.NewEdge(vs[0], vs[4], 4))
	assert.ErrorIs(t, err, basegraph.ErrDegreeExceeded)

	s := g.NewSubvertex(vs[4], nil)
	assert.ErrorIs(t, g.Attach(basegraph.NewEdge(s, vs[4], 0)), basegraph.ErrSelfLoop)
}

func TestGraph_SubvertexChain(t *testing.T) {
	g := basegraph.New[string](4)
	vs := g.Vertices()
	v := vs[0]

	a := g.NewSubvertex(v, nil)
	b := g.NewSubvertex(v, nil)
	c := g.NewSubvertex(v, a)
	assert.True(t, v.IsSplit())
	assert.Equal(t, []*basegraph.Vertex[string]{a, c, b}, v.Subvertices())
	assert.Same(t, a, v.FirstSubvertex())
	assert.Same(t, a, v.Representative())
	assert.Same(t, v, c.Superior())
	assert.Same(t, v, c.Logical())
	assert.Equal(t, v.Index, c.Index)

	ab := g.NewChainEdge(a, b)
	require.NoError(t, g.Attach(ab))
	assert.True(t, ab.Synthetic)
	assert.Equal(t, []*basegraph.Edge[string]{ab}, v.ChainEdges())
	assert.Equal(t, 0, v.Degree(), "chain edges are not mirrored")
	assert.Equal(t, 0, g.EdgeCount())

	e := basegraph.NewEdge(a, vs[1], "x")
	require.NoError(t, g.Attach(e))
	assert.Equal(t, 1, v.Degree())
	assert.Same(t, e, g.FindEdge(vs[1], v))
	assert.Same(t, vs[1], e.OtherLogical(v))
	assert.Equal(t, []*basegraph.Vertex[string]{vs[1]}, g.Neighbours(v))
	assert.Equal(t, []*basegraph.Vertex[string]{v}, g.Neighbours(vs[1]))

	require.NoError(t, g.Detach(e))
	assert.Equal(t, 0, v.Degree())

	g.ForgetChainEdge(ab)
	assert.Empty(t, v.ChainEdges())

	g.RemoveSubvertex(c)
	assert.Equal(t, []*basegraph.Vertex[string]{a, b}, v.Subvertices())

	g.ClearSubvertices(v)
	assert.False(t, v.IsSplit())
	assert.Same(t, v, v.Representative())
}

func TestVertex_EdgesSnapshot(t *testing.T) {
	g := basegraph.New[int](3)
	vs := g.Vertices()
	e1 := basegraph.NewEdge(vs[0], vs[1], 1)
	e2 := basegraph.NewEdge(vs[0], vs[2], 2)
	require.NoError(t, g.Attach(e1))
	require.NoError(t, g.Attach(e2))

	snap := vs[0].Edges()
	for _, e := range snap {
		require.NoError(t, g.Detach(e))
	}
	assert.Equal(t, []*basegraph.Edge[int]{e1, e2}, snap)
	assert.Empty(t, vs[0].Edges())
}
