package toptree_test

import (
	"math/rand"
	"testing"

	"github.com/setnicka/top-trees/builder"
	"github.com/setnicka/top-trees/toptree"
)

func benchForest(b *testing.B, n int) (*toptree.Tree[int, length], *builder.Forest) {
	b.Helper()
	f, err := builder.BuildForest([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomTree(n))
	if err != nil {
		b.Fatal(err)
	}
	edges := make([]toptree.Edge[int], len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = toptree.Edge[int]{U: e.U, V: e.V, Payload: int(e.Weight)}
	}
	tree, err := toptree.FromEdges(f.N, edges, lengthFuncs())
	if err != nil {
		b.Fatal(err)
	}
	return tree, f
}

func BenchmarkCutLink(b *testing.B) {
	tree, f := benchForest(b, 2000)
	rng := rand.New(rand.NewSource(2))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := f.Edges[rng.Intn(len(f.Edges))]
		if _, _, _, err := tree.Cut(e.U, e.V); err != nil {
			b.Fatal(err)
		}
		if _, err := tree.Link(e.U, e.V, int(e.Weight)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpose(b *testing.B) {
	tree, f := benchForest(b, 2000)
	rng := rand.New(rand.NewSource(3))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u, v := rng.Intn(f.N), rng.Intn(f.N)
		if u == v {
			continue
		}
		if _, err := tree.Expose(u, v); err != nil {
			b.Fatal(err)
		}
	}
	tree.Restore()
}
