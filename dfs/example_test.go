package dfs_test

import (
	"fmt"

	"github.com/setnicka/top-trees/basegraph"
	"github.com/setnicka/top-trees/dfs"
)

func ExampleFindCycle() {
	g := basegraph.New[string](3)
	vs := g.Vertices()
	g.Attach(basegraph.NewEdge(vs[0], vs[1], "a"))
	g.Attach(basegraph.NewEdge(vs[1], vs[2], "b"))
	fmt.Println(dfs.FindCycle(g))

	g.Attach(basegraph.NewEdge(vs[2], vs[0], "c"))
	fmt.Println(dfs.FindCycle(g))
	// Output:
	// []
	// [0 1 2 0]
}
