package bfs_test

import (
	"fmt"

	"github.com/setnicka/top-trees/basegraph"
	"github.com/setnicka/top-trees/bfs"
)

// ExampleBFS finds the fewest-hop path in a small tree.
func ExampleBFS() {
	g := basegraph.New[string](6)
	vs := g.Vertices()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 4}, {4, 5}} {
		_ = g.Attach(basegraph.NewEdge(vs[e[0]], vs[e[1]], ""))
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(5)
	fmt.Println(res.Order)
	fmt.Println(path)
	// Output:
	// [0 1 2 4 3 5]
	// [0 1 4 5]
}

// ExampleComponents lists the connected components of a forest.
func ExampleComponents() {
	g := basegraph.New[string](5)
	vs := g.Vertices()
	_ = g.Attach(basegraph.NewEdge(vs[0], vs[3], ""))
	_ = g.Attach(basegraph.NewEdge(vs[1], vs[2], ""))

	comps, _ := bfs.Components(g)
	fmt.Println(comps)
	// Output:
	// [[0 3] [1 2] [4]]
}
