package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/ixgraph/core"
	"github.com/katalvlaran/ixgraph/traverse"
)

// ExampleWalker builds the diamond A→B, A→C, B→D, C→D and walks it both
// ways. Depth-first follows the first-inserted edge to the bottom before
// backtracking; breadth-first drains each layer first.
func ExampleWalker() {
	g := core.NewGraph[string]()
	ix := map[string]core.NodeIndex{}
	for _, id := range []string{"A", "B", "C", "D"} {
		ix[id] = g.AddNode(id)
	}
	for _, p := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		if _, err := g.AddEdge(ix[p[0]], ix[p[1]]); err != nil {
			fmt.Println("AddEdge:", err)

			return
		}
	}

	for _, order := range []traverse.Order{traverse.DepthFirst, traverse.BreadthFirst} {
		w, err := traverse.New(g, ix["A"], order)
		if err != nil {
			fmt.Println("New:", err)

			return
		}
		fmt.Printf("%s:", order)
		for w.Next() {
			id, _ := g.NodeID(w.Node())
			fmt.Printf(" %s", id)
		}
		fmt.Println()
	}

	// Output:
	// DepthFirst: A B D C
	// BreadthFirst: A B C D
}

// ExampleWalker_maxDepth bounds a breadth-first walk over a chain.
func ExampleWalker_maxDepth() {
	g := core.NewGraph[int]()
	prev := g.AddNode(0)
	for i := 1; i < 6; i++ {
		next := g.AddNode(i)
		if _, err := g.AddEdge(prev, next); err != nil {
			fmt.Println("AddEdge:", err)

			return
		}
		prev = next
	}

	visited, err := traverse.Collect(g, 0, traverse.BreadthFirst, traverse.WithMaxDepth(2))
	if err != nil {
		fmt.Println("Collect:", err)

		return
	}
	for _, n := range visited {
		id, _ := g.NodeID(n)
		fmt.Println(id)
	}

	// Output:
	// 0
	// 1
	// 2
}

// ExampleTopologicalSort orders build steps so prerequisites come first.
func ExampleTopologicalSort() {
	g := core.NewGraph[string]()
	ix := map[string]core.NodeIndex{}
	for _, id := range []string{"compile", "test", "package", "deploy"} {
		ix[id] = g.AddNode(id)
	}
	deps := [][2]string{
		{"compile", "test"},
		{"compile", "package"},
		{"test", "deploy"},
		{"package", "deploy"},
	}
	for _, d := range deps {
		if _, err := g.AddEdge(ix[d[0]], ix[d[1]]); err != nil {
			fmt.Println("AddEdge:", err)

			return
		}
	}

	order, err := traverse.TopologicalSort(g)
	if err != nil {
		fmt.Println("TopologicalSort:", err)

		return
	}
	for _, n := range order {
		id, _ := g.NodeID(n)
		fmt.Println(id)
	}

	// Output:
	// compile
	// package
	// test
	// deploy
}
