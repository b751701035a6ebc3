package core_test

import (
	"fmt"

	"github.com/katalvlaran/ixgraph/core"
)

// ExampleGraph_AddNode shows the idempotent insert-or-get contract:
// identities map to stable indices, and re-inserting is a no-op.
func ExampleGraph_AddNode() {
	g := core.NewGraph[string]()
	a := g.AddNode("alpha")
	b := g.AddNode("beta")
	again := g.AddNode("alpha")

	fmt.Println(a, b, again, g.NodeCount())
	// Output:
	// 0 1 0 2
}

// ExampleGraph_Neighbors builds a small fan-out and walks the adjacency in
// insertion order, including a parallel edge.
func ExampleGraph_Neighbors() {
	g := core.NewGraph[string]()
	hub := g.AddNode("hub")
	east := g.AddNode("east")
	west := g.AddNode("west")

	g.AddEdge(hub, east, core.WithWeight(4))
	g.AddEdge(hub, west)
	g.AddEdge(hub, east) // parallel edge, distinct index

	arcs, _ := g.Neighbors(hub)
	for _, arc := range arcs {
		id, _ := g.NodeID(arc.To)
		fmt.Printf("e%d → %s (weighted=%v, w=%d)\n", arc.Edge, id, arc.Weighted, arc.Weight)
	}
	// Output:
	// e0 → east (weighted=true, w=4)
	// e1 → west (weighted=false, w=0)
	// e2 → east (weighted=false, w=0)
}

// ExampleGraph_RemoveNode demonstrates cascade removal: every edge touching
// the removed node is tombstoned, and its index is never reused.
func ExampleGraph_RemoveNode() {
	g := core.NewGraph[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(a, c)

	_ = g.RemoveNode(b)

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	fmt.Println("fresh index for B:", g.AddNode("B"))
	// Output:
	// nodes: 2 edges: 1
	// fresh index for B: 3
}
