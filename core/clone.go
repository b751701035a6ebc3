// File: clone.go
// Role: Maintenance — Clear and Clone.
package core

// Clear drops every node and edge and resets the index sequence: the next
// AddNode returns index 0 again. Retained indices from before Clear must be
// discarded by the caller.
//
// Complexity: O(1) — the old arenas are released to the garbage collector.
func (g *Graph[K]) Clear() {
	g.nodes = nil
	g.edges = nil
	g.index = make(map[K]NodeIndex)
	g.liveNodes = 0
	g.liveEdges = 0
}

// Clone returns a deep copy of the Graph. All indices — including
// tombstoned slots — are preserved, so handles obtained from the original
// resolve identically on the clone.
//
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	c := &Graph[K]{
		nodes:     make([]nodeRecord[K], len(g.nodes)),
		edges:     make([]edgeRecord, len(g.edges)),
		index:     make(map[K]NodeIndex, len(g.index)),
		liveNodes: g.liveNodes,
		liveEdges: g.liveEdges,
	}
	copy(c.edges, g.edges)
	for n, rec := range g.nodes {
		c.nodes[n] = rec
		if rec.out != nil {
			c.nodes[n].out = append([]EdgeIndex(nil), rec.out...)
		}
	}
	for id, n := range g.index {
		c.index[id] = n
	}

	return c
}
