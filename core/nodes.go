// File: nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns live indices in insertion (index) order.
//   - RemoveNode cascades incident edges in edge-index order.
package core

// AddNode inserts a node with the given identity, or returns the index of
// the existing live node with that identity (idempotent insert-or-get).
//
// A node removed and re-added under the same identity receives a fresh
// index; the old index stays tombstoned forever.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddNode(id K) NodeIndex {
	if n, ok := g.index[id]; ok {
		return n
	}

	n := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, nodeRecord[K]{id: id, live: true})
	g.index[id] = n
	g.liveNodes++

	return n
}

// GetNode resolves an identity to its live node index.
// Returns (0, false) when the identity is absent or tombstoned.
//
// Complexity: O(1).
func (g *Graph[K]) GetNode(id K) (NodeIndex, bool) {
	n, ok := g.index[id]

	return n, ok
}

// NodeID is the reverse lookup: the identity stored at index n.
// Returns ErrUnknownNode if n is not live.
//
// Complexity: O(1).
func (g *Graph[K]) NodeID(n NodeIndex) (K, error) {
	if !g.HasNode(n) {
		var zero K

		return zero, ErrUnknownNode
	}

	return g.nodes[n].id, nil
}

// HasNode reports whether n addresses a live node.
// Out-of-range and tombstoned indices both report false.
//
// Complexity: O(1).
func (g *Graph[K]) HasNode(n NodeIndex) bool {
	return n >= 0 && int(n) < len(g.nodes) && g.nodes[n].live
}

// RemoveNode tombstones the node at n and cascades: every live edge whose
// endpoint is n is tombstoned and unlinked from its source's adjacency.
// The index n is never reused. A second call for the same index returns
// ErrUnknownNode, since the node is no longer live.
//
// The cascade is all-or-nothing: validation happens before any mutation.
//
// Complexity: O(E) — the edge arena is scanned once, matching the fact that
// incoming edges are not indexed separately.
func (g *Graph[K]) RemoveNode(n NodeIndex) error {
	if !g.HasNode(n) {
		return ErrUnknownNode
	}

	// Cascade: tombstone every incident edge and unlink it from its source.
	var e EdgeIndex
	for e = 0; int(e) < len(g.edges); e++ {
		rec := &g.edges[e]
		if !rec.live || (rec.from != n && rec.to != n) {
			continue
		}
		rec.live = false
		g.liveEdges--
		if rec.from != n {
			g.unlink(rec.from, e)
		}
	}

	delete(g.index, g.nodes[n].id)
	g.nodes[n].live = false
	g.nodes[n].out = nil
	g.liveNodes--

	return nil
}

// Nodes returns the indices of all live nodes in insertion order.
//
// Complexity: O(V) over the arena (including tombstones).
func (g *Graph[K]) Nodes() []NodeIndex {
	out := make([]NodeIndex, 0, g.liveNodes)
	for n := range g.nodes {
		if g.nodes[n].live {
			out = append(out, NodeIndex(n))
		}
	}

	return out
}

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (g *Graph[K]) NodeCount() int { return g.liveNodes }

// FirstNode returns the earliest-inserted live node, or false when the
// graph holds no live nodes.
//
// Complexity: O(V) worst case (tombstones are skipped).
func (g *Graph[K]) FirstNode() (NodeIndex, bool) {
	for n := range g.nodes {
		if g.nodes[n].live {
			return NodeIndex(n), true
		}
	}

	return 0, false
}

// LastNode returns the latest-inserted live node, or false when the graph
// holds no live nodes.
//
// Complexity: O(V) worst case.
func (g *Graph[K]) LastNode() (NodeIndex, bool) {
	for n := len(g.nodes) - 1; n >= 0; n-- {
		if g.nodes[n].live {
			return NodeIndex(n), true
		}
	}

	return 0, false
}
