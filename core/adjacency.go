// File: adjacency.go
// Role: Adjacency queries — the read contract the traversal and path
//       engines are built on.
//
// Determinism:
//   - Neighbors(n) returns live outgoing edges in insertion order; this is
//     the tie-break order every traversal and path enumeration inherits.
package core

// Neighbors returns the live outgoing edges of node n, in edge insertion
// order, as (edge, target, weight) arcs. Parallel edges appear once per
// edge index; self-loops appear once.
//
// The returned slice is freshly allocated and safe to retain; it does not
// alias the store's adjacency.
//
// Returns ErrUnknownNode if n is not live.
//
// Complexity: O(deg(n)).
func (g *Graph[K]) Neighbors(n NodeIndex) ([]Arc, error) {
	if !g.HasNode(n) {
		return nil, ErrUnknownNode
	}

	out := g.nodes[n].out
	arcs := make([]Arc, 0, len(out))
	var rec edgeRecord
	for _, e := range out {
		rec = g.edges[e]
		arcs = append(arcs, Arc{Edge: e, To: rec.to, Weight: rec.weight, Weighted: rec.weighted})
	}

	return arcs, nil
}

// OutDegree returns the number of live outgoing edges of node n.
// Returns ErrUnknownNode if n is not live.
//
// Complexity: O(1).
func (g *Graph[K]) OutDegree(n NodeIndex) (int, error) {
	if !g.HasNode(n) {
		return 0, ErrUnknownNode
	}

	return len(g.nodes[n].out), nil
}
