// File: edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns live indices in insertion (index) order.
//   - AddEdge appends to the source adjacency, preserving insertion order.
package core

// AddEdge appends a directed edge from → to and records it in from's
// adjacency. Both endpoints must be live, otherwise ErrUnknownNode is
// returned and nothing is mutated.
//
// Duplicate (from, to) pairs are allowed and produce distinct edge indices —
// a deliberate multigraph policy, not an error. Self-loops are allowed.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to NodeIndex, opts ...EdgeOption) (EdgeIndex, error) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return 0, ErrUnknownNode
	}

	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	e := EdgeIndex(len(g.edges))
	g.edges = append(g.edges, edgeRecord{
		from:     from,
		to:       to,
		weight:   cfg.weight,
		weighted: cfg.weighted,
		live:     true,
	})
	g.nodes[from].out = append(g.nodes[from].out, e)
	g.liveEdges++

	return e, nil
}

// GetEdge returns a value snapshot of the live edge at index e,
// or ErrUnknownEdge if e is not live.
//
// Complexity: O(1).
func (g *Graph[K]) GetEdge(e EdgeIndex) (Edge, error) {
	if !g.HasEdge(e) {
		return Edge{}, ErrUnknownEdge
	}
	rec := g.edges[e]

	return Edge{From: rec.from, To: rec.to, Weight: rec.weight, Weighted: rec.weighted}, nil
}

// HasEdge reports whether e addresses a live edge.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(e EdgeIndex) bool {
	return e >= 0 && int(e) < len(g.edges) && g.edges[e].live
}

// RemoveEdge tombstones the edge at e and removes it from the source node's
// adjacency. Returns ErrUnknownEdge if e is not live.
//
// Complexity: O(deg(from)) for the adjacency splice.
func (g *Graph[K]) RemoveEdge(e EdgeIndex) error {
	if !g.HasEdge(e) {
		return ErrUnknownEdge
	}

	rec := &g.edges[e]
	rec.live = false
	g.unlink(rec.from, e)
	g.liveEdges--

	return nil
}

// Edges returns the indices of all live edges in insertion order.
//
// Complexity: O(E) over the arena (including tombstones).
func (g *Graph[K]) Edges() []EdgeIndex {
	out := make([]EdgeIndex, 0, g.liveEdges)
	for e := range g.edges {
		if g.edges[e].live {
			out = append(out, EdgeIndex(e))
		}
	}

	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph[K]) EdgeCount() int { return g.liveEdges }

// unlink splices edge e out of node n's adjacency slice, preserving the
// insertion order of the remaining edges. Caller guarantees n is in range.
func (g *Graph[K]) unlink(n NodeIndex, e EdgeIndex) {
	out := g.nodes[n].out
	for i := range out {
		if out[i] == e {
			g.nodes[n].out = append(out[:i], out[i+1:]...)

			return
		}
	}
}
