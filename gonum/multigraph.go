// File: multigraph.go
// Role: Read-only gonum view over a core.Graph.
package gonum

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/katalvlaran/ixgraph/core"
)

// node is a graph.Node addressing a live container node.
type node int64

// ID implements graph.Node.
func (n node) ID() int64 { return int64(n) }

// line is a graph.WeightedLine over one directed edge of the container.
type line struct {
	f, t graph.Node
	id   int64
	w    float64
}

// From implements graph.Line.
func (l line) From() graph.Node { return l.f }

// To implements graph.Line.
func (l line) To() graph.Node { return l.t }

// ReversedLine implements graph.Line.
func (l line) ReversedLine() graph.Line {
	l.f, l.t = l.t, l.f

	return l
}

// ID implements graph.Line.
func (l line) ID() int64 { return l.id }

// Weight implements graph.WeightedLine. Unweighted edges weigh 0.
func (l line) Weight() float64 { return l.w }

// edge is the aggregate graph.Edge between a node pair, independent of
// how many parallel lines connect them.
type edge struct {
	f, t graph.Node
}

// From implements graph.Edge.
func (e edge) From() graph.Node { return e.f }

// To implements graph.Edge.
func (e edge) To() graph.Node { return e.t }

// ReversedEdge implements graph.Edge.
func (e edge) ReversedEdge() graph.Edge {
	e.f, e.t = e.t, e.f

	return e
}

// Multigraph is a read-only gonum view over a *core.Graph. It implements
// graph.DirectedMultigraph and graph.Directed.
type Multigraph[K comparable] struct {
	g *core.Graph[K]
}

// Compile-time interface conformance.
var (
	_ graph.DirectedMultigraph = (*Multigraph[string])(nil)
	_ graph.Directed           = (*Multigraph[string])(nil)
)

// Wrap adapts g for gonum consumers. The view stays live: later
// mutations of g are visible through it.
func Wrap[K comparable](g *core.Graph[K]) *Multigraph[K] {
	return &Multigraph[K]{g: g}
}

// Node returns the node with the given ID, or nil if it is not live.
func (m *Multigraph[K]) Node(id int64) graph.Node {
	if !m.g.HasNode(core.NodeIndex(id)) {
		return nil
	}

	return node(id)
}

// Nodes returns all live nodes in insertion order.
func (m *Multigraph[K]) Nodes() graph.Nodes {
	live := m.g.Nodes()
	if len(live) == 0 {
		return graph.Empty
	}
	out := make([]graph.Node, len(live))
	for i, n := range live {
		out[i] = node(n)
	}

	return iterator.NewOrderedNodes(out)
}

// From returns the distinct direct successors of the node with the given
// ID, in first-edge insertion order.
func (m *Multigraph[K]) From(id int64) graph.Nodes {
	arcs, err := m.g.Neighbors(core.NodeIndex(id))
	if err != nil || len(arcs) == 0 {
		return graph.Empty
	}
	seen := make(map[core.NodeIndex]struct{}, len(arcs))
	var out []graph.Node
	for _, arc := range arcs {
		if _, dup := seen[arc.To]; dup {
			continue
		}
		seen[arc.To] = struct{}{}
		out = append(out, node(arc.To))
	}

	return iterator.NewOrderedNodes(out)
}

// To returns the distinct direct predecessors of the node with the given
// ID, in first-edge insertion order. Costs one pass over the edge arena.
func (m *Multigraph[K]) To(id int64) graph.Nodes {
	if !m.g.HasNode(core.NodeIndex(id)) {
		return graph.Empty
	}
	seen := make(map[core.NodeIndex]struct{})
	var out []graph.Node
	for _, ei := range m.g.Edges() {
		e, err := m.g.GetEdge(ei)
		if err != nil || e.To != core.NodeIndex(id) {
			continue
		}
		if _, dup := seen[e.From]; dup {
			continue
		}
		seen[e.From] = struct{}{}
		out = append(out, node(e.From))
	}
	if len(out) == 0 {
		return graph.Empty
	}

	return iterator.NewOrderedNodes(out)
}

// HasEdgeBetween reports whether any edge connects x and y, ignoring
// direction.
func (m *Multigraph[K]) HasEdgeBetween(xid, yid int64) bool {
	return m.HasEdgeFromTo(xid, yid) || m.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo reports whether at least one edge runs u → v.
func (m *Multigraph[K]) HasEdgeFromTo(uid, vid int64) bool {
	arcs, err := m.g.Neighbors(core.NodeIndex(uid))
	if err != nil {
		return false
	}
	for _, arc := range arcs {
		if arc.To == core.NodeIndex(vid) {
			return true
		}
	}

	return false
}

// Lines returns every edge u → v as graph.Line values in insertion
// order. Parallel edges yield one line each.
func (m *Multigraph[K]) Lines(uid, vid int64) graph.Lines {
	arcs, err := m.g.Neighbors(core.NodeIndex(uid))
	if err != nil {
		return graph.Empty
	}
	var out []graph.Line
	for _, arc := range arcs {
		if arc.To != core.NodeIndex(vid) {
			continue
		}
		var w float64
		if arc.Weighted {
			w = float64(arc.Weight)
		}
		out = append(out, line{f: node(uid), t: node(vid), id: int64(arc.Edge), w: w})
	}
	if len(out) == 0 {
		return graph.Empty
	}

	return iterator.NewOrderedLines(out)
}

// Edge returns the aggregate edge u → v, or nil when no edge runs there.
func (m *Multigraph[K]) Edge(uid, vid int64) graph.Edge {
	if !m.HasEdgeFromTo(uid, vid) {
		return nil
	}

	return edge{f: node(uid), t: node(vid)}
}
