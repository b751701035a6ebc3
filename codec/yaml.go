// File: yaml.go
// Role: YAML marshal/unmarshal for core.Graph.
package codec

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ixgraph/core"
)

// Sentinel errors for decoding.
var (
	// ErrNilGraph is returned by Marshal when given a nil graph.
	ErrNilGraph = errors.New("codec: graph is nil")

	// ErrBadDocument is returned by Unmarshal for structurally invalid
	// input: duplicate node identities or out-of-range edge endpoints.
	// YAML syntax errors are returned as-is from the yaml package.
	ErrBadDocument = errors.New("codec: malformed document")
)

// document is the wire layout. Edge endpoints are positions in Nodes.
type document[K comparable] struct {
	Nodes []K       `yaml:"nodes"`
	Edges []edgeDoc `yaml:"edges,omitempty"`
}

type edgeDoc struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Weight *int64 `yaml:"weight,omitempty"`
}

// Marshal renders g as a deterministic YAML document: nodes and edges in
// insertion order, weight omitted for unweighted edges. Tombstoned nodes
// and edges are not represented.
func Marshal[K comparable](g *core.Graph[K]) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	live := g.Nodes()
	doc := document[K]{Nodes: make([]K, len(live))}
	pos := make(map[core.NodeIndex]int, len(live))
	for i, n := range live {
		id, err := g.NodeID(n)
		if err != nil {
			return nil, fmt.Errorf("codec: node %d: %w", n, err)
		}
		doc.Nodes[i] = id
		pos[n] = i
	}

	for _, ei := range g.Edges() {
		e, err := g.GetEdge(ei)
		if err != nil {
			return nil, fmt.Errorf("codec: edge %d: %w", ei, err)
		}
		ed := edgeDoc{From: pos[e.From], To: pos[e.To]}
		if e.Weighted {
			w := e.Weight
			ed.Weight = &w
		}
		doc.Edges = append(doc.Edges, ed)
	}

	return yaml.Marshal(doc)
}

// Unmarshal builds a fresh container from a document produced by Marshal
// (or written by hand). Node and edge indices are assigned in document
// order starting from zero.
func Unmarshal[K comparable](data []byte) (*core.Graph[K], error) {
	var doc document[K]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	g := core.NewGraph[K]()
	for i, id := range doc.Nodes {
		if int(g.AddNode(id)) != i {
			return nil, fmt.Errorf("%w: duplicate node at position %d", ErrBadDocument, i)
		}
	}

	for i, ed := range doc.Edges {
		if ed.From < 0 || ed.From >= len(doc.Nodes) || ed.To < 0 || ed.To >= len(doc.Nodes) {
			return nil, fmt.Errorf("%w: edge %d endpoint out of range", ErrBadDocument, i)
		}
		var opts []core.EdgeOption
		if ed.Weight != nil {
			opts = append(opts, core.WithWeight(*ed.Weight))
		}
		if _, err := g.AddEdge(core.NodeIndex(ed.From), core.NodeIndex(ed.To), opts...); err != nil {
			return nil, fmt.Errorf("codec: edge %d: %w", i, err)
		}
	}

	return g, nil
}
