// File: types.go
// Role: Index handles, record arenas, sentinel errors, edge options,
//       and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates an operation referenced a node index or id
	// that is not currently live (never inserted, or removed).
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrUnknownEdge indicates an operation referenced an edge index that is
	// not currently live.
	ErrUnknownEdge = errors.New("core: unknown edge")
)

// NodeIndex is a stable integer handle for a node. Handles are assigned at
// insertion time, are never reused, and remain valid-but-dead after the node
// is tombstoned by RemoveNode.
type NodeIndex int

// EdgeIndex is a stable integer handle for an edge, with the same
// tombstone-on-removal discipline as NodeIndex.
type EdgeIndex int

// Arc describes one live outgoing edge as seen from its source node:
// the edge handle, the target node, and the optional weight.
// Weighted reports whether the edge carries a weight at all; when false,
// Weight is zero and the edge is weight-neutral for aggregation.
type Arc struct {
	Edge     EdgeIndex
	To       NodeIndex
	Weight   int64
	Weighted bool
}

// Edge is a value snapshot of one edge record, as returned by GetEdge.
type Edge struct {
	From     NodeIndex
	To       NodeIndex
	Weight   int64
	Weighted bool
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight   int64
	weighted bool
}

// WithWeight marks the new edge as weighted with the given value.
// Edges added without WithWeight are unweighted: they report
// Weighted == false and contribute 0 to path weight totals.
func WithWeight(w int64) EdgeOption {
	return func(c *edgeConfig) {
		c.weight = w
		c.weighted = true
	}
}

// nodeRecord is one arena slot. out holds the indices of live outgoing edges
// in insertion order; tombstoning clears live and releases out.
type nodeRecord[K comparable] struct {
	id   K
	out  []EdgeIndex
	live bool
}

// edgeRecord is one arena slot for a directed edge.
type edgeRecord struct {
	from     NodeIndex
	to       NodeIndex
	weight   int64
	weighted bool
	live     bool
}

// Graph is the core store: flat arenas for node and edge records plus an
// identity index over live nodes. All relationships are integer handles
// resolved through the Graph; external code never holds a record by
// reference.
//
// The zero value is not usable; construct with NewGraph.
type Graph[K comparable] struct {
	nodes []nodeRecord[K]
	edges []edgeRecord

	// index maps live node ids to their arena slot. Tombstoned nodes are
	// deleted from the map, so the mapping is a bijection over live nodes.
	index map[K]NodeIndex

	liveNodes int
	liveEdges int
}

// NewGraph constructs an empty Graph keyed by K.
// Complexity: O(1).
func NewGraph[K comparable]() *Graph[K] {
	return &Graph[K]{index: make(map[K]NodeIndex)}
}
