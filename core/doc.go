// Package core provides the fundamental in-memory Graph store: an
// arena-of-records design where nodes and edges live in flat storage and
// every relationship is expressed as a stable integer index resolved through
// the Graph.
//
// The Graph G = (V,E) is a directed multigraph:
//
//   - Node identities are caller-assigned and generic (any comparable K);
//     the store maintains an id → NodeIndex bijection over live nodes.
//   - Indices are never reused: removal tombstones a record in place, so a
//     retained NodeIndex or EdgeIndex can never silently point at a stranger.
//   - Parallel edges between the same (from, to) pair are always permitted
//     and receive distinct EdgeIndex handles; self-loops are permitted.
//   - Per-node adjacency keeps live outgoing edges in insertion order, which
//     makes every downstream traversal and enumeration deterministic.
//   - Edge weights are optional per edge (WithWeight); an edge added without
//     WithWeight is unweighted and reports Weighted == false.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(id K) NodeIndex                  // O(1), idempotent insert-or-get
//	GetNode(id K) (NodeIndex, bool)          // O(1)
//	NodeID(n NodeIndex) (K, error)           // O(1)
//	HasNode(n NodeIndex) bool                // O(1)
//	RemoveNode(n NodeIndex) error            // O(E): cascades incident edges
//
//	// Edge lifecycle
//	AddEdge(from, to NodeIndex, opts ...EdgeOption) (EdgeIndex, error) // O(1)
//	GetEdge(e EdgeIndex) (Edge, error)       // O(1)
//	HasEdge(e EdgeIndex) bool                // O(1)
//	RemoveEdge(e EdgeIndex) error            // O(deg(from))
//
//	// Query
//	Neighbors(n NodeIndex) ([]Arc, error)    // O(deg), insertion order
//	OutDegree(n NodeIndex) (int, error)      // O(1)
//	Nodes() []NodeIndex                      // O(V), insertion order
//	Edges() []EdgeIndex                      // O(E), insertion order
//	NodeCount() / EdgeCount() int            // O(1)
//	FirstNode() / LastNode() (NodeIndex, bool)
//
//	// Maintenance
//	Clear()                                  // drop everything, restart indices
//	Clone() *Graph[K]                        // deep copy, indices preserved
//
// Errors:
//
//	ErrUnknownNode – an operation referenced a node index that is not live
//	ErrUnknownEdge – an operation referenced an edge index that is not live
//
// Both are pure caller errors: reported synchronously, never retried, and
// every mutating operation either fully applies or fully fails.
//
// Concurrency: the Graph is a single mutable resource with no internal
// locking. It assumes single-writer, no-concurrent-reader-during-write
// discipline; concurrent mutation during an in-progress iteration is
// unsupported.
package core
