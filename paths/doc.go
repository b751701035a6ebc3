// Package paths enumerates every simple directed path between two nodes.
//
// A simple path never repeats a node, so enumeration terminates on any
// graph, cycles and self-loops included. Parallel edges between the same
// pair of nodes produce distinct paths, one per edge.
//
// The engine is a lazy, pull-based backtracking search in the scanner
// idiom:
//
//	e, err := paths.New(g, start, end)
//	for e.Next() {
//	    p := e.Path() // Nodes, Edges, Weight
//	}
//	err = e.Err()
//
// Features:
//
//   - 📜 Exhaustive: every simple path from start to end appears exactly
//     once, in the depth-first order induced by edge insertion.
//   - 🔗 Edge-level identity: each Path records the exact EdgeIndex
//     sequence taken, so parallel edges are distinguishable.
//   - ⚖️ Weight totals: Path.Weight sums the weights of weighted edges;
//     unweighted edges contribute zero.
//   - ✋ Lazy: state lives on an explicit frame stack; abandoning the
//     Enumerator after the first few paths costs nothing further.
//   - 🎛️ Options: WithContext for cancellation, WithMaxLen to cap path
//     length in edges.
//
// Special case: when start == end the sole result is the zero-length
// path (one node, no edges, weight 0); self-loops do not extend it.
//
// Complexity: the number of simple paths can be exponential in the node
// count (factorial on dense graphs), so exhaustive enumeration is
// O(paths × length) time overall. Per-path cost is O(length); memory is
// O(V) for the stack and on-path set.
//
// Errors: ErrSourceNil, ErrEndpointNotFound (wraps core.ErrUnknownNode),
// ErrOptionViolation.
package paths
