// Package gonum bridges an ixgraph container into the gonum graph
// ecosystem.
//
// Multigraph wraps a *core.Graph and implements both
// gonum.org/v1/gonum/graph.DirectedMultigraph (line-level view, parallel
// edges preserved) and graph.Directed (aggregate edge view), so the
// wrapped container can be fed directly to gonum's topo, path, and
// encoding/dot packages.
//
// Mapping:
//
//   - node IDs are int64(core.NodeIndex), line IDs int64(core.EdgeIndex);
//     both are stable for the life of the container.
//   - tombstoned indices are simply absent from every view.
//   - lines report Weight() as float64 of the edge weight; unweighted
//     edges weigh 0.
//
// The adapter is a read-only view: mutate through the wrapped
// *core.Graph, never concurrently with gonum consumers.
package gonum
