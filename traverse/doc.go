// Package traverse implements lazy graph walks over a core.Graph (or any
// Source), plus DFS-derived utilities: cycle detection and topological sort.
//
// Key features:
//   - New(src, start, order, opts...): a pull-based Walker yielding each
//     reachable node exactly once, in DepthFirst or BreadthFirst order
//   - Deterministic tie-break: outgoing edges are explored in insertion
//     order (the order core.Graph.Neighbors returns them)
//   - Lazy: work happens per Next() call; stopping early costs nothing and
//     leaves no dangling state — all working state lives in the Walker
//   - Restartable: each New call starts fresh from the Source
//   - Options: WithContext (cancellation), WithMaxDepth, WithFilterNeighbor
//   - DetectCycle / TopologicalSort: three-color DFS utilities
//
// The Walker reads the Source but never mutates it. Mutating the Source
// while a Walker is live yields unspecified (but non-crashing) results:
// there is no snapshot-at-creation guarantee.
//
// Complexity:
//
//   - Time:   O(V + E) for a full walk (amortized across Next calls)
//   - Memory: O(V) for the seen set plus the frontier
//
// Errors:
//
//   - ErrSourceNil        if src is nil
//   - ErrStartNotFound    if the start node is not live (wraps core.ErrUnknownNode)
//   - ErrUnknownOrder     if order is not DepthFirst or BreadthFirst
//   - ErrOptionViolation  if an invalid Option is supplied
//   - ErrCycleDetected    from TopologicalSort on cyclic input
//   - context cancellation and Source failures surface via Walker.Err
package traverse
