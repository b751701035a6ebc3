// File: traverse.go
// Role: The Walker — a lazy, pull-based DFS/BFS iterator.
//
// Determinism:
//   - Ties among outgoing edges break by edge insertion order.
//   - Two Walkers over an unmodified Source yield identical sequences.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/ixgraph/core"
)

// item pairs a frontier node with its depth from the start.
type item struct {
	node  core.NodeIndex
	depth int
}

// Walker is a lazy traversal iterator in the scanner idiom:
//
//	w, err := traverse.New(g, start, traverse.DepthFirst)
//	for w.Next() {
//	    use(w.Node(), w.Depth())
//	}
//	err = w.Err()
//
// Every node reachable from the start is yielded exactly once, regardless
// of cycles or parallel edges. All working state (frontier, seen set) is
// owned by the Walker, so abandoning it early leaves nothing behind.
type Walker struct {
	src   Source
	order Order
	opts  Options

	// items is the frontier: a LIFO tail for DepthFirst, a FIFO window
	// starting at head for BreadthFirst. Stale duplicates may sit in the
	// frontier (parallel edges, diamonds); they are skipped on pop.
	items []item
	head  int

	seen map[core.NodeIndex]struct{}
	cur  item
	err  error
	done bool
}

// New constructs a Walker over src starting at start.
// The walk is restartable by constructing a new Walker; each call starts
// fresh from the Source's current state.
//
// Returns ErrSourceNil, ErrUnknownOrder, ErrOptionViolation, or
// ErrStartNotFound if start is not live at call time.
func New(src Source, start core.NodeIndex, order Order, opts ...Option) (*Walker, error) {
	if src == nil {
		return nil, ErrSourceNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if order != DepthFirst && order != BreadthFirst {
		return nil, ErrUnknownOrder
	}
	if !src.HasNode(start) {
		return nil, ErrStartNotFound
	}

	return &Walker{
		src:   src,
		order: order,
		opts:  o,
		items: []item{{node: start, depth: 0}},
		seen:  make(map[core.NodeIndex]struct{}),
	}, nil
}

// Next advances the walk to the next unvisited node. It returns false when
// the walk is exhausted, cancelled, or failed; consult Err to distinguish.
func (w *Walker) Next() bool {
	if w.done || w.err != nil {
		return false
	}
	select {
	case <-w.opts.Ctx.Done():
		w.fail(w.opts.Ctx.Err())

		return false
	default:
	}

	for {
		it, ok := w.pop()
		if !ok {
			w.done = true

			return false
		}
		if _, dup := w.seen[it.node]; dup {
			continue
		}
		w.seen[it.node] = struct{}{}
		w.cur = it
		w.expand(it)
		if w.err != nil {
			return false
		}

		return true
	}
}

// Node returns the node yielded by the last successful Next call.
func (w *Walker) Node() core.NodeIndex { return w.cur.node }

// Depth returns the depth (#edges from start) of the last yielded node.
func (w *Walker) Depth() int { return w.cur.depth }

// Err returns the first error encountered: context cancellation or a
// Source failure (e.g. the Source was mutated mid-walk). Nil after a
// normally exhausted walk.
func (w *Walker) Err() error { return w.err }

// pop takes the next frontier item according to the walk order.
func (w *Walker) pop() (item, bool) {
	if w.order == BreadthFirst {
		if w.head >= len(w.items) {
			return item{}, false
		}
		it := w.items[w.head]
		w.head++

		return it, true
	}
	if len(w.items) == 0 {
		return item{}, false
	}
	it := w.items[len(w.items)-1]
	w.items = w.items[:len(w.items)-1]

	return it, true
}

// expand pushes the unseen, unfiltered successors of it onto the frontier.
// For DepthFirst the arcs are pushed in reverse, so the first-inserted edge
// is explored first; BreadthFirst enqueues in natural order.
func (w *Walker) expand(it item) {
	if w.opts.MaxDepth >= 0 && it.depth >= w.opts.MaxDepth {
		return
	}
	arcs, err := w.src.Neighbors(it.node)
	if err != nil {
		w.fail(fmt.Errorf("traverse: neighbors of %d: %w", it.node, err))

		return
	}
	if w.order == DepthFirst {
		for i := len(arcs) - 1; i >= 0; i-- {
			w.push(it, arcs[i])
		}

		return
	}
	for i := range arcs {
		w.push(it, arcs[i])
	}
}

// push appends one candidate step unless it is already seen or filtered.
func (w *Walker) push(parent item, arc core.Arc) {
	if _, dup := w.seen[arc.To]; dup {
		return
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(parent.node, arc.To) {
		return
	}
	w.items = append(w.items, item{node: arc.To, depth: parent.depth + 1})
}

func (w *Walker) fail(err error) {
	w.err = err
	w.done = true
}

// Collect runs a walk to exhaustion and returns the visit order.
// Convenience wrapper over New + Next for callers that want everything.
func Collect(src Source, start core.NodeIndex, order Order, opts ...Option) ([]core.NodeIndex, error) {
	w, err := New(src, start, order, opts...)
	if err != nil {
		return nil, err
	}
	var out []core.NodeIndex
	for w.Next() {
		out = append(out, w.Node())
	}

	return out, w.Err()
}
