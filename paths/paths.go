// File: paths.go
// Role: The Enumerator — lazy backtracking search over simple paths.
//
// Determinism:
//   - Arcs are explored in edge insertion order, so the paths emerge in
//     a stable depth-first order.
//   - Two Enumerators over an unmodified Source yield identical results.
package paths

import (
	"fmt"

	"github.com/katalvlaran/ixgraph/core"
)

// frame is one node of the current path prefix together with its arc
// cursor. frames[i] corresponds to nodes[i]; the arc taken to enter
// frames[i] (for i > 0) sits at edges[i-1].
type frame struct {
	arcs []core.Arc
	next int
}

// Enumerator yields every simple path from start to end, one per Next
// call. All working state (path prefix, on-path set, weight total) is
// owned by the Enumerator; abandoning it early leaves nothing behind.
type Enumerator struct {
	src   Source
	start core.NodeIndex
	end   core.NodeIndex
	opts  Options

	frames []frame
	nodes  []core.NodeIndex // current prefix, nodes[i] ↔ frames[i]
	edges  []core.EdgeIndex // arc taken into nodes[i+1]
	steps  []int64          // weight contribution of edges[i]
	weight int64            // running sum of steps
	onPath map[core.NodeIndex]struct{}

	cur          Path
	err          error
	done         bool
	emptyPending bool // start == end: yield one zero-length path
}

// New constructs an Enumerator over src for the (start, end) pair.
// Returns ErrSourceNil, ErrOptionViolation, or ErrEndpointNotFound if
// either endpoint is not live at call time.
func New(src Source, start, end core.NodeIndex, opts ...Option) (*Enumerator, error) {
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
	if !src.HasNode(start) || !src.HasNode(end) {
		return nil, ErrEndpointNotFound
	}

	e := &Enumerator{
		src:    src,
		start:  start,
		end:    end,
		opts:   o,
		onPath: make(map[core.NodeIndex]struct{}),
	}
	if start == end {
		e.emptyPending = true

		return e, nil
	}

	arcs, err := src.Neighbors(start)
	if err != nil {
		return nil, fmt.Errorf("paths: neighbors of %d: %w", start, err)
	}
	e.frames = []frame{{arcs: arcs}}
	e.nodes = []core.NodeIndex{start}
	e.onPath[start] = struct{}{}

	return e, nil
}

// Next advances to the next simple path. It returns false when the
// search space is exhausted, cancelled, or failed; consult Err.
func (e *Enumerator) Next() bool {
	if e.done || e.err != nil {
		return false
	}
	select {
	case <-e.opts.Ctx.Done():
		e.fail(e.opts.Ctx.Err())

		return false
	default:
	}

	if e.emptyPending {
		e.emptyPending = false
		e.done = true
		e.cur = Path{Nodes: []core.NodeIndex{e.start}}

		return true
	}

	for len(e.frames) > 0 {
		f := &e.frames[len(e.frames)-1]
		if f.next >= len(f.arcs) {
			e.backtrack()

			continue
		}
		arc := f.arcs[f.next]
		f.next++

		if _, revisit := e.onPath[arc.To]; revisit {
			continue
		}
		var step int64
		if arc.Weighted {
			step = arc.Weight
		}

		if arc.To == e.end {
			// A complete path; snapshot it and stay put. The cursor has
			// already moved past this arc, so the search resumes with
			// the next sibling.
			if e.opts.MaxLen >= 0 && len(e.edges)+1 > e.opts.MaxLen {
				continue
			}
			e.cur = e.snapshot(arc, step)

			return true
		}

		// Descending adds one edge and reaching the end needs at least
		// one more, so a prefix already at the cap cannot pay off.
		if e.opts.MaxLen >= 0 && len(e.edges)+1 >= e.opts.MaxLen {
			continue
		}
		arcs, err := e.src.Neighbors(arc.To)
		if err != nil {
			e.fail(fmt.Errorf("paths: neighbors of %d: %w", arc.To, err))

			return false
		}
		e.frames = append(e.frames, frame{arcs: arcs})
		e.nodes = append(e.nodes, arc.To)
		e.edges = append(e.edges, arc.Edge)
		e.steps = append(e.steps, step)
		e.weight += step
		e.onPath[arc.To] = struct{}{}
	}
	e.done = true

	return false
}

// Path returns the path yielded by the last successful Next call.
// The slices are owned by the caller; the Enumerator never reuses them.
func (e *Enumerator) Path() Path { return e.cur }

// Err returns the first error encountered: context cancellation or a
// Source failure. Nil after a normally exhausted search.
func (e *Enumerator) Err() error { return e.err }

// snapshot copies the current prefix extended by the closing arc.
func (e *Enumerator) snapshot(closing core.Arc, step int64) Path {
	nodes := make([]core.NodeIndex, len(e.nodes)+1)
	copy(nodes, e.nodes)
	nodes[len(e.nodes)] = closing.To

	edges := make([]core.EdgeIndex, len(e.edges)+1)
	copy(edges, e.edges)
	edges[len(e.edges)] = closing.Edge

	return Path{Nodes: nodes, Edges: edges, Weight: e.weight + step}
}

// backtrack pops the deepest frame and undoes its bookkeeping.
func (e *Enumerator) backtrack() {
	last := len(e.frames) - 1
	delete(e.onPath, e.nodes[last])
	e.frames = e.frames[:last]
	e.nodes = e.nodes[:last]
	if last > 0 {
		e.weight -= e.steps[last-1]
		e.steps = e.steps[:last-1]
		e.edges = e.edges[:last-1]
	}
}

func (e *Enumerator) fail(err error) {
	e.err = err
	e.done = true
}

// All runs an enumeration to exhaustion and returns every simple path.
// Convenience wrapper over New + Next; beware the exponential worst case.
func All(src Source, start, end core.NodeIndex, opts ...Option) ([]Path, error) {
	e, err := New(src, start, end, opts...)
	if err != nil {
		return nil, err
	}
	var out []Path
	for e.Next() {
		out = append(out, e.Path())
	}

	return out, e.Err()
}
