// Package traverse types: traversal orders, the Source contract,
// sentinel errors, and functional options.
package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ixgraph/core"
)

// Order selects the frontier discipline of a walk.
type Order int

const (
	// DepthFirst explores as far as possible along each branch before
	// backtracking (pre-order yield).
	DepthFirst Order = iota

	// BreadthFirst explores nodes in increasing distance from the start.
	BreadthFirst
)

// String returns the conventional name of the order.
func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "DepthFirst"
	case BreadthFirst:
		return "BreadthFirst"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Sentinel errors for traversal.
var (
	// ErrSourceNil is returned if a nil Source is passed.
	ErrSourceNil = errors.New("traverse: source is nil")

	// ErrStartNotFound is returned when the start node is not live at call
	// time. It wraps core.ErrUnknownNode, so errors.Is matches either.
	ErrStartNotFound = fmt.Errorf("traverse: start node: %w", core.ErrUnknownNode)

	// ErrUnknownOrder is returned for an Order outside the declared set.
	ErrUnknownOrder = errors.New("traverse: unknown traversal order")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrCycleDetected is returned by TopologicalSort on cyclic input.
	ErrCycleDetected = errors.New("traverse: cycle detected")
)

// Source is the adjacency-query contract the walkers consume. *core.Graph
// satisfies it for any identity type; the engine never needs identities,
// only indices.
type Source interface {
	// HasNode reports whether n addresses a live node.
	HasNode(n core.NodeIndex) bool

	// Neighbors returns live outgoing arcs of n in insertion order.
	Neighbors(n core.NodeIndex) ([]core.Arc, error)

	// Nodes returns all live node indices in insertion order.
	Nodes() []core.NodeIndex
}

// Option configures walk behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per Next call.
	Ctx context.Context

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// Depth 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor can prune edges by returning false.
	// Called for each candidate step from → to.
	FilterNeighbor func(from, to core.NodeIndex) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == -1)
//   - no filtering
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to the given depth.
//
//	d == 0: only the start node
//	d > 0:  nodes up to d edges from the start
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips steps when fn returns false.
func WithFilterNeighbor(fn func(from, to core.NodeIndex) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
