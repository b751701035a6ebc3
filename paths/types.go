// Package paths types: the Path result, the Source contract, sentinel
// errors, and functional options.
package paths

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ixgraph/core"
)

// Sentinel errors for path enumeration.
var (
	// ErrSourceNil is returned if a nil Source is passed.
	ErrSourceNil = errors.New("paths: source is nil")

	// ErrEndpointNotFound is returned when start or end is not live at
	// call time. It wraps core.ErrUnknownNode, so errors.Is matches either.
	ErrEndpointNotFound = fmt.Errorf("paths: endpoint: %w", core.ErrUnknownNode)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")
)

// Path is one simple directed path. Nodes holds the visited node indices
// from start to end inclusive; Edges holds the edge index taken at each
// step, so len(Nodes) == len(Edges)+1. Weight is the sum of the weights
// of the weighted edges on the path; unweighted edges contribute zero.
type Path struct {
	Nodes  []core.NodeIndex
	Edges  []core.EdgeIndex
	Weight int64
}

// Len returns the path length in edges. The zero-length path (start ==
// end) has Len 0.
func (p Path) Len() int { return len(p.Edges) }

// Source is the adjacency-query contract the enumerator consumes.
// *core.Graph satisfies it for any identity type.
type Source interface {
	// HasNode reports whether n addresses a live node.
	HasNode(n core.NodeIndex) bool

	// Neighbors returns live outgoing arcs of n in insertion order.
	Neighbors(n core.NodeIndex) ([]core.Arc, error)
}

// Option configures enumeration via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters to customize an enumeration.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per Next call.
	Ctx context.Context

	// MaxLen, if non-negative, caps the path length in edges: a path
	// with more than MaxLen edges is never yielded, and branches that
	// cannot reach the end within the cap are pruned. Default -1.
	MaxLen int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no length cap (MaxLen == -1)
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		MaxLen: -1,
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

// WithMaxLen caps the number of edges per path.
//
//	n == 0: only the zero-length path (start == end) can be yielded
//	n > 0:  paths of at most n edges
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxLen(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLen cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxLen = n
	}
}
