// File: cycle.go
// Role: Cycle detection via iterative three-color DFS.
//
// Determinism:
//   - Roots are taken in Nodes() order, arcs in insertion order, so the
//     returned witness is the first cycle in deterministic DFS order.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/ixgraph/core"
)

// DFS visitation colors.
const (
	white = iota // not visited yet
	gray         // on the current DFS path
	black        // fully explored
)

// cframe is one explicit DFS stack frame: a node and its arc cursor.
type cframe struct {
	node core.NodeIndex
	arcs []core.Arc
	next int
}

// DetectCycle inspects src for a directed cycle.
// Returns (true, witness, nil) for the first cycle found, where witness is
// a closed node sequence [v0, v1, …, v0]; (false, nil, nil) when src is
// acyclic. A self-loop yields the witness [v, v].
//
// Complexity: O(V + E) time, O(V) space.
func DetectCycle(src Source) (bool, []core.NodeIndex, error) {
	if src == nil {
		return false, nil, ErrSourceNil
	}

	state := make(map[core.NodeIndex]int)
	for _, root := range src.Nodes() {
		if state[root] != white {
			continue
		}
		witness, err := cycleFrom(src, root, state)
		if err != nil {
			return false, nil, err
		}
		if witness != nil {
			return true, witness, nil
		}
	}

	return false, nil, nil
}

// cycleFrom runs one DFS tree from root, maintaining the explicit path so a
// back edge (an arc into a gray node) can be reconstructed into a witness.
func cycleFrom(src Source, root core.NodeIndex, state map[core.NodeIndex]int) ([]core.NodeIndex, error) {
	arcs, err := src.Neighbors(root)
	if err != nil {
		return nil, fmt.Errorf("traverse: neighbors of %d: %w", root, err)
	}
	state[root] = gray
	frames := []cframe{{node: root, arcs: arcs}}
	path := []core.NodeIndex{root}
	pos := map[core.NodeIndex]int{root: 0}

	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		if f.next >= len(f.arcs) {
			// Backtrack: the node and all descendants are fully explored.
			state[f.node] = black
			delete(pos, f.node)
			path = path[:len(path)-1]
			frames = frames[:len(frames)-1]

			continue
		}
		arc := f.arcs[f.next]
		f.next++

		switch state[arc.To] {
		case white:
			arcs, err = src.Neighbors(arc.To)
			if err != nil {
				return nil, fmt.Errorf("traverse: neighbors of %d: %w", arc.To, err)
			}
			state[arc.To] = gray
			pos[arc.To] = len(path)
			path = append(path, arc.To)
			frames = append(frames, cframe{node: arc.To, arcs: arcs})
		case gray:
			// Back edge: close the segment path[pos(arc.To):] into a cycle.
			seg := append([]core.NodeIndex(nil), path[pos[arc.To]:]...)
			seg = append(seg, arc.To)

			return seg, nil
		}
	}

	return nil, nil
}
