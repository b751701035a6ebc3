// File: topological.go
// Role: Topological sort via iterative DFS (reverse post-order).
package traverse

import (
	"fmt"

	"github.com/katalvlaran/ixgraph/core"
)

// TopologicalSort returns the live nodes of src in an order where every
// edge points forward: from appears before to. Input must be acyclic;
// otherwise ErrCycleDetected is returned.
//
// Determinism: roots are taken in Nodes() order and arcs in insertion
// order, so the result is reproducible for identical insertion history.
//
// Complexity: O(V + E) time, O(V) space.
func TopologicalSort(src Source) ([]core.NodeIndex, error) {
	if src == nil {
		return nil, ErrSourceNil
	}

	nodes := src.Nodes()
	state := make(map[core.NodeIndex]int, len(nodes))
	post := make([]core.NodeIndex, 0, len(nodes))

	for _, root := range nodes {
		if state[root] != white {
			continue
		}
		if err := postOrderFrom(src, root, state, &post); err != nil {
			return nil, err
		}
	}

	// Reverse the post-order in place: last finished comes first.
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}

	return post, nil
}

// postOrderFrom appends the DFS post-order of root's tree to post,
// failing with ErrCycleDetected on any back edge.
func postOrderFrom(src Source, root core.NodeIndex, state map[core.NodeIndex]int, post *[]core.NodeIndex) error {
	arcs, err := src.Neighbors(root)
	if err != nil {
		return fmt.Errorf("traverse: neighbors of %d: %w", root, err)
	}
	state[root] = gray
	frames := []cframe{{node: root, arcs: arcs}}

	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		if f.next >= len(f.arcs) {
			state[f.node] = black
			*post = append(*post, f.node)
			frames = frames[:len(frames)-1]

			continue
		}
		arc := f.arcs[f.next]
		f.next++

		switch state[arc.To] {
		case white:
			arcs, err = src.Neighbors(arc.To)
			if err != nil {
				return fmt.Errorf("traverse: neighbors of %d: %w", arc.To, err)
			}
			state[arc.To] = gray
			frames = append(frames, cframe{node: arc.To, arcs: arcs})
		case gray:
			return fmt.Errorf("%w: node %d re-entered", ErrCycleDetected, arc.To)
		}
	}

	return nil
}
