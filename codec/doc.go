// Package codec serializes a graph container to and from a compact,
// deterministic YAML document.
//
// Layout:
//
//	nodes:            # identities, insertion order
//	  - A
//	  - B
//	edges:            # insertion order, endpoints by node position
//	  - {from: 0, to: 1, weight: 3}
//	  - {from: 1, to: 0}   # weight omitted: unweighted edge
//
// Endpoints reference positions in the nodes list, not container
// indices, so the document stays valid regardless of the removal history
// of the source graph. Consequently a round trip preserves topology,
// insertion order, and weights, and produces a compacted container:
// tombstones are not carried and indices restart from zero.
//
// Identities marshal through gopkg.in/yaml.v3, so any YAML-representable
// comparable type works (strings, integers, flat structs).
package codec
