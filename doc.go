// Package ixgraph is an in-memory, index-addressed container for directed
// multigraphs — built for data that is too interconnected for trees.
//
// 🚀 What is ixgraph?
//
//	A small, deterministic library that brings together:
//		• core:     arena-backed node/edge storage with stable integer indices,
//		            identity lookup, tombstoned removal, ordered adjacency
//		• traverse: lazy depth-first / breadth-first walkers, cycle detection,
//		            topological sort
//		• paths:    exhaustive simple-path enumeration with weight totals
//		• gonum:    a gonum.org/v1/gonum/graph adapter (DOT export, topo, …)
//		• codec:    deterministic YAML import/export of a graph document
//
// ✨ Why choose ixgraph?
//
//   - Index-stable – nodes and edges live in flat arenas; every relationship
//     is an integer handle resolved through the Graph, never a pointer cycle
//   - Deterministic – adjacency preserves edge insertion order, so every
//     traversal and every path enumeration is reproducible
//   - Lazy – walkers and enumerators are pull-based; take the first K results
//     without paying for the rest
//   - Multigraph-native – parallel edges and self-loops are first-class
//
// ixgraph is single-writer by design: no locks, no background goroutines.
// Do not mutate a Graph while iterating over it.
//
//	go get github.com/katalvlaran/ixgraph
package ixgraph
