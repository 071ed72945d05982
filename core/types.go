// Package core defines the central Graph and Edge types for undirected
// multigraphs with per-edge usage state, and the NewGraph constructor.
//
// A Graph is built once, traversed once (the traversal consumes edges via
// Consume), and then discarded or revived with ResetUsage. There is no
// internal locking: one traversal mutates the graph at a time, and callers
// sharing an instance must synchronize externally.
//
// This file declares Edge, Graph, sentinel errors, and NewGraph.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNoUnusedEdge   - no unconsumed edge connects the given endpoints.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNoUnusedEdge indicates that no unconsumed edge connects the given endpoints.
	ErrNoUnusedEdge = errors.New("core: no unused edge between vertices")
)

// Edge is a read-only snapshot of one undirected edge.
//
// U and V are the endpoint vertex IDs as first recorded; U == V for a
// self-loop. Used reports whether a traversal has already consumed the edge.
type Edge struct {
	// U is the endpoint recorded first.
	U string

	// V is the endpoint recorded second.
	V string

	// Used reports whether the edge has been consumed.
	Used bool
}

// edgeRecord is the arena entry backing one undirected edge.
// The used flag lives once per edge and is shared by both endpoints, so
// consuming the edge from either side consumes the sibling endpoint too.
type edgeRecord struct {
	u, v string // endpoint vertex IDs
	used bool   // consumed marker, flipped only by Consume and ResetUsage
}

// Graph is an undirected multigraph with per-edge usage state.
//
// Edges live in a flat arena; each vertex's adjacency list holds arena
// indices in insertion order, which fixes the deterministic neighbor
// selection rule: earliest-inserted unconsumed endpoint first. A self-loop
// stores its index twice on the same vertex (one entry per endpoint), so it
// contributes 2 to that vertex's degree.
//
// Graph is not safe for concurrent use.
type Graph struct {
	edges []edgeRecord     // edge arena, insertion order
	adj   map[string][]int // vertex ID → incident arena indices, ascending
	order []string         // vertex IDs in insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[string][]int),
	}
}
