// Package core provides an in-memory undirected multigraph whose edges
// carry a "used" flag, the bookkeeping an Euler-tour traversal needs to
// cross every edge exactly once.
//
// The Graph stores edges in a flat arena and each vertex's adjacency as a
// list of arena indices:
//
//   - One arena record per edge; parallel edges are distinct records.
//   - The used flag lives once per record, shared by both endpoints, so
//     consuming an edge from either side consumes its sibling endpoint.
//   - A self-loop stores its index twice on the same vertex (two endpoints,
//     degree contribution 2).
//   - Insertion order is preserved everywhere: Vertices() reports vertices
//     as first seen, and UnusedNeighbor/Consume prefer the earliest-inserted
//     unconsumed edge, which makes traversals reproducible.
//
// Why use core.Graph?
//
//   - Single-purpose shape — exactly the state Hierholzer's algorithm needs,
//     nothing more.
//   - Deterministic iteration — no map-order surprises in results or tests.
//   - Revivable — ResetUsage() restores all edges; Clone() deep-copies when
//     the original must outlive a (destructive) traversal.
//
// Core Methods:
//
//	// Construction
//	AddVertex(id string) error       // O(1), idempotent
//	AddEdge(u, v string) error       // O(1), auto-creates endpoints
//
//	// Query
//	HasVertex(id string) bool        // O(1)
//	Vertices() []string              // O(V), insertion order
//	Neighbors(id) ([]Edge, error)    // O(deg), incident snapshots in order
//	NeighborIDs(id) ([]string, error)// O(deg), distinct, first-seen order
//	Edges() []Edge                   // O(E), arena-order snapshots
//	VertexCount() int                // O(1)
//	EdgeCount() int                  // O(1)
//	UnusedEdgeCount() int            // O(E)
//
//	// Traversal state
//	Degree(id) (int, error)          // O(deg), unconsumed endpoints only
//	UnusedNeighbor(id) (string, bool, error) // O(deg), earliest unconsumed
//	Consume(u, v) error              // O(deg), the only traversal mutator
//	HasUnusedEdges() bool            // O(E)
//	ResetUsage()                     // O(E)
//
//	// Cloning
//	Clone() *Graph                   // O(V+E) deep copy incl. usage flags
//
// Errors:
//
//	ErrEmptyVertexID  - zero-length vertex ID
//	ErrVertexNotFound - missing vertex
//	ErrNoUnusedEdge   - Consume found no unconsumed edge between u and v
//
// Graph is not safe for concurrent use: a traversal mutates shared state
// through Consume, and the contract is one traversal per instance at a
// time. Share instances only under external synchronization.
package core
