// Package core: Graph method implementations.
//
// This file provides vertex and edge management together with the
// usage-state operations a traversal relies on (Degree, UnusedNeighbor,
// Consume, HasUnusedEdges). Adjacency is stored as per-vertex slices of
// arena indices, so every query walks only the vertex's own incident list.

package core

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	// No-op for an existing vertex
	if _, exists := g.adj[id]; exists {
		return nil
	}
	// Register the vertex with an empty incident list, preserving order
	g.adj[id] = nil
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	_, exists := g.adj[id]

	return exists
}

// AddEdge appends one undirected edge {u,v} to the edge arena and records
// its index on both endpoints (twice on u when u == v, a self-loop).
// Missing endpoints are created in order of first appearance.
// Returns ErrEmptyVertexID if either ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	// Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}

	// Append the arena record; its index is the edge's identity
	idx := len(g.edges)
	g.edges = append(g.edges, edgeRecord{u: u, v: v})

	// Record the index on each endpoint; a self-loop gets two entries
	g.adj[u] = append(g.adj[u], idx)
	g.adj[v] = append(g.adj[v], idx)

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	return len(g.order)
}

// EdgeCount returns the total number of edges, used or not. O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// UnusedEdgeCount returns the number of edges not yet consumed.
// Complexity: O(E).
func (g *Graph) UnusedEdgeCount() int {
	var n int
	for i := range g.edges {
		if !g.edges[i].used {
			n++
		}
	}

	return n
}

// Degree returns the count of unconsumed endpoints incident to id.
// A self-loop contributes 2 while unconsumed.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(id)).
func (g *Graph) Degree(id string) (int, error) {
	incident, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	var deg int
	for _, idx := range incident {
		if !g.edges[idx].used {
			deg++
		}
	}

	return deg, nil
}

// UnusedNeighbor returns the far endpoint of the earliest-inserted
// unconsumed edge incident to id, or ok == false when every incident edge
// is already consumed. For a self-loop the far endpoint is id itself.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(id)).
func (g *Graph) UnusedNeighbor(id string) (neighbor string, ok bool, err error) {
	incident, exists := g.adj[id]
	if !exists {
		return "", false, ErrVertexNotFound
	}
	for _, idx := range incident {
		if !g.edges[idx].used {
			return g.farEnd(idx, id), true, nil
		}
	}

	return "", false, nil
}

// Consume marks the earliest-inserted unconsumed edge between u and v as
// used. The used flag is shared by both endpoints, so the sibling endpoint
// is consumed in the same step. This is the only traversal mutator.
// Returns ErrVertexNotFound if either vertex does not exist, or
// ErrNoUnusedEdge when no unconsumed edge connects u and v.
// Complexity: O(deg(u)).
func (g *Graph) Consume(u, v string) error {
	incident, ok := g.adj[u]
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok = g.adj[v]; !ok {
		return ErrVertexNotFound
	}
	for _, idx := range incident {
		if !g.edges[idx].used && g.farEnd(idx, u) == v {
			g.edges[idx].used = true

			return nil
		}
	}

	return ErrNoUnusedEdge
}

// HasUnusedEdges reports whether any edge remains unconsumed.
// Complexity: O(E).
func (g *Graph) HasUnusedEdges() bool {
	for i := range g.edges {
		if !g.edges[i].used {
			return true
		}
	}

	return false
}

// Edges returns a snapshot of every edge in arena (insertion) order.
// Mutating the returned slice does not affect the graph.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = Edge{U: e.u, V: e.v, Used: e.used}
	}

	return out
}

// Neighbors returns snapshots of the edges incident to id, in adjacency
// (insertion) order. Parallel edges appear once each; a self-loop appears
// once per endpoint, i.e. twice.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	incident, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(incident))
	for i, idx := range incident {
		e := g.edges[idx]
		out[i] = Edge{U: e.u, V: e.v, Used: e.used}
	}

	return out, nil
}

// NeighborIDs returns the distinct far endpoints adjacent to id, in order
// of first appearance, regardless of usage state.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	incident, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	seen := make(map[string]struct{}, len(incident))
	var ids []string
	for _, idx := range incident {
		far := g.farEnd(idx, id)
		if _, dup := seen[far]; dup {
			continue
		}
		seen[far] = struct{}{}
		ids = append(ids, far)
	}

	return ids, nil
}

// ResetUsage restores every edge to the unconsumed state, so the graph can
// be traversed again.
// Complexity: O(E).
func (g *Graph) ResetUsage() {
	for i := range g.edges {
		g.edges[i].used = false
	}
}

// Clone returns a deep copy of the Graph, including usage flags. Use it to
// keep the original intact while a traversal consumes the copy.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		edges: make([]edgeRecord, len(g.edges)),
		adj:   make(map[string][]int, len(g.adj)),
		order: make([]string, len(g.order)),
	}
	copy(clone.edges, g.edges)
	copy(clone.order, g.order)
	for id, incident := range g.adj {
		clone.adj[id] = append([]int(nil), incident...)
	}

	return clone
}

// farEnd returns the endpoint of edge idx opposite to from.
// For a self-loop both endpoints coincide, so it returns from itself.
func (g *Graph) farEnd(idx int, from string) string {
	if e := g.edges[idx]; e.u == from {
		return e.v
	}

	return g.edges[idx].u
}
