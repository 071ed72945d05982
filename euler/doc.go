// Package euler provides a production-grade Euler circuit builder over a
// core.Graph, returning the closed tour, its start vertex, and the number
// of edges consumed.
//
// What
//
//   - Build a closed walk that traverses every edge of the graph exactly
//     once and returns to its start (an Euler circuit).
//   - Returns a TourResult containing:
//   - Tour: the circuit as a vertex sequence (E+1 entries, closed)
//   - Start: the vertex the circuit begins and ends at
//   - EdgesUsed: edges consumed by the walk
//   - Supports functional hooks at both walk stages:
//   - OnExtend    (an edge is consumed, walk advances)
//   - OnBacktrack (a dead end is retired into the tour)
//   - Exposes the degree precondition standalone as Validate.
//
// Why
//
//   - Route construction where every connection must be covered once:
//     mail rounds, snow plowing, circuit-board drilling, DNA assembly.
//   - The classic existence result: a connected graph admits a closed
//     tour over all edges iff every vertex has even degree.
//
// Determinism
//
//	The walk always consumes the earliest-inserted unconsumed edge at the
//	current vertex, and insertion order is fixed by graph construction
//	(declaration order for parsed text). The same graph with the same
//	start therefore always yields the identical tour.
//
// Algorithm
//
//	Iterative stack walk (Hierholzer): seed the stack with the start;
//	while non-empty, peek the top vertex; consume an unconsumed incident
//	edge and push its far end, or, at a dead end, pop into the output.
//	The output sequence is the finished circuit. Sub-cycles interleave
//	without any explicit splice step.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each edge consumed once, each vertex retired once per visit)
//   - Memory: O(V + E)   (walk stack and output tour)
//
// Usage
//
//	// Basic circuit with default start:
//	res, err := euler.Circuit(g)
//	if err != nil {
//	    // handle one of:
//	    // ErrGraphNil, ErrNoVertices, ErrNotEulerian, ErrDisconnected,
//	    // or a wrapped core.ErrVertexNotFound for an unknown start
//	}
//	fmt.Println(graphtext.FormatTour(res.Tour))
//
//	// With functional options:
//	res, err := euler.Circuit(
//	    g,
//	    euler.WithStart("d"),
//	    euler.WithOnExtend(func(from, to string) { /* ... */ }),
//	    euler.WithOnBacktrack(func(id string) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions(): default start selection, no-op hooks.
//   - WithStart(id):        begin (and end) the tour at id.
//   - WithOnExtend(fn):     hook per consumed edge.
//   - WithOnBacktrack(fn):  hook per vertex retired into the tour.
//
// Errors
//
//   - ErrGraphNil                   if the graph pointer is nil.
//   - ErrNoVertices                 if the graph has no vertices.
//   - ErrNotEulerian                if some vertex has odd degree.
//   - ErrDisconnected               if edges remain unreached after the walk.
//   - core.ErrVertexNotFound        (wrapped) if the start vertex does not exist.
//
// The walk consumes edges on the given graph; pass g.Clone() to preserve
// the original, or call g.ResetUsage() afterwards.
package euler
