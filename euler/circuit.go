// Package euler constructs closed Euler circuits over a core.Graph,
// consuming every edge exactly once via an iterative stack walk.
package euler

import (
	"fmt"

	"github.com/katalvlaran/eulath/core"
)

// walker encapsulates mutable walk state.
type walker struct {
	graph *core.Graph
	opts  TourOptions
	stack []string
	tour  []string
	used  int
}

// Validate reports whether g satisfies the degree condition for a closed
// Euler circuit: every vertex has even unconsumed degree (a self-loop
// counts twice toward its vertex). Vertices are checked in insertion
// order, so the reported offender is stable.
// Returns ErrGraphNil for nil input, or ErrNotEulerian wrapped with the
// first odd-degree vertex and its degree. Validate never consumes edges.
// Complexity: O(V + E).
func Validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, id := range g.Vertices() {
		deg, err := g.Degree(id)
		if err != nil {
			return err
		}
		if deg%2 != 0 {
			return fmt.Errorf("euler: vertex %q has odd degree %d: %w", id, deg, ErrNotEulerian)
		}
	}

	return nil
}

// Circuit builds a closed Euler circuit on g, applying any number of
// functional Options. The walk consumes g's edges in place; pass
// g.Clone() to keep the original untouched.
//
// The walk keeps a stack of vertices, seeded with the start. While the
// stack is non-empty it peeks the top vertex: if an unconsumed incident
// edge exists the earliest-inserted one is consumed and its far end
// pushed; otherwise the top is retired into the tour. The retirement
// sequence is the circuit itself, E+1 vertices bracketed by the start.
//
// Returns ErrGraphNil or ErrNoVertices for invalid input, a wrapped
// core.ErrVertexNotFound for an unknown start, ErrNotEulerian when some
// vertex has odd degree, or ErrDisconnected when edges remain unreached
// from the start after the walk.
// Complexity: O(V + E) time, O(V + E) memory.
func Circuit(g *core.Graph, opts ...Option) (*TourResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g.VertexCount() == 0 {
		return nil, ErrNoVertices
	}
	if err := Validate(g); err != nil {
		return nil, err
	}
	start, err := resolveStart(g, o.Start)
	if err != nil {
		return nil, err
	}

	// Every advance pushes one vertex and every vertex is retired once,
	// so both stack and tour hold at most E+1 entries.
	n := g.EdgeCount() + 1
	w := &walker{
		graph: g,
		opts:  o,
		stack: append(make([]string, 0, n), start),
		tour:  make([]string, 0, n),
	}
	if err := w.run(); err != nil {
		return nil, err
	}

	if g.HasUnusedEdges() {
		return nil, fmt.Errorf("euler: %d edge(s) unreachable from %q: %w",
			g.UnusedEdgeCount(), start, ErrDisconnected)
	}

	return &TourResult{Tour: w.tour, Start: start, EdgesUsed: w.used}, nil
}

// resolveStart picks the tour's start vertex: the explicit option if set,
// else the earliest-inserted vertex with unconsumed incident edges, else
// the earliest-inserted vertex.
func resolveStart(g *core.Graph, opt string) (string, error) {
	if opt != "" {
		if !g.HasVertex(opt) {
			return "", fmt.Errorf("euler: start vertex %q: %w", opt, core.ErrVertexNotFound)
		}

		return opt, nil
	}

	vertices := g.Vertices()
	for _, id := range vertices {
		deg, err := g.Degree(id)
		if err != nil {
			return "", err
		}
		if deg > 0 {
			return id, nil
		}
	}

	return vertices[0], nil
}

// run processes the stack until empty.
func (w *walker) run() error {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		nbr, ok, err := w.graph.UnusedNeighbor(top)
		if err != nil {
			return err
		}
		if !ok {
			w.retire()
			continue
		}
		if err := w.advance(top, nbr); err != nil {
			return err
		}
	}

	return nil
}

// advance consumes the earliest unconsumed edge from→to and pushes to.
func (w *walker) advance(from, to string) error {
	if err := w.graph.Consume(from, to); err != nil {
		return fmt.Errorf("euler: Consume(%s→%s): %w", from, to, err)
	}
	w.used++
	w.opts.OnExtend(from, to)
	w.stack = append(w.stack, to)

	return nil
}

// retire pops the stack top into the tour.
func (w *walker) retire() {
	last := len(w.stack) - 1
	id := w.stack[last]
	w.stack = w.stack[:last]
	w.tour = append(w.tour, id)
	w.opts.OnBacktrack(id)
}
