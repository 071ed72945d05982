// Package euler provides tunable options and error definitions
// for Euler circuit construction over a core.Graph.
package euler

import "errors"

// Sentinel errors for circuit construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrNoVertices is returned when the graph has no vertices at all.
	ErrNoVertices = errors.New("euler: graph has no vertices")

	// ErrNotEulerian is returned when some vertex has odd degree, so no
	// closed tour using every edge exactly once can exist.
	ErrNotEulerian = errors.New("euler: graph is not eulerian")

	// ErrDisconnected is returned when the walk terminates with unused
	// edges remaining, i.e. some edges are unreachable from the start.
	ErrDisconnected = errors.New("euler: edges unreachable from start")
)

// Option configures circuit construction via functional arguments.
type Option func(*TourOptions)

// TourOptions holds parameters and callbacks to customize the walk.
type TourOptions struct {
	// Start forces the tour to begin (and end) at this vertex.
	// Empty selects the default: the earliest-inserted vertex with
	// incident edges, or the earliest-inserted vertex if none has any.
	Start string

	// OnExtend is called each time the walk consumes an edge and
	// advances. Receives the edge endpoints in traversal direction.
	OnExtend func(from, to string)

	// OnBacktrack is called each time a dead-end vertex is retired to
	// the tour. Receives the retired vertex ID.
	OnBacktrack func(id string)
}

// DefaultOptions returns a TourOptions with sane defaults:
//   - default start vertex (earliest inserted with incident edges)
//   - no-op hooks (OnExtend, OnBacktrack).
func DefaultOptions() TourOptions {
	return TourOptions{
		Start:       "",
		OnExtend:    func(string, string) {},
		OnBacktrack: func(string) {},
	}
}

// WithStart forces the tour to begin at the given vertex.
// An empty ID keeps the default start selection.
func WithStart(id string) Option {
	return func(o *TourOptions) {
		o.Start = id
	}
}

// WithOnExtend registers a callback to run on each edge consumption.
func WithOnExtend(fn func(from, to string)) Option {
	return func(o *TourOptions) {
		if fn != nil {
			o.OnExtend = fn
		}
	}
}

// WithOnBacktrack registers a callback to run each time a vertex is
// retired from the walk stack into the tour.
func WithOnBacktrack(fn func(id string)) Option {
	return func(o *TourOptions) {
		if fn != nil {
			o.OnBacktrack = fn
		}
	}
}

// TourResult holds the outcome of circuit construction:
//   - Tour: the closed walk as a vertex sequence; for E consumed edges it
//     holds E+1 entries, first and last both equal to Start.
//   - Start: the vertex the tour begins and ends at.
//   - EdgesUsed: number of edges consumed, always EdgeCount() on success.
type TourResult struct {
	Tour      []string
	Start     string
	EdgesUsed int
}
