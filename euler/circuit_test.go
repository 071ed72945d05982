package euler_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/eulath/core"
	"github.com/katalvlaran/eulath/euler"
	"github.com/katalvlaran/eulath/graphtext"
)

// mustParse builds a graph from adjacency text, failing the test on error.
func mustParse(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, err := graphtext.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}

	return g
}

// TestCircuit_Errors verifies that invalid inputs are rejected.
func TestCircuit_Errors(t *testing.T) {
	// nil graph
	if _, err := euler.Circuit(nil); !errors.Is(err, euler.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// vertex-free graph
	if _, err := euler.Circuit(core.NewGraph()); !errors.Is(err, euler.ErrNoVertices) {
		t.Errorf("empty graph: want ErrNoVertices, got %v", err)
	}
	// start vertex not found
	g := mustParse(t, "a:b,d; b:a,c; c:b,d; d:a,c;;")
	if _, err := euler.Circuit(g, euler.WithStart("zz")); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("missing start: want core.ErrVertexNotFound, got %v", err)
	}
	// odd degree
	odd := core.NewGraph()
	_ = odd.AddEdge("a", "b")
	if _, err := euler.Circuit(odd); !errors.Is(err, euler.ErrNotEulerian) {
		t.Errorf("odd degrees: want ErrNotEulerian, got %v", err)
	}
	// even degrees but a second component carries edges
	split := mustParse(t, "a:b,c; b:a,c; c:a,b; x:y,z; y:x,z; z:x,y;;")
	if _, err := euler.Circuit(split); !errors.Is(err, euler.ErrDisconnected) {
		t.Errorf("split graph: want ErrDisconnected, got %v", err)
	}
}

// TestValidate covers the standalone degree precondition.
func TestValidate(t *testing.T) {
	if err := euler.Validate(nil); !errors.Is(err, euler.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if err := euler.Validate(core.NewGraph()); err != nil {
		t.Errorf("empty graph: want nil (no degrees to violate), got %v", err)
	}

	g := mustParse(t, "a:b,d; b:a,c; c:b,d; d:a,c;;")
	if err := euler.Validate(g); err != nil {
		t.Errorf("square: want nil, got %v", err)
	}
	if got := g.UnusedEdgeCount(); got != 4 {
		t.Errorf("Validate must not consume edges: %d unused, want 4", got)
	}

	path := core.NewGraph()
	_ = path.AddEdge("a", "b")
	_ = path.AddEdge("b", "c")
	err := euler.Validate(path)
	if !errors.Is(err, euler.ErrNotEulerian) {
		t.Fatalf("path: want ErrNotEulerian, got %v", err)
	}
	// The first offender in insertion order is "a" (degree 1).
	if want := `vertex "a"`; err != nil && !strings.Contains(err.Error(), want) {
		t.Errorf("offender: error %q does not mention %s", err, want)
	}
}

// TestCircuit_Square locks the canonical deterministic outcome: the walk
// always consumes the earliest-declared unconsumed edge.
func TestCircuit_Square(t *testing.T) {
	g := mustParse(t, "a:b,d; b:a,c; c:b,d; d:a,c;;")

	res, err := euler.Circuit(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := graphtext.FormatTour(res.Tour); got != "adcba" {
		t.Errorf("tour = %q; want %q", got, "adcba")
	}
	if res.Start != "a" {
		t.Errorf("start = %q; want %q", res.Start, "a")
	}
	if res.EdgesUsed != 4 {
		t.Errorf("edges used = %d; want 4", res.EdgesUsed)
	}
}

// TestCircuit_WithStart pins the tour from a non-default start.
func TestCircuit_WithStart(t *testing.T) {
	g := mustParse(t, "a:b,d; b:a,c; c:b,d; d:a,c;;")

	res, err := euler.Circuit(g, euler.WithStart("c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := graphtext.FormatTour(res.Tour); got != "cdabc" {
		t.Errorf("tour = %q; want %q", got, "cdabc")
	}
}

// TestCircuit_ParallelEdges walks both strands of a doubled edge.
func TestCircuit_ParallelEdges(t *testing.T) {
	g := mustParse(t, "a:b,b; b:a,a;;")

	res, err := euler.Circuit(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := graphtext.FormatTour(res.Tour); got != "aba" {
		t.Errorf("tour = %q; want %q", got, "aba")
	}
}

// TestCircuit_SelfLoop covers the loop-only graph.
func TestCircuit_SelfLoop(t *testing.T) {
	g := mustParse(t, "a:a,a;;")

	res, err := euler.Circuit(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := graphtext.FormatTour(res.Tour); got != "aa" {
		t.Errorf("tour = %q; want %q", got, "aa")
	}
	if res.EdgesUsed != 1 {
		t.Errorf("edges used = %d; want 1", res.EdgesUsed)
	}
}

// TestCircuit_TrivialVertex covers the edge-free graph: the tour is the
// start vertex alone.
func TestCircuit_TrivialVertex(t *testing.T) {
	g := mustParse(t, "a:;;")

	res, err := euler.Circuit(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"a"}; !reflect.DeepEqual(res.Tour, want) {
		t.Errorf("tour = %v; want %v", res.Tour, want)
	}
	if res.EdgesUsed != 0 {
		t.Errorf("edges used = %d; want 0", res.EdgesUsed)
	}
}

// TestCircuit_Fixtures walks a set of even-degree graphs and checks the
// tour properties that define an Euler circuit: closed at the start,
// E+1 vertices long, and each consecutive pair consumes a distinct edge.
func TestCircuit_Fixtures(t *testing.T) {
	fixtures := []struct {
		name  string
		text  string
		edges int
	}{
		{"nine vertices", "a:b,c,d,i; b:a,c,d,g; c:a,b,d,f; d:a,b,c,e,f,i; e:d,f; f:c,d,e,g; g:b,f,h,i; h:g,i; i:a,d,g,h;;", 17},
		{"six vertices", "a:b,f; b:a,c,d,e; c:b,d; d:b,c,e,f; e:b,d; f:a,d;;", 8},
		{"square", "a:b,d; b:a,c; c:b,d; d:a,c;;", 4},
		{"six dense", "a:b,d,e,f; b:a,c,d,e; c:b,d; d:a,b,c,e; e:a,b,d,f; f:a,e;;", 10},
		{"nine dense", "a:b,c,e,f,g,h; b:a,c,g,h; c:a,b,d,e,h,i; d:c,e,f,i; e:a,c,d,f; f:a,d,e,g; g:a,b,f,h; h:a,b,c,g; i:c,d;;", 19},
	}
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			g := mustParse(t, fx.text)
			if got := g.EdgeCount(); got != fx.edges {
				t.Fatalf("edge count = %d; want %d", got, fx.edges)
			}

			res, err := euler.Circuit(g)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.Tour) != fx.edges+1 {
				t.Fatalf("tour length = %d; want %d", len(res.Tour), fx.edges+1)
			}
			if res.Tour[0] != res.Start || res.Tour[len(res.Tour)-1] != res.Start {
				t.Errorf("tour %v is not closed at start %q", res.Tour, res.Start)
			}
			if res.EdgesUsed != fx.edges {
				t.Errorf("edges used = %d; want %d", res.EdgesUsed, fx.edges)
			}

			// Replay the tour on a fresh copy: every step must consume a
			// real edge, and the replay must exhaust the graph.
			fresh := mustParse(t, fx.text)
			for i := 0; i+1 < len(res.Tour); i++ {
				if err := fresh.Consume(res.Tour[i], res.Tour[i+1]); err != nil {
					t.Fatalf("step %d (%s→%s): %v", i, res.Tour[i], res.Tour[i+1], err)
				}
			}
			if fresh.HasUnusedEdges() {
				t.Errorf("replay left %d edges unused", fresh.UnusedEdgeCount())
			}
		})
	}
}

// TestCircuit_Deterministic re-runs the same input and demands identical
// tours.
func TestCircuit_Deterministic(t *testing.T) {
	const text = "a:b,c,e,f,g,h; b:a,c,g,h; c:a,b,d,e,h,i; d:c,e,f,i; e:a,c,d,f; f:a,d,e,g; g:a,b,f,h; h:a,b,c,g; i:c,d;;"

	first, err := euler.Circuit(mustParse(t, text))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := euler.Circuit(mustParse(t, text))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first.Tour, second.Tour) {
		t.Errorf("tours differ:\n  %v\n  %v", first.Tour, second.Tour)
	}
}

// TestCircuit_Hooks checks that OnExtend fires per consumed edge and that
// OnBacktrack retirements spell out the tour itself.
func TestCircuit_Hooks(t *testing.T) {
	g := mustParse(t, "a:b,d; b:a,c; c:b,d; d:a,c;;")

	var extends [][2]string
	var retired []string
	res, err := euler.Circuit(g,
		euler.WithOnExtend(func(from, to string) { extends = append(extends, [2]string{from, to}) }),
		euler.WithOnBacktrack(func(id string) { retired = append(retired, id) }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(extends) != res.EdgesUsed {
		t.Errorf("OnExtend fired %d times; want %d", len(extends), res.EdgesUsed)
	}
	if want := [2]string{"a", "b"}; extends[0] != want {
		t.Errorf("first extension = %v; want %v", extends[0], want)
	}
	if !reflect.DeepEqual(retired, res.Tour) {
		t.Errorf("retirements %v; want the tour %v", retired, res.Tour)
	}
}

// TestCircuit_ConsumesInPlace documents the destructive contract and the
// Clone escape hatch.
func TestCircuit_ConsumesInPlace(t *testing.T) {
	g := mustParse(t, "a:b,d; b:a,c; c:b,d; d:a,c;;")

	if _, err := euler.Circuit(g.Clone()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.UnusedEdgeCount(); got != 4 {
		t.Errorf("clone walk touched the original: %d unused, want 4", got)
	}

	if _, err := euler.Circuit(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.HasUnusedEdges() {
		t.Errorf("direct walk must consume every edge")
	}
}
