// Package graphtext parses the adjacency-list text format into core.Graph
// values, reconciling mutual edge declarations in deterministic order.
package graphtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/eulath/core"
)

// ErrMalformedText is returned for any input that violates the adjacency
// grammar or declares asymmetric mutual adjacency counts. The wrapped
// message carries the offending record or vertex pair.
var ErrMalformedText = errors.New("graphtext: malformed graph text")

// tokenStops are the structural characters excluded from tokens.
const tokenStops = ":,;"

// record is one parsed "<vertex>:<neighbors>" declaration.
type record struct {
	vertex    string
	neighbors []string
}

// declKey is an ordered (from,to) pair used to count outstanding mirror
// declarations during reconciliation.
type declKey struct {
	from, to string
}

// Parse converts adjacency text into a core.Graph.
//
// Each record declares adjacency entries from its vertex to each listed
// neighbor. Entries are reconciled in declaration order: a token either
// matches an earlier opposite declaration (the two sides of one edge) or
// materializes a new edge awaiting its mirror. A leftover declaration
// toward a vertex that has its own record is an asymmetric count and fails;
// toward a vertex with no record it creates that vertex and the mirror
// endpoint implicitly. Repeated records for one vertex merge.
//
// The edge arena order produced here (first-declaration order) combined
// with core's earliest-inserted selection rule makes tours over parsed
// graphs fully reproducible.
//
// Returns ErrMalformedText (wrapped with detail) on any grammar violation;
// no partial graph is returned.
// Complexity: O(len(text) + E).
func Parse(text string) (*core.Graph, error) {
	records, err := splitRecords(text)
	if err != nil {
		return nil, err
	}

	return reconcile(records)
}

// splitRecords tokenizes text into ordered records, enforcing the grammar:
// empty records only in trailing position, exactly one ':' per record, all
// tokens non-empty and free of structural characters.
func splitRecords(text string) ([]record, error) {
	chunks := strings.Split(text, ";")
	records := make([]record, 0, len(chunks))
	sawEmpty := false
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			// Legal only while no further non-empty record follows.
			sawEmpty = true
			continue
		}
		if sawEmpty {
			return nil, fmt.Errorf("%w: record %q follows an empty record", ErrMalformedText, chunk)
		}
		rec, err := parseRecord(chunk)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrMalformedText)
	}

	return records, nil
}

// parseRecord parses one "<vertex>:<neighbors>" chunk (already trimmed).
func parseRecord(chunk string) (record, error) {
	head, tail, found := strings.Cut(chunk, ":")
	if !found {
		return record{}, fmt.Errorf("%w: record %q missing ':' separator", ErrMalformedText, chunk)
	}

	vertex := strings.TrimSpace(head)
	if vertex == "" {
		return record{}, fmt.Errorf("%w: record %q has an empty vertex ID", ErrMalformedText, chunk)
	}
	if strings.ContainsAny(vertex, tokenStops) {
		return record{}, fmt.Errorf("%w: vertex ID %q contains a reserved character", ErrMalformedText, vertex)
	}

	rec := record{vertex: vertex}
	tail = strings.TrimSpace(tail)
	if tail == "" {
		// Empty neighbor list: "v:" declares an isolated vertex.
		return rec, nil
	}
	for _, part := range strings.Split(tail, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			return record{}, fmt.Errorf("%w: record %q has an empty neighbor ID", ErrMalformedText, chunk)
		}
		if strings.ContainsAny(token, tokenStops) {
			return record{}, fmt.Errorf("%w: neighbor ID %q contains a reserved character", ErrMalformedText, token)
		}
		rec.neighbors = append(rec.neighbors, token)
	}

	return rec, nil
}

// reconcile pairs mutual declarations into edges and builds the graph.
//
// pending[{u,v}] counts edges already materialized from v's side that still
// await a u-side token. Walking records and tokens in declaration order, a
// token u→v with pending[{u,v}] > 0 is the mirror of an existing edge;
// otherwise it materializes a new edge {u,v} and increments pending[{v,u}].
func reconcile(records []record) (*core.Graph, error) {
	g := core.NewGraph()

	// Top-level vertices first: this fixes insertion order and tells
	// declared vertices apart from implicitly created ones.
	declared := make(map[string]bool, len(records))
	for _, rec := range records {
		if err := g.AddVertex(rec.vertex); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedText, err)
		}
		declared[rec.vertex] = true
	}

	pending := make(map[declKey]int)
	var pendingOrder []declKey // first-transition order, for deterministic reporting
	for _, rec := range records {
		for _, nbr := range rec.neighbors {
			self := declKey{from: rec.vertex, to: nbr}
			if pending[self] > 0 {
				// Mirror of an edge materialized from the other side.
				pending[self]--
				continue
			}
			if err := g.AddEdge(rec.vertex, nbr); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedText, err)
			}
			mirror := declKey{from: nbr, to: rec.vertex}
			if pending[mirror] == 0 {
				pendingOrder = append(pendingOrder, mirror)
			}
			pending[mirror]++
		}
	}

	// Leftover declarations toward declared vertices are count mismatches;
	// toward undeclared vertices they are the implicit mirrors themselves.
	reported := make(map[declKey]bool, len(pendingOrder))
	for _, key := range pendingOrder {
		if reported[key] {
			continue
		}
		reported[key] = true
		n := pending[key]
		if n == 0 || !declared[key.from] {
			continue
		}
		if key.from == key.to {
			return nil, fmt.Errorf("%w: %q has an odd number of self-loop tokens", ErrMalformedText, key.from)
		}

		return nil, fmt.Errorf("%w: %q declares %d more edge(s) to %q than %q declares back",
			ErrMalformedText, key.to, n, key.from, key.from)
	}

	return g, nil
}
