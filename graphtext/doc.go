// Package graphtext converts between a compact adjacency-list text format
// and core.Graph values, and renders tours for display.
//
// What is the adjacency text format?
//
//	Records separated by ';', each record "<vertex>:<n1>,<n2>,...".
//	A record's neighbor list may be empty ("x:" declares an isolated
//	vertex). Trailing empty records are ignored, so inputs customarily
//	end with ";;". Whitespace around IDs is insignificant. IDs are free
//	text except the structural characters ':', ',' and ';'.
//
//	"a:b,e; b:a,c; c:b,d; d:c,e; e:d,a;;" is the 5-cycle a-b-c-d-e.
//
// Mutual declaration:
//
//	An undirected edge is customarily declared from both endpoints; the
//	parser pairs each token with its opposite-direction twin so "a:b"
//	plus "b:a" yields ONE edge. Tokens repeated within a record declare
//	parallel edges (each needs its own mirror). A vertex listing itself
//	twice declares one self-loop. Listing a vertex that has no record of
//	its own implies the mirror, while an asymmetric count between two
//	recorded vertices is malformed.
//
// Determinism:
//
//	Edges enter the graph arena in first-declaration order and vertices
//	in record order, so parsing the same text always produces the same
//	graph and, downstream, the same Euler tour.
//
// Complexity:
//
//	Parse and FormatGraph are O(V + E); FormatTour is linear in the
//	rendered length.
//
// Usage:
//
//	g, err := graphtext.Parse("a:b,c; b:a,c; c:a,b;;")
//	if err != nil { ... }
//	res, err := euler.Circuit(g)
//	if err != nil { ... }
//	fmt.Println(graphtext.FormatTour(res.Tour)) // "acba"
//
// Errors:
//
//   - ErrMalformedText: grammar violation, empty record in non-trailing
//     position, no records at all, or asymmetric mutual declarations.
//     Always wrapped with the offending record or vertex pair.
//
// See also: package euler for tour construction and package builder for
// programmatic graph generators.
package graphtext
