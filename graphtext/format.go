// Package graphtext renders tours and graphs back into their text forms,
// preserving insertion order so output is reproducible.
package graphtext

import (
	"strings"

	"github.com/katalvlaran/eulath/core"
)

// FormatTour renders a tour as the concatenation of its vertex IDs.
// A closed tour therefore shows its start vertex at both ends, e.g.
// the cycle a-b-c prints as "abca". Empty input yields "".
// Complexity: O(sum of ID lengths).
func FormatTour(tour []string) string {
	return strings.Join(tour, "")
}

// FormatGraph renders g back into adjacency text.
//
// Vertices appear in insertion order; each record lists the far ends of
// the vertex's incident edges in arena order, so a parsed graph formats
// to a text that parses back into an identical graph. Edge usage flags
// do not affect the output. The text is terminated with the customary
// ";;". A nil or vertex-free graph yields "".
// Complexity: O(V + E).
func FormatGraph(g *core.Graph) string {
	if g == nil || g.VertexCount() == 0 {
		return ""
	}

	var b strings.Builder
	for i, id := range g.Vertices() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(id)
		b.WriteByte(':')
		edges, _ := g.Neighbors(id)
		for j, e := range edges {
			if j > 0 {
				b.WriteByte(',')
			}
			far := e.U
			if far == id {
				far = e.V
			}
			b.WriteString(far)
		}
	}
	b.WriteString(";;")

	return b.String()
}
