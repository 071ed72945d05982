// SPDX-License-Identifier: MIT
// Package: eulath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable lexicographic pair order (i,j), i<j.
//   - Every vertex ends with degree n-1: tour-ready iff n is odd, which
//     makes even n the canonical odd-degree negative fixture.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n^2) edges.
//   - Space: O(1) extra (iter vars only).
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic edge emission order by increasing (i,j).

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulath/core"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, cfg.idFn(i), err)
			}
		}

		// All unordered pairs, ascending (i,j) with i<j.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				uID := cfg.idFn(i)
				vID := cfg.idFn(j)
				if err := g.AddEdge(uID, vID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodComplete, uID, vID, err)
				}
			}
		}

		return nil
	}
}
