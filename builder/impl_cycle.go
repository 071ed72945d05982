// SPDX-License-Identifier: MIT
// Package: eulath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   - Every vertex ends with degree 2 (always tour-ready).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.
//   - Space: O(1) extra (iter vars only).
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic edge emission order by increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulath/core"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Vertices first, in ascending index order, so insertion order is
		// independent of edge emission.
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, cfg.idFn(i), err)
			}
		}

		// Ring edges in ascending i; i==n-1 connects back to 0.
		for i := 0; i < n; i++ {
			uID := cfg.idFn(i)
			vID := cfg.idFn((i + 1) % n)
			if err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, uID, vID, err)
			}
		}

		return nil
	}
}
