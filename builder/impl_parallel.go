// SPDX-License-Identifier: MIT
// Package: eulath/builder
//
// impl_parallel.go - implementation of Parallel(u, v, k) constructor.
//
// Contract:
//   - k >= 1 (else ErrTooFewVertices).
//   - u and v are literal vertex IDs (cfg.idFn is not consulted); they are
//     created if absent, so Parallel composes with any prior constructor.
//   - Emits the k edges in a single stable burst.
//   - u == v yields k self-loops. Even k leaves all degrees even; odd k
//     on distinct endpoints is the canonical odd-degree negative fixture.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(k) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulath/core"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodParallel   = "Parallel"
	minParallelEdges = 1
)

// Parallel returns a Constructor that adds k parallel edges between u and v.
func Parallel(u, v string, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minParallelEdges {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodParallel, k, minParallelEdges, ErrTooFewVertices)
		}

		for i := 0; i < k; i++ {
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodParallel, u, v, err)
			}
		}

		return nil
	}
}
