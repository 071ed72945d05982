// SPDX-License-Identifier: MIT
// Package: eulath/builder
//
// impl_random_eulerian.go - implementation of RandomEulerian(n, extra).
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices); extra >= 0 (else ErrTooFewVertices).
//   - Requires cfg.rng != nil (else ErrNeedRandSource).
//   - Lays a base ring C_n first (connectivity + even degrees), then
//     overlays extra random sub-cycles, each over >= 3 distinct vertices
//     drawn via cfg.rng.Perm. Every overlay raises touched degrees by 2,
//     so the result stays connected with all degrees even: tour-ready by
//     construction for every seed.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) ring + O(extra * n) overlays (Perm dominates).
//   - Space: O(n) for the permutation buffer.
//
// Determinism:
//   - Single rng stream consumed in a fixed order (length draw, then Perm,
//     per overlay), so equal seeds yield equal graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulath/core"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodRandomEulerian = "RandomEulerian"
	minRandomNodes       = 3
	minOverlayLen        = 3
)

// RandomEulerian returns a Constructor that builds a random connected
// graph with all degrees even: a ring plus extra random sub-cycles.
func RandomEulerian(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomEulerian, n, minRandomNodes, ErrTooFewVertices)
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d < min=0: %w", methodRandomEulerian, extra, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomEulerian, ErrNeedRandSource)
		}

		// Base ring: connects all n vertices, every degree 2.
		if err := Cycle(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: base ring: %w", methodRandomEulerian, err)
		}

		// Overlay sub-cycles over distinct vertices; each one adds 2 to the
		// degree of every vertex it touches.
		for c := 0; c < extra; c++ {
			length := minOverlayLen
			if n > minOverlayLen {
				length += cfg.rng.Intn(n - minOverlayLen + 1)
			}
			idxs := cfg.rng.Perm(n)[:length]
			for i := 0; i < length; i++ {
				uID := cfg.idFn(idxs[i])
				vID := cfg.idFn(idxs[(i+1)%length])
				if err := g.AddEdge(uID, vID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomEulerian, uID, vID, err)
				}
			}
		}

		return nil
	}
}
