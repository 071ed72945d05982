// SPDX-License-Identifier: MIT
// Package: eulath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order => identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph to assemble complex fixtures deterministically.
//   - Use WithSeed(...) to freeze stochastic paths (RandomEulerian).
//   - WithIDScheme(...) for human-readable vertex IDs in examples/golden tests.
//   - Every factory here keeps all degrees even, so composed graphs stay
//     tour-ready as long as the pieces share at least one vertex.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Keep every vertex degree even (self-loops count twice).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildGraph: %w" and returned immediately;
// no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: sum of each constructor's cost; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrNeedRandSource, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn (except explicit IDs like Parallel's u,v).
//   - Emit edges in a stable, documented order.
//   - Leave every vertex with even degree.
//   - Return only sentinel errors; NEVER panic at runtime.

// Cycle builds an n-vertex ring C_n (n >= 3). Every degree is 2, so the
// result always admits a closed tour.
// Complexity: O(n) vertices + O(n) edges; O(1) extra space.
//func Cycle(n int) Constructor

// Complete builds the complete simple graph K_n (n >= 1). Degrees are n-1,
// so the result is tour-ready iff n is odd; even n serves negative tests.
// Complexity: O(n) vertices + O(n^2) edges; O(1) extra space.
//func Complete(n int) Constructor

// Parallel adds k parallel edges between the fixed vertices u and v
// (k >= 1; u == v yields k self-loops). Even k keeps degrees even.
// Complexity: O(k) edges; O(1) extra space.
//func Parallel(u, v string, k int) Constructor

// RandomEulerian builds a base ring over n vertices plus extra random
// sub-cycles (distinct vertices each), staying connected with all degrees
// even. Requires cfg.rng != nil. Deterministic per seed.
// Complexity: O(n + extra*n) time, O(n) space.
//func RandomEulerian(n, extra int) Constructor
