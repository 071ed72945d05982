// SPDX-License-Identifier: MIT
// Package: eulath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   - idFn = decimalID ("0","1","2",...)
//   - rng  = nil       (pure/deterministic unless seeded)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: decimalID,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
// Deterministic and allocation-light; suitable for golden tests.
func decimalID(i int) string {
	return strconv.Itoa(i)
}
