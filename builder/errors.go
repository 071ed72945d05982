// SPDX-License-Identifier: MIT
// Package: eulath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using %w at the failure point.
//   - Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g. n, k, extra)
// is smaller than the allowed minimum for the requested constructor.
// Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved builderConfig (set WithSeed/WithRand).
// Typical origin: RandomEulerian without an RNG.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates orchestration failure in BuildGraph itself,
// e.g. a nil Constructor in the argument list.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix composition */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//    This preserves the sentinel for errors.Is while adding a deterministic
//    context prefix "Cycle: n=2 < min=3".
//
// 2) Priority (tie-break guidance when multiple validations fail):
//    - ErrTooFewVertices  - size/domain checks first (n, k, extra).
//    - ErrNeedRandSource  - then RNG presence for stochastic builders.
//    - ErrConstructFailed - orchestration only (nil constructor).
//
// 3) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error
//    strings. Provide edge cases: n=0, n=2 for Cycle, k=0 for Parallel,
//    missing RNG for RandomEulerian.
