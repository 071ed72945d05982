// Package builder provides reusable functional-options-style fixtures for
// tour-ready graphs. It lives alongside core to centralize construction,
// ID schemes, and seeded randomness, keeping tests and examples DRY and
// deterministic.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     BuilderOption:  a function that mutates builderConfig before use.
//     builderConfig:  holds the vertex-ID scheme and optional RNG.
//   - Orchestration:
//     BuildGraph:     creates a graph and applies Constructors in order.
//     Constructor:    a deterministic graph mutation (g, cfg) -> error.
//   - Topology factories (each keeps every vertex degree even unless the
//     contract says otherwise):
//     Cycle(n):             ring C_n, always tour-ready.
//     Complete(n):          K_n, tour-ready iff n odd.
//     Parallel(u,v,k):      k parallel edges (k self-loops when u == v).
//     RandomEulerian(n,x):  seeded ring plus x random sub-cycles.
//
// Guarantees:
//
//   - Deterministic output: same options, seed, and constructor order
//     produce the identical graph, so golden tour strings stay stable.
//   - Fast-fail on invalid option parameters via panics in
//     option-constructors; constructors themselves only return errors.
//   - Sentinel errors (ErrTooFewVertices, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with method context for errors.Is.
//   - Documented algorithmic complexity per constructor.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package builder
