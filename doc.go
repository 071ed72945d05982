// Package eulath is an in-memory toolkit for Euler tours: parse a graph
// from compact adjacency text, verify it admits a closed tour over every
// edge, and walk that tour deterministically.
//
// 🚀 What is eulath?
//
//	A small, focused library that brings together:
//		• Core primitives: undirected multigraphs with per-edge consumption state
//		• Text codec: adjacency-list parsing with mutual-declaration checks
//		• Tour builder: iterative Hierholzer walk with observational hooks
//		• Fixtures: deterministic generators for tour-ready topologies
//		• CLI: one command from adjacency text to tour string
//
// ✨ Why choose eulath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same input text always yields the same tour string
//   - Pure algorithms – explicit sentinel errors, no hidden state
//   - Extensible – add custom hooks (OnExtend, OnBacktrack) for custom logic
//
// Under the hood, everything is organized under four subpackages:
//
//	core/       — Graph with vertices, parallel edges, self-loops and usage flags
//	graphtext/  — Parse / FormatGraph / FormatTour text codec
//	euler/      — Validate and Circuit (the tour walk itself)
//	builder/    — Cycle, Complete, Parallel, RandomEulerian fixtures
//
// Quick ASCII example:
//
//	    a───b
//	    │   │
//	    d───c
//
//	"a:b,d; b:a,c; c:b,d; d:a,c;;" is this square; its tour from a
//	is "adcba".
//
// Dive into the examples/ directory for runnable scenarios, from mail
// rounds to the Seven Bridges of Königsberg.
//
//	go get github.com/katalvlaran/eulath
package eulath
