// Package dualmc is an in-memory engine for Monte Carlo topological
// optimization of planar network materials — graphene-like lattices kept as
// a pair of mutually dual graphs and rewired one bond at a time.
//
// 🚀 What is dualmc?
//
//	A deterministic, dependency-light library that brings together:
//		• Dual lattices: an atom network A and its ring (face) network B,
//		  held mutually consistent under arbitrary local rewiring
//		• Moves: Wooten–Winer–Weaire bond switches and 3↔4 bond mixes,
//		  found by common-neighbour queries over the dual pair
//		• Transactions: by-value snapshots of the touched neighbourhood
//		  with exact O(touched) revert on rejection
//		• Statistics: node- and edge-degree distributions maintained
//		  incrementally, plus assortativity, entropy and Aboav–Weaire
//		• Control: a Metropolis accept/reject loop that delegates energy
//		  evaluation and geometry relaxation to an external collaborator
//
// ✨ Why choose dualmc?
//
//   - Determinism first – every random draw flows from an explicit seeded
//     stream; two runs with the same seed are identical
//   - Rollback you can trust – revert restores adjacency lists and cached
//     distributions byte-for-byte, verified by the test suite
//   - Pure Go core – the energy evaluator is an interface, not a binding
//
// Everything is organized under flat, single-concern subpackages:
//
//	geom/       — periodic-box 2D vector math and clockwise-angle helpers
//	lattice/    — Node and Network arenas, distributions, lattice builders
//	linked/     — the dual pair manager: consistency, weights, geometry checks
//	moves/      — move finding, descriptors, apply, snapshot and revert
//	montecarlo/ — Metropolis rule, evaluator contract, controller loop
//	config/     — YAML run parameters with validation
//
// Quick ASCII example:
//
//	    6───6            5───7
//	    │   │    switch  │   │
//	    6───6            7───5
//
//	one bond rotation turns four hexagons into the classic 5-5-7-7 defect.
//
// See examples/anneal for a runnable driver wiring a harmonic evaluator and
// structured logging around the controller.
//
//	go get github.com/katalvlaran/dualmc
package dualmc
