// SPDX-License-Identifier: MIT

// Package montecarlo drives the accept/reject loop over a linked dual pair.
//
// The Controller owns the pair for the duration of a run and walks each
// step through a fixed sequence:
//
//	select → mutate → guard → relax → decide → commit|revert
//
// Selection and generation come from the moves package, bounded by a
// node-count² retry budget. The applied candidate gets a trial geometry
// (the switched bond rotated a quarter turn in the lattice's winding
// sense), cheap angle and bond-length guards, and only then the expensive
// external relaxation through the Evaluator interface. Admission is the
// Metropolis criterion at the controller's current temperature, with
// every rejection reason counted in Stats.
//
// Determinism: all randomness flows from Options.Seed through SplitMix64
// stream derivation — one stream for selection, one for acceptance — so a
// fixed seed replays an identical trajectory against a deterministic
// evaluator. Two replicas with different seeds share no stream state and
// may run concurrently on their own pairs; a single Controller is not
// goroutine-safe.
//
// The Evaluator is the only collaborator: energy functionals, geometry
// optimisers and any parallelism inside them stay behind that interface.
package montecarlo
