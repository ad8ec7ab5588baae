// SPDX-License-Identifier: MIT
// Package linked manages a mutually consistent pair of networks: the atom
// network A and its topological dual B whose nodes are the rings (faces)
// of A.
//
// The Pair is the unit of ownership for a Monte Carlo run: it is built
// once, then mutated in place by the moves package under the exclusive
// control of a single montecarlo.Controller. Nothing here is goroutine-safe
// by design — replicas parallelize by owning independent Pairs, never by
// sharing one.
//
// Responsibilities:
//
//   - Construction-time validation: equal boxes, sane coordination and
//     ring-size bounds, and a full mutual-consistency audit.
//   - Fixed rings: rings registered via FixRings anchor the lattice; every
//     atom on a fixed ring becomes a fixed node excluded from move
//     selection.
//   - Selection weights: uniform, or exponential decay away from the box
//     centre (weight = exp(-distance/boxLength · decay), normalized).
//   - Coordinate plumbing: PushCoords installs relaxed atom coordinates
//     and recentres every ring onto its boundary.
//   - Geometry predicates over caller-supplied coordinates: clockwise
//     neighbour order, interior-angle bounds, bond-length bounds, and the
//     2π convexity certificate.
//
// Consistency contract (holds after every committed move, checked by
// CheckConsistency):
//
//	j ∈ A[i].NetCnxs     ⟺ i ∈ A[j].NetCnxs      (same for B)
//	j ∈ A[i].DualCnxs    ⟺ i ∈ B[j].DualCnxs
//	len(NetCnxs) == len(DualCnxs) for every node of either network
//	network-adjacent nodes share bordering dual nodes
//	cached distributions equal a fresh recount
//
// Errors:
//
//	ErrBounds       - invalid coordination/ring-size bounds.
//	ErrBoxMismatch  - the two networks disagree on box dimensions.
//	ErrInconsistent - a consistency audit failed (wrapped with detail).
package linked
