// SPDX-License-Identifier: MIT
// Package lattice defines the fundamental Node and Network types of dualmc:
// a contiguous node arena addressed by stable integer indices, with per-node
// ordered adjacency into the same network (NetCnxs) and into the paired
// dual network (DualCnxs).
//
// Design rules:
//
//   - Identity is position. A node's index in Network.Nodes never changes
//     for the lifetime of the network; nodes are never added or removed
//     after construction, only rewired.
//   - Ordering is meaning. NetCnxs are kept clockwise-sorted around the
//     node; DualCnxs follow ring-traversal order. Mutators therefore replace
//     values in place or insert between named neighbours instead of
//     deleting and re-appending.
//   - No pointers between nodes. All cross-references are integer indices,
//     which keeps snapshots cheap (copy a handful of small slices) and
//     sidesteps cyclic ownership entirely.
//
// The package also owns the cached degree statistics every network carries:
//
//	NodeDistribution[k]    = number of nodes of degree k
//	EdgeDistribution[m][n] = number of ordered edges between degree-m and
//	                         degree-n nodes
//
// RefreshDistributions recounts from scratch (O(V+E)); the moves package
// maintains the same tables incrementally in O(touched) per move, and the
// test suite asserts the two never drift apart.
//
// Builders: Hexagonal and Square construct periodic lattices together with
// their topological duals, fully ordered and ready for the linked package.
//
// Errors:
//
//	ErrNodeIndex     - node index outside the arena.
//	ErrBadDimensions - non-positive periodic box dimensions.
//	ErrLatticeSize   - lattice builder parameters too small for a valid
//	                   periodic tiling.
//	ErrCoordsLength  - flat coordinate slice of the wrong length.
package lattice
