// SPDX-License-Identifier: MIT
// Package: dualmc/lattice
//
// types.go — sentinel errors for lattice operations.

package lattice

import "errors"

var (
	// ErrNodeIndex indicates a query referenced a node index outside the
	// network's node arena.
	ErrNodeIndex = errors.New("lattice: node index out of range")

	// ErrBadDimensions indicates non-positive periodic box dimensions.
	ErrBadDimensions = errors.New("lattice: box dimensions must be positive")

	// ErrLatticeSize indicates builder parameters too small to tile the
	// periodic cell without duplicate adjacencies.
	ErrLatticeSize = errors.New("lattice: lattice dimensions too small for a periodic tiling")

	// ErrCoordsLength indicates a flat coordinate slice whose length does
	// not match 2×(number of nodes).
	ErrCoordsLength = errors.New("lattice: coordinate slice length mismatch")
)
