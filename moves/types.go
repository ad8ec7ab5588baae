// SPDX-License-Identifier: MIT
// Package: dualmc/moves
//
// types.go — move descriptors, connection kinds, and the two error
// regimes (retryable rejection vs fatal inconsistency).

package moves

import (
	"errors"
	"fmt"
)

// ErrRejected is the base class of every retryable rejection: the drawn
// candidate cannot move, the pair is untouched, draw again.
var ErrRejected = errors.New("moves: move rejected")

// Rejection reasons, each matching errors.Is(err, ErrRejected).
var (
	// ErrDegenerateSelection rejects a candidate whose two atoms or two
	// rings coincide.
	ErrDegenerateSelection = fmt.Errorf("%w: degenerate selection", ErrRejected)

	// ErrFixedNode rejects a bond touching an atom of a fixed ring.
	ErrFixedNode = fmt.Errorf("%w: atom belongs to a fixed ring", ErrRejected)

	// ErrCommonRings rejects a bond not flanked by exactly two rings.
	ErrCommonRings = fmt.Errorf("%w: bond does not share exactly two rings", ErrRejected)

	// ErrEdgeSharingTriangles rejects the shared edge of two edge-sharing
	// triangles, which a switch would collapse.
	ErrEdgeSharingTriangles = fmt.Errorf("%w: edge of two edge-sharing triangles", ErrRejected)

	// ErrRingBounds rejects a move that would push a ring size outside the
	// configured limits.
	ErrRingBounds = fmt.Errorf("%w: ring size bounds violated", ErrRejected)

	// ErrCoordinationBounds rejects a move that would push an atom's
	// coordination outside the configured limits.
	ErrCoordinationBounds = fmt.Errorf("%w: coordination bounds violated", ErrRejected)

	// ErrAlreadyBonded rejects a mix whose target atoms are already bonded.
	ErrAlreadyBonded = fmt.Errorf("%w: target atoms already bonded", ErrRejected)
)

// InconsistencyError reports topology that contradicts itself mid-move.
// Unlike ErrRejected it is fatal: the pair can no longer be trusted.
type InconsistencyError struct {
	// Op names the operation that tripped, e.g. "common connection".
	Op string
	// Nodes are the IDs the operation was resolving.
	Nodes []int
	// Detail describes the contradiction.
	Detail string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("moves: inconsistent topology in %s %v: %s", e.Op, e.Nodes, e.Detail)
}

// ConnectionKind classifies a bond by the coordination of its two atoms.
type ConnectionKind int

const (
	// Kind33 joins two 3-coordinate atoms (switch).
	Kind33 ConnectionKind = 33
	// Kind44 joins two 4-coordinate atoms (switch).
	Kind44 ConnectionKind = 44
	// Kind43 joins a 4- and a 3-coordinate atom (mix).
	Kind43 ConnectionKind = 43
)

func (k ConnectionKind) String() string {
	switch k {
	case Kind33:
		return "3-3"
	case Kind44:
		return "4-4"
	case Kind43:
		return "4-3"
	default:
		return fmt.Sprintf("ConnectionKind(%d)", int(k))
	}
}

// Connection is a drawn bond: the two atoms and the two flanking rings.
type Connection struct {
	// A, B are the bonded atoms.
	A, B int
	// RingU, RingV are the two rings flanking the bond, in random order.
	RingU, RingV int
	// Kind classifies the bond by endpoint coordination.
	Kind ConnectionKind
}

// Move is a fully derived topology change, ready to apply. Bond lists are
// flat atom pairs, angle lists flat atom triples (centre in the middle),
// mirroring what relaxation engines consume.
type Move struct {
	Kind ConnectionKind

	// BondBreaks / BondMakes are flat [a0 b0 a1 b1 ...] atom pairs.
	BondBreaks []int
	BondMakes  []int

	// AngleBreaks / AngleMakes are flat [l0 c0 r0 ...] atom triples.
	AngleBreaks []int
	AngleMakes  []int

	// Rings holds the four rings of the move: [0]-[1] is the ring edge
	// broken, [2]-[3] the ring edge made. A mix repeats the unchanged
	// flanking ring in both halves.
	Rings [4]int

	// Involved lists the atoms whose geometry the move perturbs; geometry
	// checks and snapshots range over it. May contain repeats for small
	// rings.
	Involved []int
}
