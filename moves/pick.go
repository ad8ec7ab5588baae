// SPDX-License-Identifier: MIT
// Package: dualmc/moves
//
// pick.go — random bond selection.
//
// Determinism:
//   - All randomness flows through the caller-owned *rand.Rand; a fixed
//     seed reproduces the exact selection sequence.

package moves

import (
	"math/rand"

	"github.com/katalvlaran/dualmc/linked"
)

// PickConnection draws one bond from the pair's weight distribution: a
// weighted atom, a uniform neighbour, and the two flanking rings in
// random order. Candidates touching fixed rings, with the wrong ring
// multiplicity, or with unsupported coordinations come back as ErrRejected
// wraps; the caller owns the retry loop.
// Complexity: O(V) per draw (cumulative weight scan).
func PickConnection(p *linked.Pair, rng *rand.Rand) (Connection, error) {
	a := drawWeighted(p.Weights(), rng)
	nbrs := p.A.Nodes[a].NetCnxs
	if len(nbrs) == 0 {
		return Connection{}, &InconsistencyError{
			Op:     "pick connection",
			Nodes:  []int{a},
			Detail: "atom has no bonds",
		}
	}
	b := nbrs[rng.Intn(len(nbrs))]

	common := CommonRings(p, a, b)
	if len(common) != 2 {
		return Connection{}, ErrCommonRings
	}
	u, v := common[0], common[1]
	if rng.Intn(2) == 1 {
		u, v = v, u
	}

	if p.IsFixed(a) || p.IsFixed(b) {
		return Connection{}, ErrFixedNode
	}

	kind, err := classify(p.A.Degree(a), p.A.Degree(b))
	if err != nil {
		return Connection{}, err
	}

	return Connection{A: a, B: b, RingU: u, RingV: v, Kind: kind}, nil
}

// classify maps endpoint coordinations onto a ConnectionKind. Anything
// outside the 3/4 regime is a rejection, not corruption: mix moves
// legitimately create 2-coordinate atoms when the bounds allow it, and
// those bonds simply cannot move.
func classify(degA, degB int) (ConnectionKind, error) {
	switch {
	case degA == 3 && degB == 3:
		return Kind33, nil
	case degA == 4 && degB == 4:
		return Kind44, nil
	case degA == 3 && degB == 4, degA == 4 && degB == 3:
		return Kind43, nil
	default:
		return 0, ErrCoordinationBounds
	}
}

// drawWeighted samples an index from the normalized weight slice.
func drawWeighted(weights []float64, rng *rand.Rand) int {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	// Rounding can leave acc marginally below 1; the tail absorbs it.
	return len(weights) - 1
}
