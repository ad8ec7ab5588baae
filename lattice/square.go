// SPDX-License-Identifier: MIT
// Package: dualmc/lattice
//
// square.go — deterministic periodic square lattice with its dual.
//
// Canonical model:
//   - Atoms on an nx × ny grid with unit spacing, 4 bonds each.
//   - Rings are the unit cells; ring (i,j) owns the square whose lower-left
//     corner is atom (i,j). Every ring has 4 sides; the dual is again a
//     square lattice.
//
// The square pair is the fixture for 4-coordinate move classes (44 and,
// after one mix, 43); the honeycomb covers the 33 class.
//
// Contract:
//   - nx ≥ 3 and ny ≥ 3 (else ErrLatticeSize).
//   - Clockwise-sorted adjacency, refreshed distributions, wrapped coords.
//   - Deterministic, no RNG.
//
// Complexity: O(nx·ny) time and space.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/dualmc/geom"
)

const minSquareDim = 3

// Square builds a periodic square atom network (all coordinations 4) and
// its square dual (all ring sizes 4) with nx×ny atoms and nx×ny rings.
func Square(nx, ny int) (atoms, rings *Network, err error) {
	if nx < minSquareDim || ny < minSquareDim {
		return nil, nil, fmt.Errorf("%w: square needs nx ≥ %d and ny ≥ %d, got %d×%d",
			ErrLatticeSize, minSquareDim, minSquareDim, nx, ny)
	}

	dims := geom.Vec2{X: float64(nx), Y: float64(ny)}
	atoms, err = NewNetwork(nx*ny, dims)
	if err != nil {
		return nil, nil, err
	}
	rings, err = NewNetwork(nx*ny, dims)
	if err != nil {
		return nil, nil, err
	}

	id := func(i, j int) int { return wrapIndex(j, ny)*nx + wrapIndex(i, nx) }

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			a := &atoms.Nodes[id(i, j)]
			a.Crd = geom.Vec2{X: float64(i), Y: float64(j)}
			a.NetCnxs = []int{id(i-1, j), id(i+1, j), id(i, j-1), id(i, j+1)}
			a.DualCnxs = []int{id(i, j), id(i-1, j), id(i-1, j-1), id(i, j-1)}

			r := &rings.Nodes[id(i, j)]
			r.Crd = geom.Vec2{X: float64(i) + 0.5, Y: float64(j) + 0.5}
			r.NetCnxs = []int{id(i-1, j), id(i+1, j), id(i, j-1), id(i, j+1)}
			r.DualCnxs = []int{id(i, j), id(i+1, j), id(i+1, j+1), id(i, j+1)}
		}
	}

	orderLatticePair(atoms, rings)

	return atoms, rings, nil
}
