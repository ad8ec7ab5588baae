// SPDX-License-Identifier: MIT
// Package: dualmc/lattice
//
// hexagonal.go — deterministic periodic honeycomb lattice with its dual.
//
// Canonical model (brick-wall embedding):
//   - Atoms sit on a 2nx × ny grid; horizontal bonds along each row plus
//     one vertical bond per atom (up when (i+j) is even, down otherwise).
//     Every atom has exactly 3 bonds; every face is a hexagon.
//   - Rings are indexed by the grid points with (i+j) even; ring (i,j)
//     owns the hexagon whose left wall is the vertical bond at column i
//     between rows j and j+1.
//
// Contract:
//   - nx ≥ 3 and even ny ≥ 4 (else ErrLatticeSize): smaller cells wrap a
//     neighbourhood onto itself and would need multi-edges.
//   - All adjacency lists come out clockwise-sorted; distributions are
//     refreshed; coordinates are wrapped into the box (bond length 1).
//   - Deterministic: no RNG, stable IDs (row-major).
//
// Complexity: O(nx·ny) time and space.

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dualmc/geom"
)

const (
	minHexColumns = 3
	minHexRows    = 4

	hexRowY = 1.5  // vertical row spacing
	hexOffY = 0.25 // zigzag offset within a row
)

// hexDX is the horizontal atom spacing giving unit bond length.
var hexDX = math.Sqrt(3) / 2

// Hexagonal builds a periodic honeycomb atom network (all coordinations 3)
// and its triangular dual (all ring sizes 6) with nx×ny rings.
func Hexagonal(nx, ny int) (atoms, rings *Network, err error) {
	if nx < minHexColumns || ny < minHexRows || ny%2 != 0 {
		return nil, nil, fmt.Errorf("%w: hexagonal needs nx ≥ %d and even ny ≥ %d, got %d×%d",
			ErrLatticeSize, minHexColumns, minHexRows, nx, ny)
	}

	w := 2 * nx // atoms per row
	dims := geom.Vec2{X: float64(w) * hexDX, Y: float64(ny) * hexRowY}

	atoms, err = NewNetwork(w*ny, dims)
	if err != nil {
		return nil, nil, err
	}
	rings, err = NewNetwork(nx*ny, dims)
	if err != nil {
		return nil, nil, err
	}

	atomID := func(i, j int) int { return wrapIndex(j, ny)*w + wrapIndex(i, w) }
	ringID := func(i, j int) int {
		i, j = wrapIndex(i, w), wrapIndex(j, ny)
		// Rings live on grid points of matching parity; column index halves.
		return j*nx + (i-j%2)/2
	}

	// Atoms: coordinates, bonds, bordering rings.
	for j := 0; j < ny; j++ {
		for i := 0; i < w; i++ {
			a := &atoms.Nodes[atomID(i, j)]
			up := (i+j)%2 == 0
			y := float64(j)*hexRowY - hexOffY
			if up {
				y = float64(j)*hexRowY + hexOffY
			}
			a.Crd = geom.Wrap(geom.Vec2{X: float64(i) * hexDX, Y: y}, dims)

			if up {
				a.NetCnxs = []int{atomID(i-1, j), atomID(i+1, j), atomID(i, j+1)}
				a.DualCnxs = []int{ringID(i, j), ringID(i-2, j), ringID(i-1, j-1)}
			} else {
				a.NetCnxs = []int{atomID(i-1, j), atomID(i+1, j), atomID(i, j-1)}
				a.DualCnxs = []int{ringID(i-1, j), ringID(i-2, j-1), ringID(i, j-1)}
			}
		}
	}

	// Rings: centres, ring-ring adjacency, boundary walk.
	for j := 0; j < ny; j++ {
		for m := 0; m < nx; m++ {
			i := 2*m + j%2
			r := &rings.Nodes[ringID(i, j)]
			r.Crd = geom.Wrap(geom.Vec2{X: float64(i+1) * hexDX, Y: float64(j)*hexRowY + hexRowY/2}, dims)
			r.NetCnxs = []int{
				ringID(i-2, j), ringID(i+2, j),
				ringID(i-1, j-1), ringID(i+1, j-1),
				ringID(i-1, j+1), ringID(i+1, j+1),
			}
			r.DualCnxs = []int{
				atomID(i, j), atomID(i+1, j), atomID(i+2, j),
				atomID(i+2, j+1), atomID(i+1, j+1), atomID(i, j+1),
			}
		}
	}

	orderLatticePair(atoms, rings)

	return atoms, rings, nil
}

// wrapIndex maps i into [0, n) for any sign of i.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

// orderLatticePair clockwise-sorts every adjacency list of a freshly built
// atom/ring pair and refreshes both distribution caches.
func orderLatticePair(atoms, rings *Network) {
	dims := atoms.Dimensions
	atomAt := func(id int) geom.Vec2 { return atoms.Nodes[id].Crd }
	ringAt := func(id int) geom.Vec2 { return rings.Nodes[id].Crd }

	for i := range atoms.Nodes {
		a := &atoms.Nodes[i]
		SortClockwise(a.Crd, dims, a.NetCnxs, atomAt)
		SortClockwise(a.Crd, dims, a.DualCnxs, ringAt)
	}
	for i := range rings.Nodes {
		r := &rings.Nodes[i]
		SortClockwise(r.Crd, dims, r.NetCnxs, ringAt)
		SortClockwise(r.Crd, dims, r.DualCnxs, atomAt)
	}

	atoms.RefreshDistributions()
	rings.RefreshDistributions()
}
