// SPDX-License-Identifier: MIT
package linked_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualmc/geom"
	"github.com/katalvlaran/dualmc/lattice"
	"github.com/katalvlaran/dualmc/linked"
)

func newHexPair(t *testing.T, nx, ny int) *linked.Pair {
	t.Helper()
	atoms, rings, err := lattice.Hexagonal(nx, ny)
	require.NoError(t, err)
	p, err := linked.NewPair(atoms, rings, linked.DefaultOptions())
	require.NoError(t, err)

	return p
}

func TestNewPair_ValidatesBoundsAndBoxes(t *testing.T) {
	atoms, rings, err := lattice.Hexagonal(3, 4)
	require.NoError(t, err)

	bad := linked.DefaultOptions()
	bad.MaxRingSize = 2
	_, err = linked.NewPair(atoms, rings, bad)
	require.ErrorIs(t, err, linked.ErrBounds)

	rings.Dimensions.X++
	_, err = linked.NewPair(atoms, rings, linked.DefaultOptions())
	require.ErrorIs(t, err, linked.ErrBoxMismatch)
}

func TestNewPair_RejectsBrokenTopology(t *testing.T) {
	atoms, rings, err := lattice.Hexagonal(3, 4)
	require.NoError(t, err)

	// Drop one direction of a bond; the symmetry audit must catch it.
	j := atoms.Nodes[0].NetCnxs[0]
	require.True(t, atoms.Nodes[j].RemoveNetCnx(0))
	_, err = linked.NewPair(atoms, rings, linked.DefaultOptions())
	require.ErrorIs(t, err, linked.ErrInconsistent)
}

func TestNewPair_RejectsStaleDistributions(t *testing.T) {
	atoms, rings, err := lattice.Hexagonal(3, 4)
	require.NoError(t, err)

	atoms.BumpNode(3, 1)
	_, err = linked.NewPair(atoms, rings, linked.DefaultOptions())
	require.ErrorIs(t, err, linked.ErrInconsistent)
}

func TestPair_FixRingsDerivesFixedAtoms(t *testing.T) {
	p := newHexPair(t, 3, 4)

	require.NoError(t, p.FixRings(0))
	require.Equal(t, []int{0}, p.FixedRings())
	for _, atom := range p.B.Nodes[0].DualCnxs {
		require.True(t, p.IsFixed(atom))
	}
	require.Len(t, p.FixedNodes(), 6, "one hexagon pins six atoms")

	require.Error(t, p.FixRings(9999))
}

func TestPair_UniformWeightsSumToOne(t *testing.T) {
	p := newHexPair(t, 3, 4)

	sum := 0.0
	for _, w := range p.Weights() {
		require.InDelta(t, 1/float64(p.A.NumNodes()), w, 1e-12)
		sum += w
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestPair_WeightedSelectionFavoursCentre(t *testing.T) {
	atoms, rings, err := lattice.Hexagonal(4, 6)
	require.NoError(t, err)
	opts := linked.DefaultOptions()
	opts.Selection = linked.SelectionWeighted
	p, err := linked.NewPair(atoms, rings, opts)
	require.NoError(t, err)

	centre := p.Centre()
	var nearest, farthest int
	best, worst := math.Inf(1), 0.0
	for i := range p.A.Nodes {
		d := geom.Distance(p.A.Nodes[i].Crd, centre, p.A.Dimensions)
		if d < best {
			best, nearest = d, i
		}
		if d > worst {
			worst, farthest = d, i
		}
	}
	require.Greater(t, p.Weights()[nearest], p.Weights()[farthest])

	sum := 0.0
	for _, w := range p.Weights() {
		sum += w
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestPair_RescaleScalesEverything(t *testing.T) {
	p := newHexPair(t, 3, 4)
	box := p.A.Dimensions
	c0 := p.Coords()[0]

	p.Rescale(2)
	require.Equal(t, box.Scale(2), p.A.Dimensions)
	require.Equal(t, box.Scale(2), p.B.Dimensions)
	require.InDelta(t, 2*c0, p.Coords()[0], 1e-12)
	require.NoError(t, p.CheckConsistency())
}

func TestPair_PushCoordsWrapsAndRecentres(t *testing.T) {
	p := newHexPair(t, 3, 4)

	flat := p.A.Coords()
	// Shove atom 0 one full box length out; Wrap must bring it home.
	flat[0] += p.A.Dimensions.X
	require.NoError(t, p.PushCoords(flat))
	require.InDelta(t, flat[0]-p.A.Dimensions.X, p.A.Nodes[0].Crd.X, 1e-12)

	require.ErrorIs(t, p.PushCoords(flat[:4]), lattice.ErrCoordsLength)
}

func TestPair_GeometryPredicatesOnRegularHoneycomb(t *testing.T) {
	p := newHexPair(t, 4, 6)
	coords := p.A.Coords()
	all := make([]int, p.A.NumNodes())
	for i := range all {
		all[i] = i
	}

	for _, id := range all {
		require.True(t, p.CheckClockwiseNeighbours(id, coords))
	}

	// Honeycomb interior angles are exactly 2π/3.
	require.True(t, p.CheckAnglesWithinRange(2*math.Pi/3+1e-9, all, coords))
	require.False(t, p.CheckAnglesWithinRange(2*math.Pi/3-1e-3, all, coords))

	// Unit bond length everywhere.
	require.True(t, p.CheckBondLengths(1+1e-9, all, coords))
	require.False(t, p.CheckBondLengths(1-1e-3, all, coords))

	require.True(t, p.CheckConvexity(all, coords), "regular honeycomb certifies convex")
}

func TestPair_ConvexityRejectsFoldedNode(t *testing.T) {
	p := newHexPair(t, 4, 6)
	coords := p.A.Coords()

	// Fold the first neighbour of atom 0 into the sector between the other
	// two so the stored order is no longer clockwise and the angular walk
	// overshoots 2π.
	n0 := p.A.Nodes[0].NetCnxs
	pos0 := geom.At(coords, 0)
	vb := geom.PBCVector(pos0, geom.At(coords, n0[1]), p.A.Dimensions)
	vc := geom.PBCVector(pos0, geom.At(coords, n0[2]), p.A.Dimensions)
	geom.Put(coords, n0[0], pos0.Add(vb.Add(vc).Scale(0.5)))

	require.False(t, p.CheckConvexity([]int{0}, coords))
}

func TestPair_RotateBondSwapsEndpointsAboutMidpoint(t *testing.T) {
	p := newHexPair(t, 4, 6)
	coords := p.A.Coords()
	a := 0
	b := p.A.Nodes[0].NetCnxs[0]

	pa := geom.At(coords, a)
	mid := pa.Add(geom.PBCVector(pa, geom.At(coords, b), p.A.Dimensions).Scale(0.5))
	length := geom.Distance(geom.At(coords, a), geom.At(coords, b), p.A.Dimensions)

	p.RotateBond(a, b, linked.Clockwise, coords)

	// Bond length and midpoint survive; orientation turned a quarter circle.
	require.InDelta(t, length, geom.Distance(geom.At(coords, a), geom.At(coords, b), p.A.Dimensions), 1e-9)
	newMid := geom.At(coords, a).Add(geom.PBCVector(geom.At(coords, a), geom.At(coords, b), p.A.Dimensions).Scale(0.5))
	require.InDelta(t, 0, geom.Distance(mid, newMid, p.A.Dimensions), 1e-9)

	va := geom.PBCVector(mid, geom.At(coords, a), p.A.Dimensions)
	vb := geom.PBCVector(pa, mid, p.A.Dimensions)
	require.InDelta(t, 0, va.Dot(vb), 1e-9, "rotated bond is perpendicular to the original")
}
