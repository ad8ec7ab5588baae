// SPDX-License-Identifier: MIT
package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualmc/geom"
	"github.com/katalvlaran/dualmc/lattice"
)

func TestNetwork_NodeBounds(t *testing.T) {
	net, err := lattice.NewNetwork(4, geom.Vec2{X: 2, Y: 2})
	require.NoError(t, err)

	_, err = net.Node(4)
	require.ErrorIs(t, err, lattice.ErrNodeIndex)
	_, err = net.Node(-1)
	require.ErrorIs(t, err, lattice.ErrNodeIndex)

	n, err := net.Node(3)
	require.NoError(t, err)
	require.Equal(t, 3, n.ID)
}

func TestNetwork_BadDimensions(t *testing.T) {
	_, err := lattice.NewNetwork(1, geom.Vec2{X: 0, Y: 1})
	require.ErrorIs(t, err, lattice.ErrBadDimensions)
}

func TestNetwork_RescaleScalesCoordsAndBox(t *testing.T) {
	net, err := lattice.NewNetwork(2, geom.Vec2{X: 3, Y: 4})
	require.NoError(t, err)
	net.Nodes[1].Crd = geom.Vec2{X: 1, Y: 2}

	net.Rescale(2)
	require.Equal(t, geom.Vec2{X: 6, Y: 8}, net.Dimensions)
	require.Equal(t, geom.Vec2{X: 2, Y: 4}, net.Nodes[1].Crd)
}

func TestNetwork_CoordsRoundTrip(t *testing.T) {
	net, err := lattice.NewNetwork(3, geom.Vec2{X: 10, Y: 10})
	require.NoError(t, err)
	flat := []float64{0, 1, 2, 3, 4, 5}
	require.NoError(t, net.SetCoords(flat))
	require.Equal(t, flat, net.Coords())

	require.ErrorIs(t, net.SetCoords(flat[:4]), lattice.ErrCoordsLength)
}

func TestNetwork_MinMaxScans(t *testing.T) {
	atoms, _, err := lattice.Hexagonal(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, atoms.MinCnxs())
	require.Equal(t, 3, atoms.MaxCnxs())
	require.Equal(t, 3, atoms.MinDualCnxs())
	require.Equal(t, 3, atoms.MaxDualCnxs())

	// Excluding a node with an artificially lowered degree skips it.
	atoms.Nodes[0].NetCnxs = atoms.Nodes[0].NetCnxs[:2]
	require.Equal(t, 2, atoms.MinCnxs())
	require.Equal(t, 3, atoms.MinCnxsExcluding(map[int]struct{}{0: {}}))
}

func TestDistributions_RecountAndBumpAgree(t *testing.T) {
	atoms, rings, err := lattice.Hexagonal(4, 4)
	require.NoError(t, err)

	node, edge := atoms.CountDistributions()
	require.True(t, lattice.DistributionsEqual(node, edge, atoms.NodeDistribution, atoms.EdgeDistribution))

	// A bump into fresh territory grows the tables and compares equal to a
	// padded twin.
	rings.BumpNode(9, 1)
	rings.BumpEdge(9, 6, 1)
	require.Equal(t, 1, rings.NodeDistribution[9])
	require.Equal(t, 1, rings.EdgeDistribution[9][6])
	rings.BumpNode(9, -1)
	rings.BumpEdge(9, 6, -1)
	node, edge = rings.CountDistributions()
	require.True(t, lattice.DistributionsEqual(node, edge, rings.NodeDistribution, rings.EdgeDistribution),
		"zero-padded tables must compare equal by value")
}

func TestHexagonal_RegularHoneycomb(t *testing.T) {
	atoms, rings, err := lattice.Hexagonal(4, 6)
	require.NoError(t, err)
	require.Equal(t, 48, atoms.NumNodes())
	require.Equal(t, 24, rings.NumNodes())

	for i := range atoms.Nodes {
		require.Len(t, atoms.Nodes[i].NetCnxs, 3, "honeycomb coordination")
		require.Len(t, atoms.Nodes[i].DualCnxs, 3, "net/dual parity")
	}
	for i := range rings.Nodes {
		require.Len(t, rings.Nodes[i].NetCnxs, 6, "hexagonal ring size")
		require.Len(t, rings.Nodes[i].DualCnxs, 6)
	}

	// Mutual adjacency within each network.
	for i := range atoms.Nodes {
		for _, j := range atoms.Nodes[i].NetCnxs {
			require.True(t, atoms.Nodes[j].HasNetCnx(i), "atom adjacency must be symmetric")
		}
	}
	for i := range rings.Nodes {
		for _, j := range rings.Nodes[i].NetCnxs {
			require.True(t, rings.Nodes[j].HasNetCnx(i), "ring adjacency must be symmetric")
		}
	}

	// Dual mutuality across the pair.
	for i := range atoms.Nodes {
		for _, r := range atoms.Nodes[i].DualCnxs {
			require.True(t, rings.Nodes[r].HasDualCnx(i))
		}
	}
}

func TestHexagonal_RejectsTinyCells(t *testing.T) {
	_, _, err := lattice.Hexagonal(2, 4)
	require.ErrorIs(t, err, lattice.ErrLatticeSize)
	_, _, err = lattice.Hexagonal(3, 3)
	require.ErrorIs(t, err, lattice.ErrLatticeSize)
}

func TestSquare_RegularGrid(t *testing.T) {
	atoms, rings, err := lattice.Square(4, 4)
	require.NoError(t, err)
	require.Equal(t, 16, atoms.NumNodes())
	require.Equal(t, 16, rings.NumNodes())

	for i := range atoms.Nodes {
		require.Len(t, atoms.Nodes[i].NetCnxs, 4)
		require.Len(t, atoms.Nodes[i].DualCnxs, 4)
	}
	for i := range rings.Nodes {
		require.Len(t, rings.Nodes[i].NetCnxs, 4)
		require.Len(t, rings.Nodes[i].DualCnxs, 4)
		for _, a := range rings.Nodes[i].DualCnxs {
			require.True(t, atoms.Nodes[a].HasDualCnx(i))
		}
	}
}

func TestStatistics_RegularLattice(t *testing.T) {
	_, rings, err := lattice.Hexagonal(3, 4)
	require.NoError(t, err)

	s := rings.Statistics()
	require.InDelta(t, 1.0, s.SizeFractions[6], 1e-12, "all rings are hexagons")
	require.Zero(t, s.Entropy, "single-size distribution has zero entropy")
	require.Zero(t, s.Pearson, "no degree variance, no assortativity")
	require.InDelta(t, 6.0, s.AverageCoordination, 1e-12)
}
