// SPDX-License-Identifier: MIT
package moves_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualmc/lattice"
	"github.com/katalvlaran/dualmc/linked"
	"github.com/katalvlaran/dualmc/moves"
)

func hexPair(t *testing.T, nx, ny int, opts linked.Options) *linked.Pair {
	t.Helper()
	atoms, rings, err := lattice.Hexagonal(nx, ny)
	require.NoError(t, err)
	p, err := linked.NewPair(atoms, rings, opts)
	require.NoError(t, err)

	return p
}

func squarePair(t *testing.T, nx, ny int, opts linked.Options) *linked.Pair {
	t.Helper()
	atoms, rings, err := lattice.Square(nx, ny)
	require.NoError(t, err)
	p, err := linked.NewPair(atoms, rings, opts)
	require.NoError(t, err)

	return p
}

// pairState deep-copies everything a move may touch, for byte-exact
// revert comparisons.
type pairState struct {
	nodesA, nodesB []lattice.Node
	nodeDistA      []int
	nodeDistB      []int
	edgeDistA      [][]int
	edgeDistB      [][]int
}

func captureState(p *linked.Pair) pairState {
	s := pairState{
		nodesA:    make([]lattice.Node, len(p.A.Nodes)),
		nodesB:    make([]lattice.Node, len(p.B.Nodes)),
		nodeDistA: p.A.CloneNodeDistribution(),
		nodeDistB: p.B.CloneNodeDistribution(),
		edgeDistA: p.A.CloneEdgeDistribution(),
		edgeDistB: p.B.CloneEdgeDistribution(),
	}
	for i := range p.A.Nodes {
		s.nodesA[i] = p.A.Nodes[i].Clone()
	}
	for i := range p.B.Nodes {
		s.nodesB[i] = p.B.Nodes[i].Clone()
	}

	return s
}

func requireStateEqual(t *testing.T, want pairState, p *linked.Pair) {
	t.Helper()
	require.Equal(t, want.nodesA, p.A.Nodes)
	require.Equal(t, want.nodesB, p.B.Nodes)
	require.Equal(t, want.nodeDistA, p.A.NodeDistribution)
	require.Equal(t, want.nodeDistB, p.B.NodeDistribution)
	require.Equal(t, want.edgeDistA, p.A.EdgeDistribution)
	require.Equal(t, want.edgeDistB, p.B.EdgeDistribution)
}

// connAt builds a Connection for a concrete bond without randomness.
func connAt(t *testing.T, p *linked.Pair, a, b int, kind moves.ConnectionKind) moves.Connection {
	t.Helper()
	common := moves.CommonRings(p, a, b)
	require.Len(t, common, 2)

	return moves.Connection{A: a, B: b, RingU: common[0], RingV: common[1], Kind: kind}
}

func TestGenerateSwitch_HoneycombDefect(t *testing.T) {
	p := hexPair(t, 4, 6, linked.DefaultOptions())

	a := 0
	b := p.A.Nodes[0].NetCnxs[0]
	mv, err := moves.GenerateSwitch(p, connAt(t, p, a, b, moves.Kind33))
	require.NoError(t, err)
	require.NoError(t, moves.Apply(p, mv))

	// One switch on a honeycomb carves the classic 5-5-7-7 defect: the two
	// flanking hexagons shrink, the two outer ones grow.
	require.Equal(t, 2, p.B.NodeDistribution[5])
	require.Equal(t, 2, p.B.NodeDistribution[7])
	require.Equal(t, 20, p.B.NodeDistribution[6])

	// Atom coordination is untouched by a switch.
	require.Equal(t, 3, p.A.MinCnxs())
	require.Equal(t, 3, p.A.MaxCnxs())

	require.NoError(t, p.CheckConsistency())
}

func TestGenerateSwitch_RejectsAtRingSizeFloor(t *testing.T) {
	opts := linked.DefaultOptions()
	opts.MinRingSize = 6
	p := hexPair(t, 4, 6, opts)

	_, err := moves.GenerateSwitch(p, connAt(t, p, 0, p.A.Nodes[0].NetCnxs[0], moves.Kind33))
	require.ErrorIs(t, err, moves.ErrRingBounds)
	require.ErrorIs(t, err, moves.ErrRejected, "bounds rejections are retryable, not fatal")
}

func TestGenerateSwitch_RejectsDegenerateSelection(t *testing.T) {
	p := hexPair(t, 3, 4, linked.DefaultOptions())

	_, err := moves.GenerateSwitch(p, moves.Connection{A: 0, B: 0, RingU: 1, RingV: 2})
	require.ErrorIs(t, err, moves.ErrDegenerateSelection)
}

func TestSnapshot_RevertsSwitchByteExact_Honeycomb(t *testing.T) {
	p := hexPair(t, 4, 6, linked.DefaultOptions())
	before := captureState(p)

	mv, err := moves.GenerateSwitch(p, connAt(t, p, 0, p.A.Nodes[0].NetCnxs[0], moves.Kind33))
	require.NoError(t, err)

	snap := moves.Take(p, mv)
	require.NoError(t, moves.Apply(p, mv))
	require.NoError(t, p.CheckConsistency(), "applied switch keeps the pair consistent")

	snap.Restore(p)
	requireStateEqual(t, before, p)
	require.NoError(t, p.CheckConsistency())
}

func TestSnapshot_RevertsSwitchByteExact_SquareGrid(t *testing.T) {
	opts := linked.DefaultOptions()
	opts.MaxRingSize = 8
	p := squarePair(t, 5, 5, opts)
	before := captureState(p)

	mv, err := moves.GenerateSwitch(p, connAt(t, p, 6, 7, moves.Kind44))
	require.NoError(t, err)

	snap := moves.Take(p, mv)
	require.NoError(t, moves.Apply(p, mv))
	require.NoError(t, p.CheckConsistency())

	snap.Restore(p)
	requireStateEqual(t, before, p)
}

// The soak drives a long accept/reject sequence with no geometry in the
// way and demands recount-exact caches plus full consistency at the end.
func TestMoves_SoakKeepsDistributionsExact(t *testing.T) {
	opts := linked.DefaultOptions()
	opts.MinRingSize = 5
	opts.MaxRingSize = 7
	p := hexPair(t, 6, 8, opts)
	rng := rand.New(rand.NewSource(1))

	const attempts = 1000
	applied := 0
	for i := 0; i < attempts; i++ {
		conn, err := moves.PickConnection(p, rng)
		if err != nil {
			require.ErrorIs(t, err, moves.ErrRejected)

			continue
		}
		mv, err := moves.GenerateSwitch(p, conn)
		if err != nil {
			require.ErrorIs(t, err, moves.ErrRejected)

			continue
		}
		snap := moves.Take(p, mv)
		require.NoError(t, moves.Apply(p, mv))
		if rng.Float64() < 0.7 {
			snap.Restore(p)
		} else {
			applied++
		}

		if i%100 == 0 {
			require.NoError(t, p.CheckConsistency(), "attempt %d", i)
		}
	}
	require.Greater(t, applied, 0, "the soak must accept some moves to mean anything")

	nodeA, edgeA := p.A.CountDistributions()
	require.True(t, lattice.DistributionsEqual(nodeA, edgeA, p.A.NodeDistribution, p.A.EdgeDistribution))
	nodeB, edgeB := p.B.CountDistributions()
	require.True(t, lattice.DistributionsEqual(nodeB, edgeB, p.B.NodeDistribution, p.B.EdgeDistribution))
	require.NoError(t, p.CheckConsistency())
}
