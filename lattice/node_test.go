// SPDX-License-Identifier: MIT
// Package lattice_test verifies the order-preserving list mutators that all
// move application rests on.
package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualmc/lattice"
)

func TestNode_ReplaceKeepsPosition(t *testing.T) {
	n := lattice.Node{NetCnxs: []int{4, 7, 9}}
	require.True(t, n.ReplaceNetCnx(7, 12))
	require.Equal(t, []int{4, 12, 9}, n.NetCnxs)

	require.False(t, n.ReplaceNetCnx(7, 1), "a missing anchor must be reported")
	require.Equal(t, []int{4, 12, 9}, n.NetCnxs)
}

func TestNode_RemoveClosesGap(t *testing.T) {
	n := lattice.Node{DualCnxs: []int{3, 5, 8, 5}}
	require.True(t, n.RemoveDualCnx(5))
	require.Equal(t, []int{3, 8, 5}, n.DualCnxs, "only the first occurrence goes")
	require.False(t, n.RemoveDualCnx(99))
}

func TestNode_InsertBetween_CyclicPairs(t *testing.T) {
	// Adjacent in the middle.
	n := lattice.Node{NetCnxs: []int{1, 2, 3, 4}}
	require.True(t, n.InsertNetCnxBetween(9, 2, 3))
	require.Equal(t, []int{1, 2, 9, 3, 4}, n.NetCnxs)

	// Adjacent across the cyclic seam (last, first).
	n = lattice.Node{NetCnxs: []int{1, 2, 3, 4}}
	require.True(t, n.InsertNetCnxBetween(9, 4, 1))
	require.Equal(t, []int{1, 2, 3, 4, 9}, n.NetCnxs)

	// Reversed anchor order still matches.
	n = lattice.Node{DualCnxs: []int{1, 2, 3}}
	require.True(t, n.InsertDualCnxBetween(9, 2, 1))
	require.Equal(t, []int{1, 9, 2, 3}, n.DualCnxs)

	// Non-adjacent anchors fall back to append and report it.
	n = lattice.Node{NetCnxs: []int{1, 2, 3, 4}}
	require.False(t, n.InsertNetCnxBetween(9, 1, 3))
	require.Equal(t, []int{1, 2, 3, 4, 9}, n.NetCnxs)
}

func TestNode_CloneIsDeep(t *testing.T) {
	n := lattice.Node{ID: 3, NetCnxs: []int{1, 2}, DualCnxs: []int{4}, AuxCnxs: []int{6}}
	c := n.Clone()
	c.NetCnxs[0] = 99
	c.DualCnxs[0] = 99
	require.Equal(t, []int{1, 2}, n.NetCnxs)
	require.Equal(t, []int{4}, n.DualCnxs)
	require.Equal(t, n.ID, c.ID)
}
