// SPDX-License-Identifier: MIT
// Package: dualmc/lattice
//
// node.go — the Node value type and its order-preserving list mutators.
//
// Contract:
//   - Replace* swaps one value for another in place, keeping list order.
//   - Remove* deletes the first occurrence, closing the gap.
//   - Insert*Between places a new value between two cyclically adjacent
//     existing values; if the pair is not adjacent the value is appended,
//     which keeps the operation total for callers repairing order later.
//   - All mutators report whether they found their anchor values, so the
//     moves package can turn a miss into a structural-inconsistency error
//     instead of silently corrupting the lattice.
//
// Complexity: every mutator is O(len(list)); adjacency lists are O(10).

package lattice

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dualmc/geom"
)

// Node is a single site of a network: an atom in the base network or a ring
// in the dual. Its index in Network.Nodes equals ID for the node's lifetime.
type Node struct {
	// ID is the node's stable index within its network.
	ID int

	// Crd is the node's 2D coordinate inside the periodic box.
	Crd geom.Vec2

	// NetCnxs lists neighbour indices within the same network, clockwise.
	NetCnxs []int

	// DualCnxs lists indices into the paired network, in traversal order.
	DualCnxs []int

	// AuxCnxs lists secondary connections used by 4-coordinate move
	// variants; empty for plain 3-coordinate lattices.
	AuxCnxs []int
}

// Clone returns a deep copy of the node (own backing arrays).
func (n Node) Clone() Node {
	c := n
	c.NetCnxs = append([]int(nil), n.NetCnxs...)
	c.DualCnxs = append([]int(nil), n.DualCnxs...)
	c.AuxCnxs = append([]int(nil), n.AuxCnxs...)

	return c
}

// Degree returns the number of same-network connections.
func (n Node) Degree() int { return len(n.NetCnxs) }

// DualDegree returns the number of cross-network connections.
func (n Node) DualDegree() int { return len(n.DualCnxs) }

// HasNetCnx reports whether v appears in NetCnxs.
func (n Node) HasNetCnx(v int) bool { return containsInt(n.NetCnxs, v) }

// HasDualCnx reports whether v appears in DualCnxs.
func (n Node) HasDualCnx(v int) bool { return containsInt(n.DualCnxs, v) }

// ReplaceNetCnx substitutes old with new in NetCnxs, preserving position.
func (n *Node) ReplaceNetCnx(old, new int) bool {
	return replaceInt(n.NetCnxs, old, new)
}

// ReplaceDualCnx substitutes old with new in DualCnxs, preserving position.
func (n *Node) ReplaceDualCnx(old, new int) bool {
	return replaceInt(n.DualCnxs, old, new)
}

// RemoveNetCnx deletes the first occurrence of v from NetCnxs.
func (n *Node) RemoveNetCnx(v int) bool {
	var ok bool
	n.NetCnxs, ok = removeInt(n.NetCnxs, v)

	return ok
}

// RemoveDualCnx deletes the first occurrence of v from DualCnxs.
func (n *Node) RemoveDualCnx(v int) bool {
	var ok bool
	n.DualCnxs, ok = removeInt(n.DualCnxs, v)

	return ok
}

// InsertNetCnxBetween places v between cyclically adjacent values a and b in
// NetCnxs; appends when a,b are not adjacent. Returns true on exact insert.
func (n *Node) InsertNetCnxBetween(v, a, b int) bool {
	var ok bool
	n.NetCnxs, ok = insertBetween(n.NetCnxs, v, a, b)

	return ok
}

// InsertDualCnxBetween places v between cyclically adjacent values a and b
// in DualCnxs; appends when a,b are not adjacent.
func (n *Node) InsertDualCnxBetween(v, a, b int) bool {
	var ok bool
	n.DualCnxs, ok = insertBetween(n.DualCnxs, v, a, b)

	return ok
}

// String renders the node for diagnostics.
func (n Node) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "node %d at (%.4f, %.4f) net=%v dual=%v", n.ID, n.Crd.X, n.Crd.Y, n.NetCnxs, n.DualCnxs)
	if len(n.AuxCnxs) > 0 {
		fmt.Fprintf(&b, " aux=%v", n.AuxCnxs)
	}

	return b.String()
}

// containsInt reports membership in a small slice.
func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}

// replaceInt substitutes the first occurrence of old with new.
func replaceInt(s []int, old, new int) bool {
	for i, x := range s {
		if x == old {
			s[i] = new

			return true
		}
	}

	return false
}

// removeInt deletes the first occurrence of v, preserving order.
func removeInt(s []int, v int) ([]int, bool) {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...), true
		}
	}

	return s, false
}

// insertBetween inserts v between the first cyclically adjacent pair (a,b)
// or (b,a); appends when no such pair exists.
func insertBetween(s []int, v, a, b int) ([]int, bool) {
	n := len(s)
	for i := 0; i < n; i++ {
		x, y := s[i], s[(i+1)%n]
		if (x == a && y == b) || (x == b && y == a) {
			s = append(s, 0)
			copy(s[i+2:], s[i+1:])
			s[i+1] = v

			return s, true
		}
	}

	return append(s, v), false
}
