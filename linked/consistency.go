// SPDX-License-Identifier: MIT
// Package: dualmc/linked
//
// consistency.go — the full mutual-consistency audit of a dual pair.
//
// Contract: every predicate here is read-only. A Pair that passes
// CheckConsistency satisfies the package-level consistency contract and is
// safe to hand to the moves package.

package linked

import (
	"fmt"

	"github.com/katalvlaran/dualmc/lattice"
)

// CheckConsistency audits the pair: symmetric adjacency inside each
// network, dual mutuality across the pair, net/dual parity per node,
// shared rings along every bond, and cached-distribution accuracy.
// Returns nil or an error wrapping ErrInconsistent with the first failure.
// Complexity: O(V·k²) for maximum degree k.
func (p *Pair) CheckConsistency() error {
	if err := checkSymmetric(p.A, "A"); err != nil {
		return err
	}
	if err := checkSymmetric(p.B, "B"); err != nil {
		return err
	}
	if err := checkParity(p.A, "A"); err != nil {
		return err
	}
	if err := checkParity(p.B, "B"); err != nil {
		return err
	}
	if err := p.checkDualMutuality(); err != nil {
		return err
	}
	if err := p.checkSharedRings(); err != nil {
		return err
	}

	return p.checkDistributions()
}

// checkSymmetric verifies j ∈ net[i].NetCnxs ⟺ i ∈ net[j].NetCnxs.
func checkSymmetric(net *lattice.Network, label string) error {
	for i := range net.Nodes {
		for _, j := range net.Nodes[i].NetCnxs {
			if j < 0 || j >= net.NumNodes() {
				return fmt.Errorf("%w: %s node %d lists out-of-range neighbour %d",
					ErrInconsistent, label, i, j)
			}
			if !net.Nodes[j].HasNetCnx(i) {
				return fmt.Errorf("%w: %s edge %d→%d lacks its mirror",
					ErrInconsistent, label, i, j)
			}
		}
	}

	return nil
}

// checkParity verifies len(NetCnxs) == len(DualCnxs) on every node. An
// atom touches exactly as many rings as it has bonds; a ring borders
// exactly as many rings as it has atoms.
func checkParity(net *lattice.Network, label string) error {
	for i := range net.Nodes {
		if len(net.Nodes[i].NetCnxs) != len(net.Nodes[i].DualCnxs) {
			return fmt.Errorf("%w: %s node %d has %d net but %d dual connections",
				ErrInconsistent, label, i,
				len(net.Nodes[i].NetCnxs), len(net.Nodes[i].DualCnxs))
		}
	}

	return nil
}

// checkDualMutuality verifies r ∈ A[i].DualCnxs ⟺ i ∈ B[r].DualCnxs in
// both directions.
func (p *Pair) checkDualMutuality() error {
	for i := range p.A.Nodes {
		for _, r := range p.A.Nodes[i].DualCnxs {
			if r < 0 || r >= p.B.NumNodes() {
				return fmt.Errorf("%w: atom %d lists out-of-range ring %d",
					ErrInconsistent, i, r)
			}
			if !p.B.Nodes[r].HasDualCnx(i) {
				return fmt.Errorf("%w: atom %d claims ring %d, ring disagrees",
					ErrInconsistent, i, r)
			}
		}
	}
	for r := range p.B.Nodes {
		for _, i := range p.B.Nodes[r].DualCnxs {
			if i < 0 || i >= p.A.NumNodes() {
				return fmt.Errorf("%w: ring %d lists out-of-range atom %d",
					ErrInconsistent, r, i)
			}
			if !p.A.Nodes[i].HasDualCnx(r) {
				return fmt.Errorf("%w: ring %d claims atom %d, atom disagrees",
					ErrInconsistent, r, i)
			}
		}
	}

	return nil
}

// checkSharedRings verifies that every bonded atom pair borders at least
// one common ring, and every adjacent ring pair shares at least one atom.
func (p *Pair) checkSharedRings() error {
	for i := range p.A.Nodes {
		for _, j := range p.A.Nodes[i].NetCnxs {
			if commonCount(p.A.Nodes[i].DualCnxs, p.A.Nodes[j].DualCnxs) == 0 {
				return fmt.Errorf("%w: bond %d–%d borders no common ring",
					ErrInconsistent, i, j)
			}
		}
	}
	for u := range p.B.Nodes {
		for _, v := range p.B.Nodes[u].NetCnxs {
			if commonCount(p.B.Nodes[u].DualCnxs, p.B.Nodes[v].DualCnxs) == 0 {
				return fmt.Errorf("%w: adjacent rings %d,%d share no atom",
					ErrInconsistent, u, v)
			}
		}
	}

	return nil
}

// checkDistributions verifies the cached degree tables against a fresh
// recount of both networks.
func (p *Pair) checkDistributions() error {
	for _, side := range []struct {
		net   *lattice.Network
		label string
	}{{p.A, "A"}, {p.B, "B"}} {
		node, edge := side.net.CountDistributions()
		if !lattice.DistributionsEqual(node, edge, side.net.NodeDistribution, side.net.EdgeDistribution) {
			return fmt.Errorf("%w: %s cached distributions diverge from recount",
				ErrInconsistent, side.label)
		}
	}

	return nil
}

// commonCount returns |a ∩ b| counting each element of a at most once.
func commonCount(a, b []int) int {
	n := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				n++

				break
			}
		}
	}

	return n
}
