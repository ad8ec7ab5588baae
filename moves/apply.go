// SPDX-License-Identifier: MIT
// Package: dualmc/moves
//
// apply.go — in-place rewiring of both networks plus incremental upkeep
// of the cached degree distributions.
//
// Contract:
//   - Apply assumes a Move freshly produced by GenerateSwitch/GenerateMix
//     against the pair's current state; a stale Move corrupts the pair.
//   - Distribution upkeep is a subtract-rewire-add cycle over the touched
//     nodes, so the cached tables stay recount-exact after every apply.

package moves

import (
	"github.com/katalvlaran/dualmc/lattice"
	"github.com/katalvlaran/dualmc/linked"
)

// Apply dispatches on the move kind and rewires the pair.
func Apply(p *linked.Pair, mv *Move) error {
	if mv.Kind == Kind43 {
		return ApplyMix(p, mv)
	}

	return ApplySwitch(p, mv)
}

// ApplySwitch rewires a bond switch: atoms 1,2 trade their partners 5,4,
// ring edge u-v dissolves and w-x forms, atom 1 migrates from ring u to
// ring x and atom 2 from ring v to ring w.
func ApplySwitch(p *linked.Pair, mv *Move) error {
	atom1, atom5, atom2, atom4 := mv.BondBreaks[0], mv.BondBreaks[1], mv.BondBreaks[2], mv.BondBreaks[3]
	ringU, ringV, ringW, ringX := mv.Rings[0], mv.Rings[1], mv.Rings[2], mv.Rings[3]

	atoms := []int{atom1, atom2, atom4, atom5}
	rings := []int{ringU, ringV, ringW, ringX}
	adjustDistributions(p.A, atoms, -1)
	adjustDistributions(p.B, rings, -1)

	ok := p.A.Nodes[atom1].ReplaceNetCnx(atom5, atom4)
	ok = p.A.Nodes[atom2].ReplaceNetCnx(atom4, atom5) && ok
	ok = p.A.Nodes[atom4].ReplaceNetCnx(atom2, atom1) && ok
	ok = p.A.Nodes[atom5].ReplaceNetCnx(atom1, atom2) && ok

	ok = p.A.Nodes[atom1].ReplaceDualCnx(ringU, ringX) && ok
	ok = p.A.Nodes[atom2].ReplaceDualCnx(ringV, ringW) && ok

	ok = p.B.Nodes[ringU].RemoveNetCnx(ringV) && ok
	ok = p.B.Nodes[ringV].RemoveNetCnx(ringU) && ok
	p.B.Nodes[ringW].InsertNetCnxBetween(ringX, ringU, ringV)
	p.B.Nodes[ringX].InsertNetCnxBetween(ringW, ringU, ringV)

	ok = p.B.Nodes[ringU].RemoveDualCnx(atom1) && ok
	ok = p.B.Nodes[ringV].RemoveDualCnx(atom2) && ok
	p.B.Nodes[ringW].InsertDualCnxBetween(atom2, atom5, atom1)
	p.B.Nodes[ringX].InsertDualCnxBetween(atom1, atom4, atom2)

	adjustDistributions(p.A, atoms, 1)
	adjustDistributions(p.B, rings, 1)

	if !ok {
		return &InconsistencyError{
			Op:     "apply switch",
			Nodes:  atoms,
			Detail: "an expected connection was absent during rewiring",
		}
	}

	return nil
}

// ApplyMix rewires a mix: the donor bond migrates from atom a to atom b,
// ring u sheds a, ring w absorbs b, and ring v's neighbour u becomes w.
// Involved carries [a b donor beyondB beyondW beyondV] as laid out by
// GenerateMix.
func ApplyMix(p *linked.Pair, mv *Move) error {
	a, donor, b := mv.BondBreaks[0], mv.BondBreaks[1], mv.BondMakes[0]
	beyondB, beyondW := mv.Involved[3], mv.Involved[4]
	ringU, ringV, ringW := mv.Rings[0], mv.Rings[1], mv.Rings[2]

	// The ring beyond a on ring w anchors v's insertion point; resolve it
	// before any rewiring.
	ringZ, err := CommonRing(p, a, beyondW, ringW)
	if err != nil {
		return err
	}

	atoms := []int{a, b, donor}
	rings := []int{ringU, ringV, ringW}
	adjustDistributions(p.A, atoms, -1)
	adjustDistributions(p.B, rings, -1)

	ok := p.A.Nodes[a].RemoveNetCnx(donor)
	ok = p.A.Nodes[donor].ReplaceNetCnx(a, b) && ok
	p.A.Nodes[b].InsertNetCnxBetween(donor, a, beyondB)

	ok = p.A.Nodes[a].RemoveDualCnx(ringU) && ok
	p.A.Nodes[b].InsertDualCnxBetween(ringW, ringU, ringV)

	ok = p.B.Nodes[ringU].RemoveNetCnx(ringV) && ok
	ok = p.B.Nodes[ringV].ReplaceNetCnx(ringU, ringW) && ok
	p.B.Nodes[ringW].InsertNetCnxBetween(ringV, ringU, ringZ)

	ok = p.B.Nodes[ringU].RemoveDualCnx(a) && ok
	p.B.Nodes[ringW].InsertDualCnxBetween(b, donor, a)

	adjustDistributions(p.A, atoms, 1)
	adjustDistributions(p.B, rings, 1)

	if !ok {
		return &InconsistencyError{
			Op:     "apply mix",
			Nodes:  atoms,
			Detail: "an expected connection was absent during rewiring",
		}
	}

	return nil
}

// adjustDistributions folds the degree contributions of the touched nodes
// (and their half of each cross edge) out of or into the cached tables.
// Call with sign -1 before rewiring and +1 after; together the two passes
// keep the tables recount-exact no matter how the touched region changed.
func adjustDistributions(net *lattice.Network, touched []int, sign int) {
	in := make(map[int]struct{}, len(touched))
	for _, id := range touched {
		in[id] = struct{}{}
	}
	for id := range in {
		di := net.Degree(id)
		net.BumpNode(di, sign)
		for _, j := range net.Nodes[id].NetCnxs {
			dj := net.Degree(j)
			net.BumpEdge(di, dj, sign)
			// Edges inside the touched set contribute once from each side;
			// the far half of a cross edge is folded here.
			if _, both := in[j]; !both {
				net.BumpEdge(dj, di, sign)
			}
		}
	}
}
