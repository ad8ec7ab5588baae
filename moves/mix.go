// SPDX-License-Identifier: MIT
// Package: dualmc/moves
//
// mix.go — coordination mix move generation.
//
// A mix transfers one bond across a 4-3 connection: the 4-coordinate atom
// gives up its bond to a shared-ring neighbour, which rebonds to the
// 3-coordinate atom. Coordinations swap (4,3) → (3,4); one flanking ring
// shrinks and the ring behind the moved bond grows.

package moves

import "github.com/katalvlaran/dualmc/linked"

// GenerateMix derives the bond and angle operations of a mix on the drawn
// 4-3 connection.
//
//	   w   |   v            w  donor  v
//	       |                     |
//	donor--a====b    --->    a===b
//	       |                     |
//	   …   u   …             …   u   …
//
// Atom a is the 4-coordinate end (swapped into place if the draw came in
// 3-4 order), donor its neighbour on ring u beyond the bond. Breaking
// a-donor and making b-donor drops a from ring u and grows ring w by b.
func GenerateMix(p *linked.Pair, conn Connection) (*Move, error) {
	a, b := conn.A, conn.B
	ringU, ringV := conn.RingU, conn.RingV
	if a == b || ringU == ringV {
		return nil, ErrDegenerateSelection
	}
	if p.A.Degree(a) < p.A.Degree(b) {
		a, b = b, a
	}

	donor, err := CommonConnection(p, a, ringU, b)
	if err != nil {
		return nil, err
	}
	ringW, err := CommonRing(p, a, donor, ringU)
	if err != nil {
		return nil, err
	}
	if ringW == ringV {
		return nil, ErrDegenerateSelection
	}
	if p.A.Nodes[b].HasNetCnx(donor) {
		return nil, ErrAlreadyBonded
	}

	opts := p.Options()
	if p.A.Degree(a)-1 < opts.MinCoordination || p.A.Degree(b)+1 > opts.MaxCoordination {
		return nil, ErrCoordinationBounds
	}
	if len(p.B.Nodes[ringU].NetCnxs) == opts.MinRingSize ||
		len(p.B.Nodes[ringW].NetCnxs) == opts.MaxRingSize {
		return nil, ErrRingBounds
	}

	// The remaining local corners, for geometry checks and angle terms:
	// beyond b on ring u, beyond a on rings w and v.
	beyondB, err := CommonConnection(p, b, ringU, a)
	if err != nil {
		return nil, err
	}
	beyondW, err := CommonConnection(p, a, ringW, donor)
	if err != nil {
		return nil, err
	}
	beyondV, err := CommonConnection(p, a, ringV, b)
	if err != nil {
		return nil, err
	}

	mv := &Move{
		Kind:       Kind43,
		BondBreaks: []int{a, donor},
		BondMakes:  []int{b, donor},
		Rings:      [4]int{ringU, ringV, ringW, ringV},
		Involved:   []int{a, b, donor, beyondB, beyondW, beyondV},
	}

	// Every angle through the broken bond goes; every angle through the
	// made bond arrives.
	for _, n := range p.A.Nodes[donor].NetCnxs {
		if n != a {
			mv.AngleBreaks = append(mv.AngleBreaks, n, donor, a)
			mv.AngleMakes = append(mv.AngleMakes, n, donor, b)
		}
	}
	for _, n := range p.A.Nodes[a].NetCnxs {
		if n != donor {
			mv.AngleBreaks = append(mv.AngleBreaks, n, a, donor)
		}
	}
	for _, n := range p.A.Nodes[b].NetCnxs {
		mv.AngleMakes = append(mv.AngleMakes, n, b, donor)
	}

	return mv, nil
}
