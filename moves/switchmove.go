// SPDX-License-Identifier: MIT
// Package: dualmc/moves
//
// switchmove.go — Wooten-Winer-Weaire bond switch generation.
//
// Contract: GenerateSwitch never mutates the pair. It either derives the
// full 14-atom neighbourhood and returns a Move, or reports why the
// candidate cannot switch (ErrRejected wraps) or why the topology is
// broken (*InconsistencyError).

package moves

import "github.com/katalvlaran/dualmc/linked"

// GenerateSwitch derives the bond and angle operations of a switch on the
// drawn connection. Atom numbering follows the package diagram: atoms 1,2
// are the bond, ring u flanks below (atoms 5,6), ring v above (atoms
// 3,4), rings w and x sit left and right.
func GenerateSwitch(p *linked.Pair, conn Connection) (*Move, error) {
	base1, base2 := conn.A, conn.B
	ringU, ringV := conn.RingU, conn.RingV
	if base1 == base2 || ringU == ringV {
		return nil, ErrDegenerateSelection
	}

	base5, err := CommonConnection(p, base1, ringU, base2)
	if err != nil {
		return nil, err
	}
	base6, err := CommonConnection(p, base2, ringU, base1)
	if err != nil {
		return nil, err
	}
	base3, err := CommonConnection(p, base1, ringV, base2)
	if err != nil {
		return nil, err
	}
	base4, err := CommonConnection(p, base2, ringV, base1)
	if err != nil {
		return nil, err
	}

	// The growing rings sit across the two bonds about to break. For
	// 3-coordinate atoms this coincides with the ring beyond atom 6 on u;
	// deriving through the broken bond also covers 4-coordinate endpoints,
	// where the two no longer agree.
	ringW, err := CommonRing(p, base1, base5, ringU)
	if err != nil {
		return nil, err
	}
	ringX, err := CommonRing(p, base2, base4, ringV)
	if err != nil {
		return nil, err
	}
	// The corner atoms 11 and 14 live on the rings behind edges 1-3 and
	// 2-6; resolve those rings the same arity-independent way.
	ringBehind3, err := CommonRing(p, base1, base3, ringV)
	if err != nil {
		return nil, err
	}
	ringBehind6, err := CommonRing(p, base2, base6, ringU)
	if err != nil {
		return nil, err
	}

	base11, err := CommonConnection(p, base3, ringBehind3, base1)
	if err != nil {
		return nil, err
	}
	base7, err := CommonConnection(p, base3, ringV, base1)
	if err != nil {
		return nil, err
	}
	base8, err := CommonConnection(p, base4, ringV, base2)
	if err != nil {
		return nil, err
	}
	base12, err := CommonConnection(p, base4, ringX, base2)
	if err != nil {
		return nil, err
	}
	base14, err := CommonConnection(p, base6, ringBehind6, base2)
	if err != nil {
		return nil, err
	}
	base10, err := CommonConnection(p, base6, ringU, base2)
	if err != nil {
		return nil, err
	}
	base9, err := CommonConnection(p, base5, ringU, base1)
	if err != nil {
		return nil, err
	}
	base13, err := CommonConnection(p, base5, ringW, base1)
	if err != nil {
		return nil, err
	}

	// The shared edge of two edge-sharing triangles cannot switch.
	if base5 == base6 || base3 == base4 {
		return nil, ErrEdgeSharingTriangles
	}
	// A ring kept at three neighbours or fewer would collapse below a
	// triangle after losing one.
	if uniqueCount(p.B.Nodes[ringU].NetCnxs) <= 3 || uniqueCount(p.B.Nodes[ringV].NetCnxs) <= 3 {
		return nil, ErrRingBounds
	}
	// Shrinking u,v and growing w,x must stay inside the ring-size window.
	opts := p.Options()
	if len(p.B.Nodes[ringU].NetCnxs) == opts.MinRingSize ||
		len(p.B.Nodes[ringV].NetCnxs) == opts.MinRingSize ||
		len(p.B.Nodes[ringW].NetCnxs) == opts.MaxRingSize ||
		len(p.B.Nodes[ringX].NetCnxs) == opts.MaxRingSize {
		return nil, ErrRingBounds
	}

	mv := &Move{
		Kind:       conn.Kind,
		BondBreaks: []int{base1, base5, base2, base4},
		BondMakes:  []int{base1, base4, base2, base5},
		Rings:      [4]int{ringU, ringV, ringW, ringX},
		Involved: []int{base1, base2, base3, base4, base5,
			base6, base7, base8, base9, base10,
			base11, base12, base13, base14},
	}

	// Angle bookkeeping branches on the flanking ring sizes, detected
	// through neighbourhood coincidences rather than ring lengths: in a
	// 4-ring the far corners meet (7==4), in a 5-ring the apexes do (7==8).
	switch {
	case base7 == base4: // 4-membered ring v
		mv.AngleBreaks = append(mv.AngleBreaks,
			base3, base4, base2,
			base12, base4, base2,
			base1, base2, base4,
			base6, base2, base4)
		mv.AngleMakes = append(mv.AngleMakes,
			base3, base4, base1,
			base12, base4, base1,
			base3, base1, base4,
			base2, base1, base4)
	case base7 == base8: // 5-membered ring v
		mv.AngleBreaks = append(mv.AngleBreaks,
			base7, base4, base2,
			base12, base4, base2,
			base1, base2, base4,
			base6, base2, base4)
		mv.AngleMakes = append(mv.AngleMakes,
			base7, base4, base1,
			base12, base4, base1,
			base2, base1, base4,
			base3, base1, base4)
	default: // 6+ membered ring v
		mv.AngleBreaks = append(mv.AngleBreaks,
			base2, base4, base8,
			base2, base4, base12,
			base4, base2, base1,
			base4, base2, base6)
		mv.AngleMakes = append(mv.AngleMakes,
			base1, base4, base8,
			base1, base4, base12,
			base4, base1, base2,
			base4, base1, base3)
	}

	switch {
	case base5 == base10: // 4-membered ring u
		mv.AngleBreaks = append(mv.AngleBreaks,
			base13, base5, base1,
			base6, base5, base1,
			base3, base1, base5,
			base2, base1, base5)
		mv.AngleMakes = append(mv.AngleMakes,
			base13, base5, base2,
			base6, base5, base2,
			base1, base2, base5,
			base6, base2, base5)
	case base9 == base10: // 5-membered ring u
		mv.AngleBreaks = append(mv.AngleBreaks,
			base13, base5, base1,
			base9, base5, base1,
			base3, base1, base5,
			base2, base1, base5)
		mv.AngleMakes = append(mv.AngleMakes,
			base13, base5, base2,
			base9, base5, base2,
			base1, base2, base5,
			base6, base2, base5)
	default: // 6+ membered ring u
		mv.AngleBreaks = append(mv.AngleBreaks,
			base1, base5, base9,
			base1, base5, base13,
			base5, base1, base2,
			base5, base1, base3)
		mv.AngleMakes = append(mv.AngleMakes,
			base2, base5, base9,
			base2, base5, base13,
			base1, base2, base5,
			base6, base2, base5)
	}

	return mv, nil
}

// uniqueCount returns the number of distinct values in ids.
func uniqueCount(ids []int) int {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}

	return len(seen)
}
