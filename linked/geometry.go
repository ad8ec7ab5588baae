// SPDX-License-Identifier: MIT
// Package: dualmc/linked
//
// geometry.go — geometric predicates over candidate coordinates.
//
// Contract: every Check* predicate evaluates caller-supplied flat
// coordinates (not the pair's committed state), so the controller can vet
// a trial geometry before paying for relaxation. CheckAnglesWithinRange
// re-arranges neighbour order as a side effect — see its doc comment.

package linked

import (
	"math"

	"github.com/katalvlaran/dualmc/geom"
	"github.com/katalvlaran/dualmc/lattice"
)

// convexityTol bounds |Σ angles − 2π| for a node to certify as convex.
const convexityTol = 1e-9

// ArrangeClockwise re-sorts the connection lists of the given atoms and
// rings into clockwise angular order around each node, using the pair's
// committed coordinates. Call it after every accepted move for exactly
// the touched nodes.
func (p *Pair) ArrangeClockwise(atomIDs, ringIDs []int) {
	atomAt := func(i int) geom.Vec2 { return p.A.Nodes[i].Crd }
	ringAt := func(i int) geom.Vec2 { return p.B.Nodes[i].Crd }

	for _, id := range atomIDs {
		c := p.A.Nodes[id].Crd
		lattice.SortClockwise(c, p.A.Dimensions, p.A.Nodes[id].NetCnxs, atomAt)
		lattice.SortClockwise(c, p.A.Dimensions, p.A.Nodes[id].DualCnxs, ringAt)
	}
	for _, id := range ringIDs {
		c := p.B.Nodes[id].Crd
		lattice.SortClockwise(c, p.B.Dimensions, p.B.Nodes[id].NetCnxs, ringAt)
		lattice.SortClockwise(c, p.B.Dimensions, p.B.Nodes[id].DualCnxs, atomAt)
	}
}

// CheckClockwiseNeighbours reports whether atom id's stored neighbour
// order matches ascending clockwise angles, up to a cyclic rotation,
// under the given coordinates.
func (p *Pair) CheckClockwiseNeighbours(id int, coords []float64) bool {
	nbrs := p.A.Nodes[id].NetCnxs
	if len(nbrs) < 3 {
		return true
	}
	centre := geom.At(coords, id)
	angles := make([]float64, len(nbrs))
	for k, j := range nbrs {
		angles[k] = geom.ClockwiseAngle(centre, geom.At(coords, j), p.A.Dimensions)
	}

	// Clockwise order means ascending angles up to a cyclic rotation, so at
	// most one descent is allowed around the loop.
	descents := 0
	for k := range angles {
		if angles[(k+1)%len(angles)] < angles[k] {
			descents++
		}
	}

	return descents <= 1
}

// CheckAnglesWithinRange reports whether, for every listed atom, each
// angle between consecutive clockwise neighbours is at most maxAngle
// (radians). The neighbour lists of the listed atoms are re-arranged
// clockwise under the given coordinates as a side effect; committed moves
// re-arrange again with relaxed coordinates, so the mutation is benign.
func (p *Pair) CheckAnglesWithinRange(maxAngle float64, atomIDs []int, coords []float64) bool {
	for _, id := range atomIDs {
		centre := geom.At(coords, id)
		nbrs := p.A.Nodes[id].NetCnxs
		lattice.SortClockwise(centre, p.A.Dimensions, nbrs, func(i int) geom.Vec2 {
			return geom.At(coords, i)
		})
		for k := range nbrs {
			v1 := geom.PBCVector(centre, geom.At(coords, nbrs[k]), p.A.Dimensions)
			v2 := geom.PBCVector(centre, geom.At(coords, nbrs[(k+1)%len(nbrs)]), p.A.Dimensions)
			if geom.ClockwiseAngleBetween(v1, v2) > maxAngle {
				return false
			}
		}
	}

	return true
}

// CheckBondLengths reports whether every bond incident to the listed
// atoms is at most maxLength under the given coordinates.
func (p *Pair) CheckBondLengths(maxLength float64, atomIDs []int, coords []float64) bool {
	for _, id := range atomIDs {
		from := geom.At(coords, id)
		for _, j := range p.A.Nodes[id].NetCnxs {
			if geom.Distance(from, geom.At(coords, j), p.A.Dimensions) > maxLength {
				return false
			}
		}
	}

	return true
}

// CheckConvexity reports whether every listed atom is locally convex:
// the clockwise angles between its consecutive neighbours must sum to 2π
// within convexityTol. Assumes neighbour lists are already arranged
// clockwise for the given coordinates (CheckAnglesWithinRange does that).
func (p *Pair) CheckConvexity(atomIDs []int, coords []float64) bool {
	for _, id := range atomIDs {
		centre := geom.At(coords, id)
		nbrs := p.A.Nodes[id].NetCnxs
		if len(nbrs) < 3 {
			continue
		}
		sum := 0.0
		for k := range nbrs {
			v1 := geom.PBCVector(centre, geom.At(coords, nbrs[k]), p.A.Dimensions)
			v2 := geom.PBCVector(centre, geom.At(coords, nbrs[(k+1)%len(nbrs)]), p.A.Dimensions)
			sum += geom.ClockwiseAngleBetween(v1, v2)
		}
		if math.Abs(sum-geom.TwoPi) > convexityTol {
			return false
		}
	}

	return true
}

// RingsDirection reports the winding sense of the given ring centres,
// visited in order, around their mean point. The controller passes the
// four rings surrounding a switched bond so the trial rotation follows
// the lattice chirality. Anticlockwise is reported as soon as the
// clockwise angle walk descends twice.
func (p *Pair) RingsDirection(ringIDs []int) Direction {
	var mid geom.Vec2
	for _, id := range ringIDs {
		mid = mid.Add(p.B.Nodes[id].Crd)
	}
	mid = mid.Scale(1 / float64(len(ringIDs)))

	descents := 0
	prev := geom.ClockwiseAngle(mid, p.B.Nodes[ringIDs[len(ringIDs)-1]].Crd, p.B.Dimensions)
	for _, id := range ringIDs {
		a := geom.ClockwiseAngle(mid, p.B.Nodes[id].Crd, p.B.Dimensions)
		if a < prev {
			descents++
			if descents == 2 {
				return Anticlockwise
			}
		}
		prev = a
	}

	return Clockwise
}

// RotateBond writes a 90° rotation of atoms a and b about their bond
// midpoint into coords, respecting periodic images. The rotation sense
// follows direction so the trial geometry matches the lattice chirality.
func (p *Pair) RotateBond(a, b int, direction Direction, coords []float64) {
	pa := geom.At(coords, a)
	half := geom.PBCVector(pa, geom.At(coords, b), p.A.Dimensions).Scale(0.5)
	mid := pa.Add(half)

	rot := func(v geom.Vec2) geom.Vec2 {
		if direction == Clockwise {
			return geom.Vec2{X: v.Y, Y: -v.X}
		}

		return geom.Vec2{X: -v.Y, Y: v.X}
	}

	geom.Put(coords, a, geom.Wrap(mid.Add(rot(half.Scale(-1))), p.A.Dimensions))
	geom.Put(coords, b, geom.Wrap(mid.Add(rot(half)), p.A.Dimensions))
}
