// SPDX-License-Identifier: MIT
// Package: dualmc/geom
//
// angles.go — clockwise angle measurements under periodic boundaries.
//
// Determinism:
//   - Pure float math; identical inputs give identical outputs on every
//     platform that implements IEEE-754 (math.Atan2/math.Acos are exact to
//     the stdlib contract).

package geom

import "math"

// ClockwiseAngle returns the clockwise angle, in [0, 2π), of the
// minimum-image displacement from `from` to `to` measured against +x.
//
// Clockwise means the angle grows as the target point rotates in the -y
// sense around `from`; this matches the neighbour-ordering convention of
// the lattice packages.
func ClockwiseAngle(from, to, dims Vec2) float64 {
	d := PBCVector(from, to, dims)
	// atan2 covers (-π, π] counter-clockwise; shift to [0, 2π) first.
	a := math.Atan2(d.Y, d.X)
	if a < 0 {
		a += TwoPi
	}
	a = TwoPi - a
	if a >= TwoPi {
		a -= TwoPi
	}

	return a
}

// ClockwiseAngleBetween returns the clockwise rotation, in [0, 2π), that
// carries v1 onto v2. Zero-length input yields 0.
func ClockwiseAngleBetween(v1, v2 Vec2) float64 {
	mag := v1.Norm() * v2.Norm()
	if mag == 0 {
		return 0
	}
	cos := v1.Dot(v2) / mag
	// Clamp against rounding drift before acos.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	a := math.Acos(cos)
	// A positive cross product means v2 lies counter-clockwise of v1, so the
	// clockwise rotation is the complement.
	if v1.Cross(v2) > 0 {
		a = TwoPi - a
	}

	return a
}
