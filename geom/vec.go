// SPDX-License-Identifier: MIT
// Package: dualmc/geom
//
// vec.go — Vec2 and minimum-image displacement helpers.
//
// Contract:
//   - Dimensions components must be > 0 for any periodic operation.
//   - PBCVector(from, to, dims) is the shortest displacement from `from`
//     to `to` under periodic boundaries (minimum-image convention).
//   - Wrap maps a coordinate into [0, dims) componentwise.
//
// Complexity: all helpers are O(1).

package geom

import "math"

// TwoPi is the full turn; exported because several packages compare angle
// sums against it (convexity certificates).
const TwoPi = 2 * math.Pi

// Vec2 is a 2D coordinate or displacement.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Dot returns the scalar product v·w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z-component of the 2D cross product v×w.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// PBCVector returns the minimum-image displacement carrying `from` to `to`
// inside a periodic box of size dims.
func PBCVector(from, to, dims Vec2) Vec2 {
	d := to.Sub(from)
	d.X -= dims.X * math.Round(d.X/dims.X)
	d.Y -= dims.Y * math.Round(d.Y/dims.Y)

	return d
}

// Distance returns the minimum-image distance between two points.
func Distance(a, b, dims Vec2) float64 {
	return PBCVector(a, b, dims).Norm()
}

// Wrap maps p into the primary periodic cell [0, dims.X) × [0, dims.Y).
func Wrap(p, dims Vec2) Vec2 {
	p.X -= dims.X * math.Floor(p.X/dims.X)
	p.Y -= dims.Y * math.Floor(p.Y/dims.Y)

	return p
}

// At reads the i-th coordinate pair out of a flat [x0 y0 x1 y1 ...] slice.
// The caller guarantees 2*i+1 < len(flat).
func At(flat []float64, i int) Vec2 {
	return Vec2{flat[2*i], flat[2*i+1]}
}

// Put writes v into the i-th coordinate pair of a flat slice.
func Put(flat []float64, i int, v Vec2) {
	flat[2*i] = v.X
	flat[2*i+1] = v.Y
}
