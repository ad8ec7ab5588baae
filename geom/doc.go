// SPDX-License-Identifier: MIT
// Package geom provides the 2D periodic-box vector math shared by every
// other dualmc package.
//
// All functions are pure: they take coordinates and box dimensions and
// return values without touching any shared state. The minimum-image
// convention is applied wherever two positions are compared, so callers can
// hand in raw (even unwrapped) coordinates.
//
// Angle conventions:
//
//   - ClockwiseAngle measures the angle of the displacement from one point
//     to another against the +x axis, increasing clockwise, in [0, 2π).
//   - ClockwiseAngleBetween measures the clockwise rotation carrying one
//     vector onto another, in [0, 2π).
//
// These two functions are the source of truth for "next neighbour" ordering
// throughout the library: adjacency lists sorted by ascending ClockwiseAngle
// enumerate a node's bonds the way a polygon walk visits its corners.
//
// Errors: none. Degenerate inputs (zero-length vectors) yield angle 0 rather
// than NaN so that sorting stays total.
package geom
