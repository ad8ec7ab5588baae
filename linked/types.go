// SPDX-License-Identifier: MIT
// Package: dualmc/linked
//
// types.go — options, enums and sentinel errors for the dual pair.

package linked

import "errors"

// Sentinel errors for pair construction and auditing.
var (
	// ErrBounds indicates invalid coordination or ring-size bounds.
	ErrBounds = errors.New("linked: invalid connection bounds")

	// ErrBoxMismatch indicates the two networks carry different periodic
	// box dimensions.
	ErrBoxMismatch = errors.New("linked: network box dimensions differ")

	// ErrInconsistent indicates the dual pair failed a consistency audit.
	ErrInconsistent = errors.New("linked: networks inconsistent")
)

// SelectionMode chooses how move selection weights nodes.
type SelectionMode int

const (
	// SelectionUniform weights every unfixed node equally.
	SelectionUniform SelectionMode = iota
	// SelectionWeighted biases selection toward the box centre with an
	// exponential decay in distance.
	SelectionWeighted
)

// Direction labels the rotational sense of a ring walk.
type Direction int

const (
	// Clockwise rotation (the lattice's canonical neighbour order).
	Clockwise Direction = iota
	// Anticlockwise rotation.
	Anticlockwise
)

// Default bounds: the graphene regime with mix moves allowed one step in
// either direction of 3-coordination.
const (
	DefaultMinCoordination = 2
	DefaultMaxCoordination = 4
	DefaultMinRingSize     = 3
	DefaultMaxRingSize     = 12
	DefaultWeightedDecay   = 1.0
)

// Options configures a Pair. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// MinCoordination / MaxCoordination bound atom degree in A.
	MinCoordination int
	MaxCoordination int

	// MinRingSize / MaxRingSize bound ring size (node degree in B).
	MinRingSize int
	MaxRingSize int

	// Selection picks the weighting scheme for move selection.
	Selection SelectionMode

	// WeightedDecay is the exponential decay constant used when Selection
	// is SelectionWeighted; ignored otherwise.
	WeightedDecay float64
}

// DefaultOptions returns the graphene-flavoured defaults.
func DefaultOptions() Options {
	return Options{
		MinCoordination: DefaultMinCoordination,
		MaxCoordination: DefaultMaxCoordination,
		MinRingSize:     DefaultMinRingSize,
		MaxRingSize:     DefaultMaxRingSize,
		Selection:       SelectionUniform,
		WeightedDecay:   DefaultWeightedDecay,
	}
}

// validate rejects bounds no lattice can satisfy.
func (o Options) validate() error {
	if o.MinCoordination < 1 || o.MaxCoordination < o.MinCoordination {
		return ErrBounds
	}
	if o.MinRingSize < DefaultMinRingSize || o.MaxRingSize < o.MinRingSize {
		return ErrBounds
	}

	return nil
}
