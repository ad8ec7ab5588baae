// SPDX-License-Identifier: MIT
// Package: dualmc/montecarlo
//
// types.go — controller options, counters and sentinel errors.

package montecarlo

import (
	"errors"
	"math"
)

// Sentinel errors of the Monte Carlo loop.
var (
	// ErrRetriesExhausted: no valid move was found within the retry budget
	// (node count squared attempts).
	ErrRetriesExhausted = errors.New("montecarlo: no valid move found within retry budget")

	// ErrBadOptions: options that no run can satisfy.
	ErrBadOptions = errors.New("montecarlo: invalid options")
)

// MoveType selects which topology move the controller drives.
type MoveType int

const (
	// MoveSwitch rotates bonds (ring sizes change, coordination fixed).
	MoveSwitch MoveType = iota
	// MoveMix transfers bonds (coordination changes by one on two atoms).
	MoveMix
)

func (m MoveType) String() string {
	if m == MoveMix {
		return "mix"
	}

	return "switch"
}

// Default geometric guards: generous enough for strained but sane
// lattices, tight enough to catch folded geometry before it anneals in.
const (
	DefaultMaximumBondLength = 2.0
	DefaultMaximumAngle      = math.Pi
)

// Options configures a Controller.
type Options struct {
	// Seed drives every random stream; 0 selects the fixed default seed.
	Seed int64

	// StartTemperature is the log10 of the initial Metropolis temperature.
	StartTemperature float64

	// MaximumBondLength rejects relaxed geometry with any touched bond
	// longer than this.
	MaximumBondLength float64

	// MaximumAngle (radians) rejects geometry with any neighbour gap wider
	// than this around a switched atom.
	MaximumAngle float64

	// MoveType selects switch or mix moves for the whole run.
	MoveType MoveType

	// MaintainConvexity additionally demands the 2π convexity certificate
	// on every involved atom after relaxation.
	MaintainConvexity bool
}

// DefaultOptions returns a switch-move controller at temperature 10^-4
// with the default geometric guards.
func DefaultOptions() Options {
	return Options{
		Seed:              0,
		StartTemperature:  -4,
		MaximumBondLength: DefaultMaximumBondLength,
		MaximumAngle:      DefaultMaximumAngle,
		MoveType:          MoveSwitch,
	}
}

func (o Options) validate() error {
	if o.MaximumBondLength <= 0 || o.MaximumAngle <= 0 {
		return ErrBadOptions
	}

	return nil
}

// Stats counts attempts and the fate of every candidate move.
type Stats struct {
	// Attempts counts calls to Step that found a candidate.
	Attempts int
	// Accepted counts committed moves.
	Accepted int
	// FailedEnergy counts Metropolis rejections.
	FailedEnergy int
	// FailedBondLength counts bond-length guard rejections.
	FailedBondLength int
	// FailedAngle counts angle guard rejections, pre- or post-relaxation.
	FailedAngle int
	// FailedConvexity counts convexity certificate rejections.
	FailedConvexity int
	// FailedRelaxation counts evaluator statuses other than success.
	FailedRelaxation int
}
