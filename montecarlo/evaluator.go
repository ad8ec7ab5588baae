// SPDX-License-Identifier: MIT
// Package: dualmc/montecarlo
//
// evaluator.go — the energy evaluator boundary.
//
// Contract: the controller owns all topology; the evaluator sees only
// coordinates plus the bond/angle deltas of the candidate move, relaxes
// the local geometry, and reports the resulting energy. Implementations
// range from in-process spring models to external engines; blocking ones
// must honour the context.

package montecarlo

import "context"

// EvalStatus classifies a relaxation outcome.
type EvalStatus int

const (
	// EvalSuccess: relaxation converged, energy and coordinates are valid.
	EvalSuccess EvalStatus = iota
	// EvalZeroForce: the gradient vanished before convergence.
	EvalZeroForce
	// EvalIterationLimit: relaxation ran out of iterations.
	EvalIterationLimit
	// EvalIntersection: relaxed geometry self-intersects.
	EvalIntersection
	// EvalNonConvex: relaxed geometry lost local convexity.
	EvalNonConvex
)

func (s EvalStatus) String() string {
	switch s {
	case EvalSuccess:
		return "success"
	case EvalZeroForce:
		return "zero force"
	case EvalIterationLimit:
		return "iteration limit"
	case EvalIntersection:
		return "intersection"
	case EvalNonConvex:
		return "non-convex"
	default:
		return "unknown"
	}
}

// EvalRequest carries one candidate geometry to the evaluator.
type EvalRequest struct {
	// Coords is the full flat coordinate array with the trial bond
	// rotation already applied. The evaluator must not retain it.
	Coords []float64

	// Moved lists the atoms whose neighbourhood changed; local relaxation
	// schemes may restrict their active region to it.
	Moved []int

	// Bond and angle deltas of the move, as flat pairs/triples.
	BondBreaks  []int
	BondMakes   []int
	AngleBreaks []int
	AngleMakes  []int
}

// EvalResult reports the relaxed geometry and its energy.
type EvalResult struct {
	// Coords is the relaxed flat coordinate array.
	Coords []float64
	// Energy is the total energy of the relaxed state.
	Energy float64
	// Status qualifies the relaxation; anything but EvalSuccess makes the
	// controller reject the move.
	Status EvalStatus
}

// Evaluator relaxes candidate geometries and prices them.
type Evaluator interface {
	// Evaluate relaxes the request's geometry. A non-nil error is fatal
	// to the run; recoverable trouble belongs in EvalResult.Status.
	Evaluate(ctx context.Context, req EvalRequest) (EvalResult, error)
}
