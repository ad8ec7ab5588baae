// SPDX-License-Identifier: MIT
// Package: dualmc/montecarlo
//
// controller.go — the Monte Carlo loop: draw, rewire, relax, decide.
//
// Contract:
//   - The controller takes exclusive ownership of the pair; nothing else
//     may mutate it during a run.
//   - Geometry guards short-circuit: a candidate whose rotated trial
//     coordinates already violate the angle or bond-length guard is
//     rejected before the evaluator is ever invoked.
//   - Rejections restore the pair byte-for-byte; errors abort the run.

package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/dualmc/linked"
	"github.com/katalvlaran/dualmc/moves"
)

// Controller drives a Monte Carlo run over one dual pair.
type Controller struct {
	pair      *linked.Pair
	evaluator Evaluator
	mc        *Metropolis
	rng       *rand.Rand
	log       *slog.Logger
	opts      Options

	energy float64
	stats  Stats
}

// New builds a controller, runs one full relaxation to price the initial
// state, and leaves the pair ready for stepping. A nil logger discards.
func New(pair *linked.Pair, evaluator Evaluator, opts Options, log *slog.Logger) (*Controller, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("%w: %+v", err, opts)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Controller{
		pair:      pair,
		evaluator: evaluator,
		mc:        NewMetropolis(deriveSeed(opts.Seed, 1), opts.StartTemperature),
		rng:       deriveRNG(opts.Seed, 0),
		log:       log,
		opts:      opts,
	}

	res, err := evaluator.Evaluate(context.Background(), EvalRequest{Coords: pair.Coords()})
	if err != nil {
		return nil, fmt.Errorf("montecarlo: initial relaxation: %w", err)
	}
	if err := pair.PushCoords(res.Coords); err != nil {
		return nil, err
	}
	c.energy = res.Energy
	log.Info("initial state relaxed", "energy", c.energy, "atoms", pair.A.NumNodes(), "rings", pair.B.NumNodes())

	return c, nil
}

// Energy returns the energy of the current committed state.
func (c *Controller) Energy() float64 { return c.energy }

// Stats returns a copy of the run counters.
func (c *Controller) Stats() Stats { return c.stats }

// SetTemperature retunes the Metropolis criterion to 10^logTemperature.
func (c *Controller) SetTemperature(logTemperature float64) {
	c.mc.SetTemperature(logTemperature)
}

// Step attempts one move: find a valid candidate (up to node-count² draws),
// rewire, rotate, relax, guard, and decide. A geometric or Metropolis
// rejection is a normal outcome and returns nil; ErrRetriesExhausted or an
// inconsistency aborts.
func (c *Controller) Step(ctx context.Context) error {
	conn, mv, err := c.findMove()
	if err != nil {
		return err
	}
	c.stats.Attempts++

	snap := moves.Take(c.pair, mv)
	if err := moves.Apply(c.pair, mv); err != nil {
		return err
	}

	// Trial geometry: rotate the switched bond a quarter turn in the
	// lattice's own winding sense.
	coords := make([]float64, len(c.pair.Coords()))
	copy(coords, c.pair.Coords())
	if c.opts.MoveType == MoveSwitch {
		quad := []int{mv.Rings[1], mv.Rings[3], mv.Rings[0], mv.Rings[2]}
		c.pair.RotateBond(conn.A, conn.B, c.pair.RingsDirection(quad), coords)
	}

	// Guard short-circuit on the trial coordinates: no point paying for
	// relaxation when the rotated bond already folds its surroundings.
	if !c.pair.CheckAnglesWithinRange(c.opts.MaximumAngle, []int{conn.A, conn.B}, coords) {
		c.stats.FailedAngle++
		snap.Restore(c.pair)
		c.log.Debug("rejected before relaxation: angle out of range", "atomA", conn.A, "atomB", conn.B)

		return nil
	}
	if !c.pair.CheckBondLengths(c.opts.MaximumBondLength, []int{conn.A, conn.B}, coords) {
		c.stats.FailedBondLength++
		snap.Restore(c.pair)
		c.log.Debug("rejected before relaxation: bond too long", "atomA", conn.A, "atomB", conn.B)

		return nil
	}

	res, err := c.evaluator.Evaluate(ctx, EvalRequest{
		Coords:      coords,
		Moved:       mv.Involved,
		BondBreaks:  mv.BondBreaks,
		BondMakes:   mv.BondMakes,
		AngleBreaks: mv.AngleBreaks,
		AngleMakes:  mv.AngleMakes,
	})
	if err != nil {
		snap.Restore(c.pair)

		return fmt.Errorf("montecarlo: relaxation: %w", err)
	}

	if ok := c.admit(conn, mv, res); !ok {
		snap.Restore(c.pair)

		return nil
	}

	// Commit: install relaxed coordinates, repair neighbour order around
	// the disturbed region, rebias selection.
	if err := c.pair.PushCoords(res.Coords); err != nil {
		return err
	}
	c.pair.ArrangeClockwise(mv.Involved, mv.Rings[:])
	c.pair.UpdateWeights()
	c.energy = res.Energy
	c.stats.Accepted++
	c.log.Info("move accepted", "kind", conn.Kind.String(), "energy", c.energy, "accepted", c.stats.Accepted)

	return nil
}

// Run performs steps moves (attempted candidates, accepted or not),
// stopping early on context cancellation or a fatal error.
func (c *Controller) Run(ctx context.Context, steps int) error {
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Step(ctx); err != nil {
			return err
		}
	}

	return nil
}

// findMove draws candidates until one generates, bounded by node count
// squared like the pick loop it replaces.
func (c *Controller) findMove() (moves.Connection, *moves.Move, error) {
	budget := c.pair.A.NumNodes() * c.pair.A.NumNodes()
	for i := 0; i < budget; i++ {
		conn, err := moves.PickConnection(c.pair, c.rng)
		if err != nil {
			if errors.Is(err, moves.ErrRejected) {
				continue
			}

			return moves.Connection{}, nil, err
		}

		var mv *moves.Move
		if c.opts.MoveType == MoveMix {
			mv, err = moves.GenerateMix(c.pair, conn)
		} else {
			mv, err = moves.GenerateSwitch(c.pair, conn)
		}
		if err != nil {
			if errors.Is(err, moves.ErrRejected) {
				continue
			}

			return moves.Connection{}, nil, err
		}

		return conn, mv, nil
	}

	return moves.Connection{}, nil, ErrRetriesExhausted
}

// admit applies the post-relaxation guards and the Metropolis criterion,
// bumping the matching failure counter on the way out.
func (c *Controller) admit(conn moves.Connection, mv *moves.Move, res EvalResult) bool {
	if res.Status != EvalSuccess {
		c.stats.FailedRelaxation++
		c.log.Debug("rejected: relaxation failed", "status", res.Status.String())

		return false
	}
	if !c.pair.CheckAnglesWithinRange(c.opts.MaximumAngle, []int{conn.A, conn.B}, res.Coords) {
		c.stats.FailedAngle++
		c.log.Debug("rejected: relaxed angle out of range")

		return false
	}
	if !c.pair.CheckBondLengths(c.opts.MaximumBondLength, mv.Involved, res.Coords) {
		c.stats.FailedBondLength++
		c.log.Debug("rejected: relaxed bond too long")

		return false
	}
	if c.opts.MaintainConvexity && !c.pair.CheckConvexity(mv.Involved, res.Coords) {
		c.stats.FailedConvexity++
		c.log.Debug("rejected: convexity certificate failed")

		return false
	}
	if !c.mc.Accept(res.Energy, c.energy) {
		c.stats.FailedEnergy++
		c.log.Debug("rejected: Metropolis criterion", "initial", c.energy, "final", res.Energy)

		return false
	}

	return true
}
