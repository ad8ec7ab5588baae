// SPDX-License-Identifier: MIT
// Package: dualmc/montecarlo
//
// metropolis.go — the Metropolis acceptance criterion.
//
// Determinism:
//   - Acceptance consumes exactly one uniform draw per uphill candidate;
//     downhill candidates consume none. A fixed seed therefore replays an
//     identical accept/reject sequence.

package montecarlo

import (
	"math"
	"math/rand"
)

// Metropolis decides whether a candidate energy replaces the current one
// at the configured temperature.
type Metropolis struct {
	rng         *rand.Rand
	temperature float64
}

// NewMetropolis builds a criterion with its own RNG stream (seed==0 falls
// back to the fixed default seed) at temperature 10^logTemperature.
func NewMetropolis(seed int64, logTemperature float64) *Metropolis {
	return &Metropolis{
		rng:         rngFromSeed(seed),
		temperature: math.Pow(10, logTemperature),
	}
}

// SetTemperature moves the criterion to 10^logTemperature; used by
// annealing schedules between steps.
func (m *Metropolis) SetTemperature(logTemperature float64) {
	m.temperature = math.Pow(10, logTemperature)
}

// Temperature returns the current absolute (not log) temperature.
func (m *Metropolis) Temperature() float64 { return m.temperature }

// Accept applies the Metropolis criterion to a final/initial energy pair.
// Downhill moves always pass; uphill moves pass with probability
// exp(-ΔE/T).
func (m *Metropolis) Accept(finalEnergy, initialEnergy float64) bool {
	delta := finalEnergy - initialEnergy
	if delta <= 0 {
		return true
	}
	if m.temperature <= 0 {
		return false
	}

	return m.rng.Float64() < math.Exp(-delta/m.temperature)
}
