// SPDX-License-Identifier: MIT
package montecarlo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualmc/montecarlo"
)

func TestMetropolis_DownhillAlwaysAccepts(t *testing.T) {
	m := montecarlo.NewMetropolis(1, -12)
	for i := 0; i < 100; i++ {
		require.True(t, m.Accept(-1, 0))
		require.True(t, m.Accept(0, 0)) // flat counts as downhill
	}
}

func TestMetropolis_ColdCriterionRejectsUphill(t *testing.T) {
	m := montecarlo.NewMetropolis(1, -12)
	for i := 0; i < 100; i++ {
		require.False(t, m.Accept(1, 0))
	}
}

func TestMetropolis_HotCriterionAcceptsUphill(t *testing.T) {
	// At T=10^12 the barrier exp(-1/T) is indistinguishable from 1.
	m := montecarlo.NewMetropolis(1, 12)
	for i := 0; i < 100; i++ {
		require.True(t, m.Accept(1, 0))
	}
}

func TestMetropolis_TemperatureIsRetunable(t *testing.T) {
	m := montecarlo.NewMetropolis(1, 0)
	require.InDelta(t, 1.0, m.Temperature(), 1e-12)

	m.SetTemperature(-2)
	require.InDelta(t, 0.01, m.Temperature(), 1e-12)
}

func TestMetropolis_SameSeedSameDecisions(t *testing.T) {
	a := montecarlo.NewMetropolis(7, 0)
	b := montecarlo.NewMetropolis(7, 0)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Accept(0.5, 0), b.Accept(0.5, 0))
	}
}
