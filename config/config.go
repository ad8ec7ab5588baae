// SPDX-License-Identifier: MIT
// Package: dualmc/config
//
// config.go — YAML run configuration for a full annealing run.
//
// Contract:
//   - Load reads one YAML file into RunConfig; missing keys keep the
//     Default() values, so partial files are valid.
//   - Validate applies the same ranges the simulation packages enforce,
//     wrapped in ErrConfig, so a bad file fails before any lattice is
//     built.
//   - The converters hand ready Options structs to linked and montecarlo;
//     RunConfig itself never leaks past startup.

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dualmc/linked"
	"github.com/katalvlaran/dualmc/montecarlo"
)

// ErrConfig marks any validation failure; the wrap names the field.
var ErrConfig = errors.New("config: invalid value")

// IO names where a run reads and writes its artefacts.
type IO struct {
	OutputFolder     string `yaml:"outputFolder"`
	OutputFilePrefix string `yaml:"outputFilePrefix"`
}

// Network bounds the dual pair's topology.
type Network struct {
	// Rings is the ring count of the seed lattice (nx*ny for the built-in
	// honeycomb and square seeds).
	Rings int `yaml:"rings"`

	MinRingSize     int `yaml:"minRingSize"`
	MaxRingSize     int `yaml:"maxRingSize"`
	MinCoordination int `yaml:"minCoordination"`
	MaxCoordination int `yaml:"maxCoordination"`

	// FixedRings are ring IDs whose atoms are pinned out of selection.
	FixedRings []int `yaml:"fixedRings"`
}

// MonteCarlo drives candidate selection and the temperature schedule.
type MonteCarlo struct {
	// MoveType is "switch" or "mix".
	MoveType string `yaml:"moveType"`

	// Seed feeds every random stream; 0 selects the fixed default seed.
	Seed int64 `yaml:"seed"`

	// Selection is "random" (uniform over bonds) or "weighted"
	// (distance-biased toward the box centre).
	Selection string `yaml:"selection"`

	// WeightedDecay tunes the exponential bias of weighted selection.
	WeightedDecay float64 `yaml:"weightedDecay"`

	// Temperatures are log10 values, matching the annealing convention.
	StartTemperature           float64 `yaml:"startTemperature"`
	EndTemperature             float64 `yaml:"endTemperature"`
	TemperatureIncrement       float64 `yaml:"temperatureIncrement"`
	ThermalisationTemperature  float64 `yaml:"thermalisationTemperature"`
	StepsPerTemperature        int     `yaml:"stepsPerTemperature"`
	InitialThermalisationSteps int     `yaml:"initialThermalisationSteps"`
}

// Potential parameterises the harmonic spring model and the geometric
// admission guards.
type Potential struct {
	BondForceConstant  float64 `yaml:"bondForceConstant"`
	AngleForceConstant float64 `yaml:"angleForceConstant"`
	GeometryConstraint float64 `yaml:"geometryConstraint"`

	MaximumBondLength float64 `yaml:"maximumBondLength"`
	// MaximumAngle is in radians.
	MaximumAngle      float64 `yaml:"maximumAngle"`
	MaintainConvexity bool    `yaml:"maintainConvexity"`
}

// Optimisation bounds the local relaxation after each candidate move.
type Optimisation struct {
	MaxIterations   int     `yaml:"maxIterations"`
	Tolerance       float64 `yaml:"tolerance"`
	LocalRegionSize int     `yaml:"localRegionSize"`
}

// RunConfig is the complete configuration of one annealing run.
type RunConfig struct {
	IO           IO           `yaml:"io"`
	Network      Network      `yaml:"network"`
	MonteCarlo   MonteCarlo   `yaml:"monteCarlo"`
	Potential    Potential    `yaml:"potential"`
	Optimisation Optimisation `yaml:"optimisation"`
}

// Default returns a runnable configuration: a honeycomb-sized network,
// switch moves, uniform selection, and a mild downhill schedule.
func Default() RunConfig {
	return RunConfig{
		IO: IO{
			OutputFolder:     "./output",
			OutputFilePrefix: "dualmc",
		},
		Network: Network{
			Rings:           24,
			MinRingSize:     linked.DefaultMinRingSize,
			MaxRingSize:     linked.DefaultMaxRingSize,
			MinCoordination: linked.DefaultMinCoordination,
			MaxCoordination: linked.DefaultMaxCoordination,
		},
		MonteCarlo: MonteCarlo{
			MoveType:                   "switch",
			Selection:                  "random",
			WeightedDecay:              linked.DefaultWeightedDecay,
			StartTemperature:           -4,
			EndTemperature:             -4,
			TemperatureIncrement:       0.5,
			ThermalisationTemperature:  -4,
			StepsPerTemperature:        100,
			InitialThermalisationSteps: 100,
		},
		Potential: Potential{
			BondForceConstant:  10,
			AngleForceConstant: 5,
			GeometryConstraint: 1,
			MaximumBondLength:  montecarlo.DefaultMaximumBondLength,
			MaximumAngle:       montecarlo.DefaultMaximumAngle,
		},
		Optimisation: Optimisation{
			MaxIterations:   400,
			Tolerance:       1e-6,
			LocalRegionSize: 2,
		},
	}
}

// Load reads path into a RunConfig layered over Default() and validates
// the result.
func Load(path string) (RunConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}

	return cfg, nil
}

// Validate checks every range the simulation relies on.
func (c RunConfig) Validate() error {
	// Network
	if c.Network.Rings < 1 {
		return fmt.Errorf("%w: rings must be at least 1, got %d", ErrConfig, c.Network.Rings)
	}
	if c.Network.MinRingSize < 3 {
		return fmt.Errorf("%w: minRingSize must be at least 3, got %d", ErrConfig, c.Network.MinRingSize)
	}
	if c.Network.MaxRingSize < c.Network.MinRingSize {
		return fmt.Errorf("%w: maxRingSize %d below minRingSize %d", ErrConfig, c.Network.MaxRingSize, c.Network.MinRingSize)
	}
	if c.Network.MinCoordination < 1 {
		return fmt.Errorf("%w: minCoordination must be at least 1, got %d", ErrConfig, c.Network.MinCoordination)
	}
	if c.Network.MaxCoordination < c.Network.MinCoordination {
		return fmt.Errorf("%w: maxCoordination %d below minCoordination %d", ErrConfig, c.Network.MaxCoordination, c.Network.MinCoordination)
	}
	for _, id := range c.Network.FixedRings {
		if id < 0 {
			return fmt.Errorf("%w: fixedRings entry %d is negative", ErrConfig, id)
		}
	}

	// Monte Carlo
	if c.MonteCarlo.MoveType != "switch" && c.MonteCarlo.MoveType != "mix" {
		return fmt.Errorf("%w: moveType %q must be \"switch\" or \"mix\"", ErrConfig, c.MonteCarlo.MoveType)
	}
	if c.MonteCarlo.Seed < 0 {
		return fmt.Errorf("%w: seed must be at least 0, got %d", ErrConfig, c.MonteCarlo.Seed)
	}
	if c.MonteCarlo.Selection != "random" && c.MonteCarlo.Selection != "weighted" {
		return fmt.Errorf("%w: selection %q must be \"random\" or \"weighted\"", ErrConfig, c.MonteCarlo.Selection)
	}
	if c.MonteCarlo.WeightedDecay <= 0 {
		return fmt.Errorf("%w: weightedDecay must be positive, got %g", ErrConfig, c.MonteCarlo.WeightedDecay)
	}
	if c.MonteCarlo.StepsPerTemperature < 0 || c.MonteCarlo.InitialThermalisationSteps < 0 {
		return fmt.Errorf("%w: step counts must be at least 0", ErrConfig)
	}
	if c.MonteCarlo.TemperatureIncrement <= 0 {
		return fmt.Errorf("%w: temperatureIncrement must be positive, got %g", ErrConfig, c.MonteCarlo.TemperatureIncrement)
	}

	// Potential
	if c.Potential.BondForceConstant < 0 {
		return fmt.Errorf("%w: bondForceConstant must be at least 0, got %g", ErrConfig, c.Potential.BondForceConstant)
	}
	if c.Potential.AngleForceConstant < 0 {
		return fmt.Errorf("%w: angleForceConstant must be at least 0, got %g", ErrConfig, c.Potential.AngleForceConstant)
	}
	if c.Potential.GeometryConstraint < 0 {
		return fmt.Errorf("%w: geometryConstraint must be at least 0, got %g", ErrConfig, c.Potential.GeometryConstraint)
	}
	if c.Potential.MaximumBondLength <= 0 {
		return fmt.Errorf("%w: maximumBondLength must be positive, got %g", ErrConfig, c.Potential.MaximumBondLength)
	}
	if c.Potential.MaximumAngle <= 0 {
		return fmt.Errorf("%w: maximumAngle must be positive, got %g", ErrConfig, c.Potential.MaximumAngle)
	}

	// Optimisation
	if c.Optimisation.MaxIterations < 0 {
		return fmt.Errorf("%w: maxIterations must be at least 0, got %d", ErrConfig, c.Optimisation.MaxIterations)
	}
	if c.Optimisation.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %g", ErrConfig, c.Optimisation.Tolerance)
	}

	return nil
}

// LinkedOptions converts the network section for linked.NewPair.
func (c RunConfig) LinkedOptions() linked.Options {
	opts := linked.DefaultOptions()
	opts.MinRingSize = c.Network.MinRingSize
	opts.MaxRingSize = c.Network.MaxRingSize
	opts.MinCoordination = c.Network.MinCoordination
	opts.MaxCoordination = c.Network.MaxCoordination
	opts.WeightedDecay = c.MonteCarlo.WeightedDecay
	if c.MonteCarlo.Selection == "weighted" {
		opts.Selection = linked.SelectionWeighted
	}

	return opts
}

// MonteCarloOptions converts the process sections for montecarlo.New.
func (c RunConfig) MonteCarloOptions() montecarlo.Options {
	opts := montecarlo.DefaultOptions()
	opts.Seed = c.MonteCarlo.Seed
	opts.StartTemperature = c.MonteCarlo.StartTemperature
	opts.MaximumBondLength = c.Potential.MaximumBondLength
	opts.MaximumAngle = c.Potential.MaximumAngle
	opts.MaintainConvexity = c.Potential.MaintainConvexity
	if c.MonteCarlo.MoveType == "mix" {
		opts.MoveType = montecarlo.MoveMix
	}

	return opts
}

// Temperatures expands the annealing schedule into the log10 temperature
// of every block of StepsPerTemperature steps, low end first.
func (c RunConfig) Temperatures() []float64 {
	mc := c.MonteCarlo
	if mc.EndTemperature < mc.StartTemperature {
		return []float64{mc.StartTemperature}
	}

	var out []float64
	for t := mc.StartTemperature; t <= mc.EndTemperature+1e-12; t += mc.TemperatureIncrement {
		out = append(out, t)
	}

	return out
}
