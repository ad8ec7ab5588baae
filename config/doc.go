// SPDX-License-Identifier: MIT

// Package config loads and validates the YAML run configuration of an
// annealing run: network bounds, Monte Carlo process parameters, the
// temperature schedule, potential constants and relaxation limits.
//
// A file layers over Default(), so partial configurations are valid.
// Validation happens once at load; the converters then hand ready Options
// values to the linked and montecarlo packages and the RunConfig itself
// never travels further into the simulation.
package config
