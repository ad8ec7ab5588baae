// SPDX-License-Identifier: MIT
// Package: dualmc/lattice
//
// statistics.go — derived topological statistics over the cached tables.
//
// These are reporting quantities, recomputed on demand from the cached
// distributions (O(maxDegree²)); nothing here sits on the per-move hot path.
//
// Definitions:
//   - SizeFractions p_k: fraction of nodes with degree k.
//   - Pearson: degree assortativity over the joint edge distribution.
//   - Entropy: Shannon entropy of the degree distribution (nats).
//   - AboavWeaire: the α parameter of the Aboav–Weaire law
//     n·m_n = (6-α)·n + (6α + μ₂), fitted by least squares.

package lattice

import "math"

// Stats bundles the derived statistics of one network.
type Stats struct {
	SizeFractions       map[int]float64
	Pearson             float64
	Entropy             float64
	AboavWeaire         float64
	AverageCoordination float64
}

// Statistics computes the derived statistics from the cached distribution
// tables; call RefreshDistributions first if the caches may be stale.
func (net *Network) Statistics() Stats {
	s := Stats{
		SizeFractions:       make(map[int]float64),
		AverageCoordination: net.AverageCoordination(1),
	}

	total := 0
	for _, c := range net.NodeDistribution {
		total += c
	}
	if total == 0 {
		return s
	}
	for k, c := range net.NodeDistribution {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		s.SizeFractions[k] = p
		s.Entropy -= p * math.Log(p)
	}

	edges := 0
	for _, row := range net.EdgeDistribution {
		for _, c := range row {
			edges += c
		}
	}
	if edges == 0 {
		return s
	}

	// Degree assortativity over the joint distribution e[m][n].
	var mean, meanSq, joint float64
	for m, row := range net.EdgeDistribution {
		for n, c := range row {
			if c == 0 {
				continue
			}
			e := float64(c) / float64(edges)
			mean += float64(m) * e
			meanSq += float64(m*m) * e
			joint += float64(m*n) * e
		}
	}
	if variance := meanSq - mean*mean; variance > 0 {
		s.Pearson = (joint - mean*mean) / variance
	}

	// Aboav–Weaire fit of n·m_n against n.
	var sx, sy, sxx, sxy float64
	points := 0
	for n, row := range net.EdgeDistribution {
		rowTotal, weighted := 0, 0
		for m, c := range row {
			rowTotal += c
			weighted += m * c
		}
		if rowTotal == 0 {
			continue
		}
		x := float64(n)
		y := x * float64(weighted) / float64(rowTotal)
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
		points++
	}
	if points >= 2 {
		den := float64(points)*sxx - sx*sx
		if den != 0 {
			slope := (float64(points)*sxy - sx*sy) / den
			s.AboavWeaire = 6 - slope
		}
	}

	return s
}
