// SPDX-License-Identifier: MIT
// Package: dualmc/lattice
//
// network.go — the Network arena: nodes, periodic box, degree scans,
// coordinate plumbing.
//
// Contract:
//   - Node(i) is the only bounds-checked access path; internal hot paths
//     index Nodes directly after validation at the call boundary.
//   - Rescale multiplies coordinates and box dimensions; no topology change.
//   - Min/Max degree scans are O(V) and never cached (callers that need
//     O(1) statistics use the distribution tables instead).

package lattice

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dualmc/geom"
)

// Network owns a fixed arena of nodes plus the periodic box they live in
// and the cached degree statistics.
type Network struct {
	// Nodes is the node arena; index == Node.ID, never reordered.
	Nodes []Node

	// Dimensions is the periodic box size.
	Dimensions geom.Vec2

	// NodeDistribution[k] counts nodes of degree k.
	NodeDistribution []int

	// EdgeDistribution[m][n] counts ordered edges between degree-m and
	// degree-n nodes.
	EdgeDistribution [][]int
}

// NewNetwork allocates an arena of n zero-connected nodes in a box of the
// given dimensions.
func NewNetwork(n int, dims geom.Vec2) (*Network, error) {
	if dims.X <= 0 || dims.Y <= 0 {
		return nil, fmt.Errorf("%w: %+v", ErrBadDimensions, dims)
	}
	net := &Network{
		Nodes:      make([]Node, n),
		Dimensions: dims,
	}
	for i := range net.Nodes {
		net.Nodes[i].ID = i
	}

	return net, nil
}

// NumNodes returns the arena size.
func (net *Network) NumNodes() int { return len(net.Nodes) }

// Node returns a pointer to node i, or ErrNodeIndex when i is out of range.
func (net *Network) Node(i int) (*Node, error) {
	if i < 0 || i >= len(net.Nodes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNodeIndex, i, len(net.Nodes))
	}

	return &net.Nodes[i], nil
}

// Degree returns the net-connection count of node i (caller-validated).
func (net *Network) Degree(i int) int { return len(net.Nodes[i].NetCnxs) }

// Rescale multiplies every coordinate and the box dimensions by factor.
// Topology is untouched.
func (net *Network) Rescale(factor float64) {
	net.Dimensions = net.Dimensions.Scale(factor)
	for i := range net.Nodes {
		net.Nodes[i].Crd = net.Nodes[i].Crd.Scale(factor)
	}
}

// MinCnxs returns the smallest net-connection count over all nodes.
func (net *Network) MinCnxs() int { return net.minMax(netDegree, true, nil) }

// MaxCnxs returns the largest net-connection count over all nodes.
func (net *Network) MaxCnxs() int { return net.minMax(netDegree, false, nil) }

// MinDualCnxs returns the smallest dual-connection count over all nodes.
func (net *Network) MinDualCnxs() int { return net.minMax(dualDegree, true, nil) }

// MaxDualCnxs returns the largest dual-connection count over all nodes.
func (net *Network) MaxDualCnxs() int { return net.minMax(dualDegree, false, nil) }

// MinCnxsExcluding is MinCnxs over nodes not present in skip.
func (net *Network) MinCnxsExcluding(skip map[int]struct{}) int {
	return net.minMax(netDegree, true, skip)
}

// MaxCnxsExcluding is MaxCnxs over nodes not present in skip.
func (net *Network) MaxCnxsExcluding(skip map[int]struct{}) int {
	return net.minMax(netDegree, false, skip)
}

type degreeKind int

const (
	netDegree degreeKind = iota
	dualDegree
)

func (net *Network) minMax(kind degreeKind, min bool, skip map[int]struct{}) int {
	best := -1
	for i := range net.Nodes {
		if skip != nil {
			if _, fixed := skip[i]; fixed {
				continue
			}
		}
		d := len(net.Nodes[i].NetCnxs)
		if kind == dualDegree {
			d = len(net.Nodes[i].DualCnxs)
		}
		if best < 0 || (min && d < best) || (!min && d > best) {
			best = d
		}
	}
	if best < 0 {
		best = 0
	}

	return best
}

// Coords flattens all node coordinates into [x0 y0 x1 y1 ...].
func (net *Network) Coords() []float64 {
	flat := make([]float64, 2*len(net.Nodes))
	for i := range net.Nodes {
		geom.Put(flat, i, net.Nodes[i].Crd)
	}

	return flat
}

// SetCoords installs a flat coordinate slice onto the arena.
func (net *Network) SetCoords(flat []float64) error {
	if len(flat) != 2*len(net.Nodes) {
		return fmt.Errorf("%w: got %d want %d", ErrCoordsLength, len(flat), 2*len(net.Nodes))
	}
	for i := range net.Nodes {
		net.Nodes[i].Crd = geom.At(flat, i)
	}

	return nil
}

// AverageCoordination returns the mean of degree^power over all nodes.
func (net *Network) AverageCoordination(power int) float64 {
	if len(net.Nodes) == 0 {
		return 0
	}
	var sum float64
	for i := range net.Nodes {
		d := float64(len(net.Nodes[i].NetCnxs))
		p := 1.0
		for k := 0; k < power; k++ {
			p *= d
		}
		sum += p
	}

	return sum / float64(len(net.Nodes))
}

// CentreRings recentres every node of net (a ring network) onto the
// periodic mean of its boundary nodes in base. Ring coordinates are derived
// state; this is the one place they are recomputed.
func (net *Network) CentreRings(base *Network) {
	dims := base.Dimensions
	for i := range net.Nodes {
		ring := &net.Nodes[i]
		if len(ring.DualCnxs) == 0 {
			continue
		}
		// Average minimum-image displacements from the first boundary node
		// so rings straddling the box edge do not collapse to the centre.
		origin := base.Nodes[ring.DualCnxs[0]].Crd
		var mean geom.Vec2
		for _, id := range ring.DualCnxs {
			mean = mean.Add(geom.PBCVector(origin, base.Nodes[id].Crd, dims))
		}
		mean = mean.Scale(1 / float64(len(ring.DualCnxs)))
		ring.Crd = geom.Wrap(origin.Add(mean), dims)
	}
}

// SortClockwise orders ids by ascending clockwise angle of at(id) around
// centre, under the periodic box dims. Shared by the lattice builders and
// the linked package's neighbour repair.
func SortClockwise(centre, dims geom.Vec2, ids []int, at func(int) geom.Vec2) {
	sort.SliceStable(ids, func(a, b int) bool {
		return geom.ClockwiseAngle(centre, at(ids[a]), dims) < geom.ClockwiseAngle(centre, at(ids[b]), dims)
	})
}
