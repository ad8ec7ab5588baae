// SPDX-License-Identifier: MIT
// Package: dualmc/linked
//
// pair.go — the Pair type: ownership, fixed rings, weights, coordinates.
//
// Determinism:
//   - No RNG lives here; weights are pure functions of coordinates, so a
//     Pair is reproducible state given the same move sequence.

package linked

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/dualmc/geom"
	"github.com/katalvlaran/dualmc/lattice"
)

// Pair couples an atom network A with its ring dual B plus the selection
// state of a Monte Carlo run.
type Pair struct {
	// A is the atom (base) network; B is the ring (dual) network.
	A, B *lattice.Network

	opts Options

	// fixedRings holds ring IDs excluded from mutation, sorted for
	// deterministic diagnostics; fixedNodes is the derived atom set.
	fixedRings *treeset.Set
	fixedNodes map[int]struct{}

	// weights is the per-atom selection distribution, normalized to sum 1.
	weights []float64

	// coords is the current flat atom coordinate array [x0 y0 x1 y1 ...].
	coords []float64

	centre geom.Vec2
}

// NewPair validates and couples the two networks. The pair takes ownership
// of both networks; callers must not mutate them directly afterwards.
func NewPair(a, b *lattice.Network, opts Options) (*Pair, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("%w: %+v", err, opts)
	}
	if a.Dimensions != b.Dimensions {
		return nil, fmt.Errorf("%w: A=%+v B=%+v", ErrBoxMismatch, a.Dimensions, b.Dimensions)
	}

	p := &Pair{
		A:          a,
		B:          b,
		opts:       opts,
		fixedRings: treeset.NewWithIntComparator(),
		fixedNodes: make(map[int]struct{}),
		weights:    make([]float64, a.NumNodes()),
		coords:     a.Coords(),
		centre:     geom.Vec2{X: a.Dimensions.X / 2, Y: a.Dimensions.Y / 2},
	}
	if err := p.CheckConsistency(); err != nil {
		return nil, err
	}
	p.UpdateWeights()

	return p, nil
}

// Options returns the pair's configured bounds and selection scheme.
func (p *Pair) Options() Options { return p.opts }

// Centre returns the box centre used by weighted selection.
func (p *Pair) Centre() geom.Vec2 { return p.centre }

// Coords exposes the live flat atom coordinate array. Callers treat it as
// read-only; PushCoords is the only writer.
func (p *Pair) Coords() []float64 { return p.coords }

// Weights exposes the live normalized selection weights.
func (p *Pair) Weights() []float64 { return p.weights }

// FixRings registers rings as immutable anchors and derives the fixed atom
// set (every atom bordering a fixed ring).
func (p *Pair) FixRings(ringIDs ...int) error {
	for _, r := range ringIDs {
		ring, err := p.B.Node(r)
		if err != nil {
			return err
		}
		p.fixedRings.Add(r)
		for _, atom := range ring.DualCnxs {
			p.fixedNodes[atom] = struct{}{}
		}
	}

	return nil
}

// FixedRings returns the registered ring IDs in ascending order.
func (p *Pair) FixedRings() []int {
	out := make([]int, 0, p.fixedRings.Size())
	p.fixedRings.Each(func(_ int, v interface{}) {
		out = append(out, v.(int))
	})

	return out
}

// IsFixed reports whether atom id belongs to a fixed ring.
func (p *Pair) IsFixed(id int) bool {
	_, ok := p.fixedNodes[id]

	return ok
}

// FixedNodes returns a copy of the fixed atom set.
func (p *Pair) FixedNodes() map[int]struct{} {
	out := make(map[int]struct{}, len(p.fixedNodes))
	for k := range p.fixedNodes {
		out[k] = struct{}{}
	}

	return out
}

// UpdateWeights recomputes the selection distribution from the current
// atom coordinates: uniform, or exponential decay from the box centre.
// Complexity: O(V).
func (p *Pair) UpdateWeights() {
	n := len(p.weights)
	if n == 0 {
		return
	}
	if p.opts.Selection == SelectionUniform {
		u := 1 / float64(n)
		for i := range p.weights {
			p.weights[i] = u
		}

		return
	}

	boxLength := p.A.Dimensions.X
	total := 0.0
	for i := range p.weights {
		d := geom.Distance(p.A.Nodes[i].Crd, p.centre, p.A.Dimensions) / boxLength
		p.weights[i] = math.Exp(-d * p.opts.WeightedDecay)
		total += p.weights[i]
	}
	for i := range p.weights {
		p.weights[i] /= total
	}
}

// Rescale scales both networks, the centre and the coordinate cache by
// factor; topology is untouched.
func (p *Pair) Rescale(factor float64) {
	p.A.Rescale(factor)
	p.B.Rescale(factor)
	p.centre = p.centre.Scale(factor)
	for i := range p.coords {
		p.coords[i] *= factor
	}
}

// PushCoords installs relaxed atom coordinates (wrapped into the box),
// recentres every ring onto its boundary atoms, and refreshes the cache.
func (p *Pair) PushCoords(flat []float64) error {
	if len(flat) != 2*p.A.NumNodes() {
		return fmt.Errorf("%w: got %d want %d", lattice.ErrCoordsLength, len(flat), 2*p.A.NumNodes())
	}
	for i := 0; i < p.A.NumNodes(); i++ {
		p.A.Nodes[i].Crd = geom.Wrap(geom.At(flat, i), p.A.Dimensions)
	}
	p.B.CentreRings(p.A)
	copy(p.coords, p.A.Coords())

	return nil
}
