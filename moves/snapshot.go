// SPDX-License-Identifier: MIT
// Package: dualmc/moves
//
// snapshot.go — byte-exact revert of a rejected move.
//
// Contract: Take before Apply, Restore after a downstream rejection; the
// pair is then identical to its pre-move state, caches included.

package moves

import (
	"github.com/katalvlaran/dualmc/lattice"
	"github.com/katalvlaran/dualmc/linked"
)

// Snapshot captures everything a move can touch: deep clones of the
// involved atoms and rings plus both networks' distribution tables.
type Snapshot struct {
	atoms []lattice.Node
	rings []lattice.Node

	nodeDistA []int
	nodeDistB []int
	edgeDistA [][]int
	edgeDistB [][]int
}

// Take clones the move's involved atoms, its four rings, and the cached
// distribution tables of both networks.
func Take(p *linked.Pair, mv *Move) *Snapshot {
	s := &Snapshot{
		nodeDistA: p.A.CloneNodeDistribution(),
		nodeDistB: p.B.CloneNodeDistribution(),
		edgeDistA: p.A.CloneEdgeDistribution(),
		edgeDistB: p.B.CloneEdgeDistribution(),
	}
	seen := make(map[int]struct{}, len(mv.Involved))
	for _, id := range mv.Involved {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		s.atoms = append(s.atoms, p.A.Nodes[id].Clone())
	}
	seen = make(map[int]struct{}, len(mv.Rings))
	for _, id := range mv.Rings {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		s.rings = append(s.rings, p.B.Nodes[id].Clone())
	}

	return s
}

// Restore writes the captured nodes and tables back onto the pair.
func (s *Snapshot) Restore(p *linked.Pair) {
	for i := range s.atoms {
		p.A.Nodes[s.atoms[i].ID] = s.atoms[i].Clone()
	}
	for i := range s.rings {
		p.B.Nodes[s.rings[i].ID] = s.rings[i].Clone()
	}
	p.A.NodeDistribution = cloneInts(s.nodeDistA)
	p.B.NodeDistribution = cloneInts(s.nodeDistB)
	p.A.EdgeDistribution = cloneGrid(s.edgeDistA)
	p.B.EdgeDistribution = cloneGrid(s.edgeDistB)
}

func cloneInts(src []int) []int {
	out := make([]int, len(src))
	copy(out, src)

	return out
}

func cloneGrid(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i := range src {
		out[i] = cloneInts(src[i])
	}

	return out
}
