// SPDX-License-Identifier: MIT
// Package: dualmc/moves
//
// find.go — local neighbourhood resolution on a dual pair.
//
// Contract: the exactly-one lookups treat any other multiplicity as
// corruption and return *InconsistencyError, never a rejection.

package moves

import (
	"github.com/katalvlaran/dualmc/linked"
)

// CommonRings returns the rings bordering both atoms a and b, in a's
// stored order.
func CommonRings(p *linked.Pair, a, b int) []int {
	var out []int
	for _, r := range p.A.Nodes[a].DualCnxs {
		if p.A.Nodes[b].HasDualCnx(r) {
			out = append(out, r)
		}
	}

	return out
}

// CommonConnection resolves the single atom that neighbours baseNode and
// lies on ringNode's boundary, excluding excludeNode.
func CommonConnection(p *linked.Pair, baseNode, ringNode, excludeNode int) (int, error) {
	found := -1
	for _, x := range p.A.Nodes[baseNode].NetCnxs {
		if x == excludeNode || !p.B.Nodes[ringNode].HasDualCnx(x) {
			continue
		}
		if found >= 0 {
			return -1, &InconsistencyError{
				Op:     "common connection",
				Nodes:  []int{baseNode, ringNode, excludeNode},
				Detail: "more than one shared neighbour on the ring",
			}
		}
		found = x
	}
	if found < 0 {
		return -1, &InconsistencyError{
			Op:     "common connection",
			Nodes:  []int{baseNode, ringNode, excludeNode},
			Detail: "no shared neighbour on the ring",
		}
	}

	return found, nil
}

// CommonRing resolves the single ring bordering both atoms, excluding
// excludeRing.
func CommonRing(p *linked.Pair, baseNode1, baseNode2, excludeRing int) (int, error) {
	found := -1
	for _, r := range p.A.Nodes[baseNode1].DualCnxs {
		if r == excludeRing || !p.A.Nodes[baseNode2].HasDualCnx(r) {
			continue
		}
		if found >= 0 {
			return -1, &InconsistencyError{
				Op:     "common ring",
				Nodes:  []int{baseNode1, baseNode2, excludeRing},
				Detail: "more than one shared ring",
			}
		}
		found = r
	}
	if found < 0 {
		return -1, &InconsistencyError{
			Op:     "common ring",
			Nodes:  []int{baseNode1, baseNode2, excludeRing},
			Detail: "no shared ring",
		}
	}

	return found, nil
}
