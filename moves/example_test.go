// SPDX-License-Identifier: MIT
package moves_test

import (
	"fmt"

	"github.com/katalvlaran/dualmc/lattice"
	"github.com/katalvlaran/dualmc/linked"
	"github.com/katalvlaran/dualmc/moves"
)

// Scenario:
//
//	Take a pristine periodic honeycomb (every ring a hexagon), rotate one
//	bond, and watch the classic 5-5-7-7 defect appear: two pentagons and
//	two heptagons, with every atom still exactly 3-coordinate. Restoring
//	the snapshot brings back the perfect crystal.
//
// Use case:
//
//	The smallest possible demonstration of the switch/snapshot/revert
//	transaction, the unit every Monte Carlo step is built from.
//
// Complexity: O(touched) for apply and revert; the lattice size only
// matters for construction.
func ExampleApply() {
	atoms, rings, err := lattice.Hexagonal(4, 6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	pair, err := linked.NewPair(atoms, rings, linked.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("pristine: %d hexagons\n", pair.B.NodeDistribution[6])

	// One bond and its two flanking rings make a switch candidate.
	a := 0
	b := pair.A.Nodes[a].NetCnxs[0]
	flanking := moves.CommonRings(pair, a, b)
	conn := moves.Connection{A: a, B: b, RingU: flanking[0], RingV: flanking[1], Kind: moves.Kind33}

	mv, err := moves.GenerateSwitch(pair, conn)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	snap := moves.Take(pair, mv)
	if err := moves.Apply(pair, mv); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("switched: %d pentagons, %d hexagons, %d heptagons\n",
		pair.B.NodeDistribution[5], pair.B.NodeDistribution[6], pair.B.NodeDistribution[7])

	snap.Restore(pair)
	fmt.Printf("reverted: %d hexagons\n", pair.B.NodeDistribution[6])

	// Output:
	// pristine: 24 hexagons
	// switched: 2 pentagons, 20 hexagons, 2 heptagons
	// reverted: 24 hexagons
}
