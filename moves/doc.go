// SPDX-License-Identifier: MIT
// Package moves generates, applies and reverts topology-changing moves on
// a linked.Pair: the Wooten-Winer-Weaire bond switch and the coordination
// mix move.
//
// A move's lifecycle is strictly staged:
//
//  1. PickConnection draws a random bond plus its two flanking rings.
//  2. GenerateSwitch / GenerateMix derive the full local neighbourhood and
//     either return a Move or reject the candidate.
//  3. TakeSnapshot captures every node and distribution table the move
//     will touch.
//  4. Apply rewires both networks and keeps the cached degree
//     distributions current incrementally.
//  5. On rejection downstream (geometry or Metropolis), Snapshot.Restore
//     puts the pair back byte-for-byte.
//
// Two error regimes are kept apart on purpose:
//
//   - ErrRejected and its wrapped reasons mean "this candidate cannot be
//     switched, draw another one". The pair is untouched; callers loop.
//   - InconsistencyError means the pair's topology contradicts itself.
//     The state is suspect and the run must stop.
//
// Bond switch, six-membered case (numbers are the derived neighbourhood,
// rings in the gaps):
//
//	         7-----8                               7-----8
//	        /       \                              |     |
//	       /         \                      11-----3  v  4-----12
//	11----3     v     4----12                       \   /
//	        \         /                              \ /
//	         \       /                                1
//	    w     1-----2     x          --->       w     |     x
//	         /       \                                2
//	        /         \                              / \
//	13----5     u     6----14                       /   \
//	        \         /                     13-----5  u  6-----14
//	         \       /                             |     |
//	          9-----10                             9-----10
//
//	breaks 1-5, 2-4; makes 1-4, 2-5; ring edge u-v breaks, w-x forms.
package moves
