// SPDX-License-Identifier: MIT
// Package: dualmc/lattice
//
// distributions.go — cached node- and edge-degree distribution tables.
//
// Two maintenance paths exist by design:
//   - RefreshDistributions: O(V+E) recount, used at construction, by the
//     consistency checker and by regression tests.
//   - BumpNode/BumpEdge: O(1) increments used by the moves package to keep
//     the caches exact across individual rewires without rescans.
//
// Tables grow on demand; trailing zero rows are semantically empty, so
// comparisons must go through DistributionsEqual.

package lattice

// RefreshDistributions recounts both cached tables from the adjacency lists.
func (net *Network) RefreshDistributions() {
	node, edge := net.CountDistributions()
	net.NodeDistribution = node
	net.EdgeDistribution = edge
}

// CountDistributions returns freshly counted node and edge tables without
// touching the cached ones.
func (net *Network) CountDistributions() ([]int, [][]int) {
	maxDeg := 0
	for i := range net.Nodes {
		if d := len(net.Nodes[i].NetCnxs); d > maxDeg {
			maxDeg = d
		}
	}
	node := make([]int, maxDeg+1)
	edge := make([][]int, maxDeg+1)
	for i := range edge {
		edge[i] = make([]int, maxDeg+1)
	}
	for i := range net.Nodes {
		m := len(net.Nodes[i].NetCnxs)
		node[m]++
		for _, j := range net.Nodes[i].NetCnxs {
			n := len(net.Nodes[j].NetCnxs)
			edge[m][n]++
		}
	}

	return node, edge
}

// BumpNode adjusts NodeDistribution[deg] by delta, growing the table when
// a new degree appears.
func (net *Network) BumpNode(deg, delta int) {
	for len(net.NodeDistribution) <= deg {
		net.NodeDistribution = append(net.NodeDistribution, 0)
	}
	net.NodeDistribution[deg] += delta
}

// BumpEdge adjusts EdgeDistribution[m][n] by delta, growing as needed.
func (net *Network) BumpEdge(m, n, delta int) {
	side := m
	if n > side {
		side = n
	}
	for len(net.EdgeDistribution) <= side {
		net.EdgeDistribution = append(net.EdgeDistribution, nil)
	}
	for i := range net.EdgeDistribution {
		for len(net.EdgeDistribution[i]) <= side {
			net.EdgeDistribution[i] = append(net.EdgeDistribution[i], 0)
		}
	}
	net.EdgeDistribution[m][n] += delta
}

// DistributionsEqual compares two node tables and two edge tables treating
// absent entries as zero, so tables of different capacity compare by value.
func DistributionsEqual(nodeA []int, edgeA [][]int, nodeB []int, edgeB [][]int) bool {
	nodeSide := len(nodeA)
	if len(nodeB) > nodeSide {
		nodeSide = len(nodeB)
	}
	for k := 0; k < nodeSide; k++ {
		if cellAt(nodeA, k) != cellAt(nodeB, k) {
			return false
		}
	}
	side := len(edgeA)
	if len(edgeB) > side {
		side = len(edgeB)
	}
	for m := 0; m < side; m++ {
		for n := 0; n < side; n++ {
			if edgeCellAt(edgeA, m, n) != edgeCellAt(edgeB, m, n) {
				return false
			}
		}
	}

	return true
}

func cellAt(s []int, k int) int {
	if k < len(s) {
		return s[k]
	}

	return 0
}

func edgeCellAt(t [][]int, m, n int) int {
	if m < len(t) && n < len(t[m]) {
		return t[m][n]
	}

	return 0
}

// CloneNodeDistribution returns an independent copy of the node table.
func (net *Network) CloneNodeDistribution() []int {
	return append([]int(nil), net.NodeDistribution...)
}

// CloneEdgeDistribution returns an independent copy of the edge table.
func (net *Network) CloneEdgeDistribution() [][]int {
	out := make([][]int, len(net.EdgeDistribution))
	for i, row := range net.EdgeDistribution {
		out[i] = append([]int(nil), row...)
	}

	return out
}
