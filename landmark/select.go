package landmark

import (
	"github.com/kylerchin/bast-routing-homework/extcost"
	"github.com/kylerchin/bast-routing-homework/roadgraph"
	"github.com/kylerchin/bast-routing-homework/search"
)

// SelectFirstK picks the first K nodes in the graph's sorted node order.
// It is deterministic but a poor choice in practice: nodes close together
// in ID space tend to cluster geographically, giving landmarks that don't
// spread across the graph. Kept for comparison against SelectFarthestPoint.
func SelectFirstK(g *roadgraph.Graph, k int) []roadgraph.NodeID {
	nodes := g.Nodes()
	if k > len(nodes) {
		k = len(nodes)
	}
	out := make([]roadgraph.NodeID, k)
	copy(out, nodes[:k])
	return out
}

// SelectFarthestPoint picks K landmarks by farthest-point sampling: the
// first landmark is the graph's lowest-numbered node (for determinism),
// and each subsequent landmark is the node that maximizes its distance to
// the nearest landmark already chosen. This spreads landmarks toward the
// periphery of the graph, which tightens the ALT heuristic bound compared
// to an arbitrary or ID-ordered selection.
//
// Choosing K landmarks runs K full-graph searches, one from each chosen
// landmark. Only the landmark IDs are returned; the distance maps those
// searches produce are discarded, so PrecomputeFor (and Precompute, which
// calls this function and then PrecomputeFor) runs K further searches to
// build the distance tables.
func SelectFarthestPoint(g *roadgraph.Graph, k int) []roadgraph.NodeID {
	nodes := g.Nodes()
	if k > len(nodes) {
		k = len(nodes)
	}
	if k == 0 {
		return nil
	}

	landmarks := make([]roadgraph.NodeID, 0, k)
	first := nodes[0]
	landmarks = append(landmarks, first)

	// minDist[u] tracks the distance from u to the nearest landmark chosen
	// so far, seeded from the first landmark's search.
	minDist := search.NewEngine(g).Search(first, roadgraph.NoTarget, nil).Dist

	for len(landmarks) < k {
		farthest := pickFarthest(nodes, landmarks, minDist)
		landmarks = append(landmarks, farthest)

		next := search.NewEngine(g).Search(farthest, roadgraph.NoTarget, nil).Dist
		for u, d := range next {
			if cur, ok := minDist[u]; !ok || d.Less(cur) {
				minDist[u] = d
			}
		}
	}

	return landmarks
}

// pickFarthest returns the node in nodes, excluding any already in chosen,
// with the greatest minDist value (treating an absent entry as +∞, i.e.
// unreached so far by any chosen landmark).
func pickFarthest(nodes []roadgraph.NodeID, chosen []roadgraph.NodeID, minDist map[roadgraph.NodeID]extcost.Cost) roadgraph.NodeID {
	already := make(map[roadgraph.NodeID]struct{}, len(chosen))
	for _, c := range chosen {
		already[c] = struct{}{}
	}

	var best roadgraph.NodeID
	bestDist := extcost.Cost(0)
	found := false
	for _, n := range nodes {
		if _, ok := already[n]; ok {
			continue
		}
		d, ok := minDist[n]
		if !ok {
			d = extcost.Inf
		}
		if !found || d.Greater(bestDist) {
			best = n
			bestDist = d
			found = true
		}
	}
	return best
}
