package landmark

import (
	"github.com/kylerchin/bast-routing-homework/extcost"
	"github.com/kylerchin/bast-routing-homework/roadgraph"
	"github.com/kylerchin/bast-routing-homework/search"
)

// Tables holds one one-to-all distance map per selected landmark. It is
// immutable once returned by Precompute or PrecomputeParallel.
type Tables struct {
	Landmarks []roadgraph.NodeID
	dist      []map[roadgraph.NodeID]extcost.Cost
}

// DistanceFrom returns the precomputed distance from the i-th landmark to
// u, or extcost.Inf if u was unreachable from that landmark.
func (t *Tables) DistanceFrom(i int, u roadgraph.NodeID) extcost.Cost {
	if c, ok := t.dist[i][u]; ok {
		return c
	}
	return extcost.Inf
}

// Precompute selects K landmarks via SelectFarthestPoint and runs one
// full single-source search per landmark, sequentially, each on its own
// search.Engine.
func Precompute(g *roadgraph.Graph, k int) *Tables {
	landmarks := SelectFarthestPoint(g, k)
	return PrecomputeFor(g, landmarks)
}

// PrecomputeFor builds landmark tables for an already-chosen set of
// landmark nodes, running one search per landmark sequentially.
func PrecomputeFor(g *roadgraph.Graph, landmarks []roadgraph.NodeID) *Tables {
	dist := make([]map[roadgraph.NodeID]extcost.Cost, len(landmarks))
	for i, l := range landmarks {
		e := search.NewEngine(g)
		res := e.Search(l, roadgraph.NoTarget, nil)
		dist[i] = res.Dist
	}
	return &Tables{Landmarks: landmarks, dist: dist}
}
