package landmark

import (
	"github.com/kylerchin/bast-routing-homework/extcost"
	"github.com/kylerchin/bast-routing-homework/roadgraph"
	"github.com/kylerchin/bast-routing-homework/search"
)

// HeuristicFor derives an admissible, consistent A* heuristic from tables
// for a fixed query target. For each node u it computes
//
//	h(u) = max over landmarks l of |d(l,u) - d(l,T)|
//
// treating a landmark whose distance to u or to target is +∞ as
// contributing 0 to the max rather than +∞, per the triangle-inequality
// argument: an unreachable landmark carries no information about u's
// distance to target, so it must not be allowed to produce a heuristic
// value that could exceed the true distance.
//
// The returned search.Heuristic is a pure function of (tables, target)
// and is safe to reuse across concurrent searches, since Tables is
// immutable after Precompute(For|Parallel) returns.
func HeuristicFor(tables *Tables, target roadgraph.NodeID) search.Heuristic {
	n := len(tables.Landmarks)
	targetDist := make([]extcost.Cost, n)
	for i := range tables.Landmarks {
		targetDist[i] = tables.DistanceFrom(i, target)
	}

	return func(u roadgraph.NodeID) extcost.Cost {
		best := extcost.Zero
		for i := range tables.Landmarks {
			dt := targetDist[i]
			du := tables.DistanceFrom(i, u)
			if !dt.IsFinite() || !du.IsFinite() {
				continue
			}
			contribution := extcost.AbsDiff(du, dt)
			best = extcost.Max(best, contribution)
		}
		return best
	}
}
