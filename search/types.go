package search

import (
	"github.com/kylerchin/bast-routing-homework/extcost"
	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

// Heuristic estimates the remaining cost from u to a fixed (but unstated)
// target. Search relies on admissibility for early termination to be
// correct (a node whose distance improves after it was popped is pushed
// and expanded again). The ALT heuristic built by the landmark package is
// admissible and consistent; Engine itself never checks either property.
type Heuristic func(u roadgraph.NodeID) extcost.Cost

// Engine runs generalized Dijkstra searches over a shared, read-only graph.
// It owns the visited-round label map used to discover connected
// components across many Search calls: Label(n) == 0 means n has not been
// reached by any search run on this Engine yet; a positive value R means n
// was first reached during round R, or was the source of round R.
type Engine struct {
	g      *roadgraph.Graph
	label  map[roadgraph.NodeID]uint64
	rounds uint64
}

// NewEngine returns an Engine over g with every node's label initialized to
// 0 (unreached) and the round counter at 0.
func NewEngine(g *roadgraph.Graph) *Engine {
	return &Engine{
		g:     g,
		label: make(map[roadgraph.NodeID]uint64),
	}
}

// Label reports the round in which n was first reached by a Search call on
// this Engine, or 0 if it never has been. A node used as a Search source
// takes that Search's round, even if an earlier round had reached it.
func (e *Engine) Label(n roadgraph.NodeID) uint64 {
	return e.label[n]
}

// Rounds reports how many Search calls this Engine has completed.
func (e *Engine) Rounds() uint64 {
	return e.rounds
}
