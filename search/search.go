package search

import (
	"container/heap"

	"github.com/kylerchin/bast-routing-homework/extcost"
	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

// Result is the outcome of a single Search call: the distance table built
// during that round, restricted to the nodes the round actually reached.
type Result struct {
	// Dist maps every node reached during the round to its distance from
	// the round's source. With roadgraph.NoTarget every entry is a shortest
	// distance; when the search stops early at a target, entries for nodes
	// not yet popped off the queue are tentative upper bounds.
	Dist map[roadgraph.NodeID]extcost.Cost
	// TargetCost is the distance to the requested target, or extcost.Inf
	// if no target was given (roadgraph.NoTarget) or the target was never
	// reached.
	TargetCost extcost.Cost
}

// Search runs Dijkstra from source, optionally guided by a heuristic h
// (pass nil for plain Dijkstra) and optionally stopping early once target
// is popped off the queue (pass roadgraph.NoTarget to explore every
// reachable node instead, e.g. for landmark precomputation or component
// discovery).
//
// The source is stamped with the current round number in the Engine's
// label map, and so is every other node Search reaches that has no label
// yet; nodes claimed by an earlier round keep their label. Repeated Search
// calls on the same Engine thereby build up a full connected-component
// labeling.
func (e *Engine) Search(source, target roadgraph.NodeID, h Heuristic) Result {
	e.rounds++
	round := e.rounds

	dist := make(map[roadgraph.NodeID]extcost.Cost)
	dist[source] = extcost.Zero
	e.label[source] = round

	pq := &nodeQueue{}
	heap.Init(pq)
	heap.Push(pq, &queueItem{node: source, gCost: extcost.Zero, priority: priorityOf(extcost.Zero, source, h)})

	for pq.Len() > 0 {
		it := heap.Pop(pq).(*queueItem)

		// Stale entry: a better path to it.node was already relaxed and
		// pushed after this entry was, so this one is obsolete.
		if best, ok := dist[it.node]; !ok || it.gCost.Greater(best) {
			continue
		}

		if target != roadgraph.NoTarget && it.node == target {
			break
		}

		for v, w := range e.g.AdjacencyList()[it.node] {
			cand := extcost.Add(it.gCost, extcost.Finite(uint32(w)))
			if existing, ok := dist[v]; !ok || cand.Less(existing) {
				dist[v] = cand
				if e.label[v] == 0 {
					e.label[v] = round
				}
				heap.Push(pq, &queueItem{node: v, gCost: cand, priority: priorityOf(cand, v, h)})
			}
		}
	}

	targetCost := extcost.Inf
	if target != roadgraph.NoTarget {
		if c, ok := dist[target]; ok {
			targetCost = c
		}
	}

	return Result{Dist: dist, TargetCost: targetCost}
}

func priorityOf(g extcost.Cost, n roadgraph.NodeID, h Heuristic) extcost.Cost {
	if h == nil {
		return g
	}
	return extcost.Add(g, h(n))
}

// FindLargestComponent returns the round number of the largest connected
// component discovered so far, running additional Search rounds from any
// still-unlabeled node until every node in the graph belongs to some
// round. Calling it again after the graph has been pruned to a single
// component is cheap: every node already carries a label from the first
// call, so no new Search rounds run.
func (e *Engine) FindLargestComponent() uint64 {
	for _, n := range e.g.Nodes() {
		if e.label[n] != 0 {
			continue
		}
		e.Search(n, roadgraph.NoTarget, nil)
	}

	roundSizes := make(map[uint64]int)
	for _, r := range e.label {
		roundSizes[r]++
	}

	var largest uint64
	var largestSize int
	for r, size := range roundSizes {
		if size > largestSize || (size == largestSize && r < largest) {
			largest = r
			largestSize = size
		}
	}
	return largest
}

// PruneToLargestComponent discovers the largest connected component and
// mutates the underlying graph in place to retain only that component's
// nodes (and the edges between them). It is idempotent: running it again
// on an already-pruned graph is a no-op, since every remaining node
// already carries the same round label.
func (e *Engine) PruneToLargestComponent() {
	largest := e.FindLargestComponent()

	keep := make(map[roadgraph.NodeID]struct{})
	for n, r := range e.label {
		if r == largest {
			keep[n] = struct{}{}
		}
	}

	e.g.Retain(keep)
}
