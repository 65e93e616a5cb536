package search

import (
	"container/heap"

	"github.com/kylerchin/bast-routing-homework/extcost"
	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

// queueItem is one entry in the priority queue: a node together with the
// tentative distance (gCost) that was current when it was pushed, and the
// priority it was pushed under (gCost, or gCost+h(node) under A*). Keeping
// gCost alongside priority lets the pop-time staleness check compare like
// against like even when a heuristic has shifted the ordering key.
type queueItem struct {
	node     roadgraph.NodeID
	gCost    extcost.Cost
	priority extcost.Cost
}

// nodeQueue implements heap.Interface over []*queueItem, ordered by
// priority ascending. Duplicate entries per node are expected and normal:
// the lazy decrease-key strategy pushes a new entry on every relaxation
// instead of mutating one in place.
type nodeQueue []*queueItem

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(*queueItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}

var _ heap.Interface = (*nodeQueue)(nil)
