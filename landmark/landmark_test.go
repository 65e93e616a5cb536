package landmark_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kylerchin/bast-routing-homework/extcost"
	"github.com/kylerchin/bast-routing-homework/landmark"
	"github.com/kylerchin/bast-routing-homework/roadgraph"
	"github.com/kylerchin/bast-routing-homework/search"
)

// gridGraph builds an n x n grid of nodes numbered row-major from 1, with
// unit edge costs between orthogonal neighbors.
func gridGraph(n int) *roadgraph.Graph {
	g := roadgraph.New()
	id := func(r, c int) roadgraph.NodeID { return roadgraph.NodeID(r*n + c + 1) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				g.AddEdge(id(r, c), id(r, c+1), 1)
			}
			if r+1 < n {
				g.AddEdge(id(r, c), id(r+1, c), 1)
			}
		}
	}
	return g
}

func TestSelectFirstK(t *testing.T) {
	g := gridGraph(3)
	got := landmark.SelectFirstK(g, 3)
	require.Equal(t, []roadgraph.NodeID{1, 2, 3}, got)
}

func TestSelectFarthestPoint_PicksDistinctNodes(t *testing.T) {
	g := gridGraph(4)
	got := landmark.SelectFarthestPoint(g, 4)
	require.Len(t, got, 4)

	seen := make(map[roadgraph.NodeID]bool)
	for _, n := range got {
		require.False(t, seen[n], "landmark %d chosen twice", n)
		seen[n] = true
	}
}

func TestSelectFarthestPoint_CapsAtNodeCount(t *testing.T) {
	g := gridGraph(2)
	got := landmark.SelectFarthestPoint(g, 100)
	require.Len(t, got, 4)
}

func TestPrecompute_AllLandmarksReachEveryNode(t *testing.T) {
	g := gridGraph(3)
	tables := landmark.Precompute(g, 2)

	for i := range tables.Landmarks {
		for _, n := range g.Nodes() {
			require.True(t, tables.DistanceFrom(i, n).IsFinite())
		}
	}
}

func TestPrecomputeParallel_MatchesSequential(t *testing.T) {
	g := gridGraph(3)
	landmarks := landmark.SelectFirstK(g, 3)

	seq := landmark.PrecomputeFor(g, landmarks)
	par, err := landmark.PrecomputeParallel(context.Background(), g, landmarks)
	require.NoError(t, err)

	for i := range landmarks {
		for _, n := range g.Nodes() {
			require.Equal(t, seq.DistanceFrom(i, n), par.DistanceFrom(i, n))
		}
	}
}

func TestHeuristicFor_Admissible(t *testing.T) {
	g := gridGraph(5)
	tables := landmark.Precompute(g, 3)
	target := roadgraph.NodeID(13) // center of a 5x5 grid

	h := landmark.HeuristicFor(tables, target)

	e := search.NewEngine(g)
	trueDist := e.Search(target, roadgraph.NoTarget, nil).Dist

	for u, du := range trueDist {
		require.False(t, h(u).Greater(du), "heuristic(%d)=%v exceeds true distance %v", u, h(u), du)
	}
}

func TestHeuristicFor_Consistent(t *testing.T) {
	g := gridGraph(5)
	tables := landmark.Precompute(g, 3)
	target := roadgraph.NodeID(1)
	h := landmark.HeuristicFor(tables, target)

	for u, nbrs := range g.AdjacencyList() {
		for v, w := range nbrs {
			require.False(t, h(u).Greater(extcost.Add(h(v), extcost.Finite(uint32(w)))),
				"h(%d) > h(%d) + %d violates consistency", u, v, w)
		}
	}
}

func TestHeuristicFor_MatchesTargetItself(t *testing.T) {
	g := gridGraph(4)
	tables := landmark.Precompute(g, 2)
	target := roadgraph.NodeID(7)
	h := landmark.HeuristicFor(tables, target)

	require.Equal(t, extcost.Zero, h(target))
}

func TestALT_MatchesPlainDijkstraCost(t *testing.T) {
	g := gridGraph(6)
	tables := landmark.Precompute(g, 4)

	source := roadgraph.NodeID(1)
	target := roadgraph.NodeID(36)

	plain := search.NewEngine(g).Search(source, target, nil)

	h := landmark.HeuristicFor(tables, target)
	alt := search.NewEngine(g).Search(source, target, h)

	require.Equal(t, plain.TargetCost, alt.TargetCost)
}
