package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kylerchin/bast-routing-homework/ingest"
	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

// fakeStream replays a fixed slice of elements, matching ingest.Stream.
type fakeStream struct {
	nodes []ingest.Node
	ways  []ingest.Way
	pos   int
}

func (f *fakeStream) Next() (*ingest.Node, *ingest.Way, bool, error) {
	if f.pos < len(f.nodes) {
		n := f.nodes[f.pos]
		f.pos++
		return &n, nil, true, nil
	}
	wi := f.pos - len(f.nodes)
	if wi < len(f.ways) {
		w := f.ways[wi]
		f.pos++
		return nil, &w, true, nil
	}
	return nil, nil, false, nil
}

func TestBuildFromStream_ResidentialWay(t *testing.T) {
	// Two nodes roughly 300m apart (about 0.0027 degrees latitude),
	// on a residential way (30 km/h -> 8.3333 m/s).
	s := &fakeStream{
		nodes: []ingest.Node{
			{ID: 1, Lat: 0.0, Lon: 0.0},
			{ID: 2, Lat: 0.0027, Lon: 0.0},
		},
		ways: []ingest.Way{
			{ID: 100, NodeIDs: []int64{1, 2}, Tags: map[string]string{"highway": "residential"}},
		},
	}

	g, err := ingest.BuildFromStream(s, ingest.DefaultSpeedTableKMH())
	require.NoError(t, err)

	require.True(t, g.HasNode(1))
	require.True(t, g.HasNode(2))
	cost, ok := g.Neighbor(1, 2)
	require.True(t, ok)
	require.Greater(t, cost, roadgraph.Seconds(0))
}

func TestBuildFromStream_UnknownHighwayDropsWay(t *testing.T) {
	s := &fakeStream{
		nodes: []ingest.Node{
			{ID: 1, Lat: 0, Lon: 0},
			{ID: 2, Lat: 0.01, Lon: 0},
		},
		ways: []ingest.Way{
			{ID: 100, NodeIDs: []int64{1, 2}, Tags: map[string]string{"highway": "footway"}},
		},
	}

	g, err := ingest.BuildFromStream(s, ingest.DefaultSpeedTableKMH())
	require.NoError(t, err)
	require.Equal(t, 0, g.NodeCount())
}

func TestBuildFromStream_MissingHighwayTagDropsWay(t *testing.T) {
	s := &fakeStream{
		nodes: []ingest.Node{
			{ID: 1, Lat: 0, Lon: 0},
			{ID: 2, Lat: 0.01, Lon: 0},
		},
		ways: []ingest.Way{
			{ID: 100, NodeIDs: []int64{1, 2}, Tags: map[string]string{}},
		},
	}

	g, err := ingest.BuildFromStream(s, ingest.DefaultSpeedTableKMH())
	require.NoError(t, err)
	require.Equal(t, 0, g.NodeCount())
}

func TestBuildFromStream_TooFewNodesDropsWay(t *testing.T) {
	s := &fakeStream{
		nodes: []ingest.Node{
			{ID: 1, Lat: 0, Lon: 0},
		},
		ways: []ingest.Way{
			{ID: 100, NodeIDs: []int64{1}, Tags: map[string]string{"highway": "residential"}},
		},
	}

	g, err := ingest.BuildFromStream(s, ingest.DefaultSpeedTableKMH())
	require.NoError(t, err)
	require.Equal(t, 0, g.NodeCount())
}

func TestBuildFromStream_UnknownCoordinateDropsSegment(t *testing.T) {
	// Node 2's coordinates never arrive in the stream.
	s := &fakeStream{
		nodes: []ingest.Node{
			{ID: 1, Lat: 0, Lon: 0},
		},
		ways: []ingest.Way{
			{ID: 100, NodeIDs: []int64{1, 2}, Tags: map[string]string{"highway": "residential"}},
		},
	}

	g, err := ingest.BuildFromStream(s, ingest.DefaultSpeedTableKMH())
	require.NoError(t, err)
	require.Equal(t, 0, g.NodeCount())
}

func TestBuildFromStream_DuplicateSegmentLastWriterWins(t *testing.T) {
	s := &fakeStream{
		nodes: []ingest.Node{
			{ID: 1, Lat: 0, Lon: 0},
			{ID: 2, Lat: 0.01, Lon: 0},
		},
		ways: []ingest.Way{
			{ID: 100, NodeIDs: []int64{1, 2}, Tags: map[string]string{"highway": "motorway"}},
			{ID: 101, NodeIDs: []int64{1, 2}, Tags: map[string]string{"highway": "service"}},
		},
	}

	g, err := ingest.BuildFromStream(s, ingest.DefaultSpeedTableKMH())
	require.NoError(t, err)

	motorwayCost, _ := costIfBuiltAlone(t, s.nodes, ingest.Way{ID: 100, NodeIDs: []int64{1, 2}, Tags: map[string]string{"highway": "motorway"}})
	cost, ok := g.Neighbor(1, 2)
	require.True(t, ok)
	require.NotEqual(t, motorwayCost, cost)
}

func costIfBuiltAlone(t *testing.T, nodes []ingest.Node, way ingest.Way) (roadgraph.Seconds, bool) {
	t.Helper()
	s := &fakeStream{nodes: nodes, ways: []ingest.Way{way}}
	g, err := ingest.BuildFromStream(s, ingest.DefaultSpeedTableKMH())
	require.NoError(t, err)
	return g.Neighbor(1, 2)
}

func TestBuildFromStream_MultiSegmentWay(t *testing.T) {
	s := &fakeStream{
		nodes: []ingest.Node{
			{ID: 1, Lat: 0, Lon: 0},
			{ID: 2, Lat: 0.01, Lon: 0},
			{ID: 3, Lat: 0.02, Lon: 0},
		},
		ways: []ingest.Way{
			{ID: 100, NodeIDs: []int64{1, 2, 3}, Tags: map[string]string{"highway": "primary"}},
		},
	}

	g, err := ingest.BuildFromStream(s, ingest.DefaultSpeedTableKMH())
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	_, ok12 := g.Neighbor(1, 2)
	_, ok23 := g.Neighbor(2, 3)
	require.True(t, ok12)
	require.True(t, ok23)
}
