package ingest

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

// minWayNodes is the fewest node references a way may carry and still be
// considered: anything shorter cannot contribute an edge.
const minWayNodes = 2

// BuildFromStream consumes s to completion and returns the resulting road
// graph. Coordinates are cached as they arrive from Node elements; a way
// element is processed against whatever coordinates have been seen so far,
// so a way referencing a node the stream has not yet emitted is treated as
// having an unknown endpoint for that node (the segment is skipped, per
// the malformed-element error policy).
func BuildFromStream(s Stream, speeds SpeedTable) (*roadgraph.Graph, error) {
	g := roadgraph.New()
	coords := make(map[int64]orb.Point)

	for {
		node, way, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if node != nil {
			coords[node.ID] = orb.Point{node.Lon, node.Lat}
			continue
		}

		processWay(g, way, speeds, coords)
	}

	return g, nil
}

// processWay assigns a speed to way from its highway tag and, if one
// applies, walks consecutive node pairs computing an edge cost from
// haversine distance and that speed. Malformed or unrecognized ways are
// silently dropped, per policy.
func processWay(g *roadgraph.Graph, way *Way, speeds SpeedTable, coords map[int64]orb.Point) {
	if len(way.NodeIDs) < minWayNodes {
		return
	}

	speedMPS, ok := speeds.metersPerSecond(way.Tags["highway"])
	if !ok {
		return
	}

	prevID := way.NodeIDs[0]
	prevPoint, prevKnown := coords[prevID]

	for i := 1; i < len(way.NodeIDs); i++ {
		curID := way.NodeIDs[i]
		curPoint, curKnown := coords[curID]

		if prevKnown && curKnown {
			distM := geo.Distance(prevPoint, curPoint)
			cost := uint32(math.Floor(distM / speedMPS))
			g.AddEdge(roadgraph.NodeID(prevID), roadgraph.NodeID(curID), roadgraph.Seconds(cost))
		}

		prevID, prevPoint, prevKnown = curID, curPoint, curKnown
	}
}
