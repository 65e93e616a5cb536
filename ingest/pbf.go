package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

// pbfStream adapts an osmpbf.Scanner to the Stream interface.
type pbfStream struct {
	scanner *osmpbf.Scanner
}

func (p *pbfStream) Next() (*Node, *Way, bool, error) {
	for p.scanner.Scan() {
		switch v := p.scanner.Object().(type) {
		case *osm.Node:
			return &Node{ID: int64(v.ID), Lat: v.Lat, Lon: v.Lon}, nil, true, nil
		case *osm.Way:
			ids := make([]int64, len(v.Nodes))
			for i, wn := range v.Nodes {
				ids[i] = int64(wn.ID)
			}
			tags := make(map[string]string, len(v.Tags))
			for _, t := range v.Tags {
				tags[t.Key] = t.Value
			}
			return nil, &Way{ID: int64(v.ID), NodeIDs: ids, Tags: tags}, true, nil
		default:
			// Relations and anything else are ignored; keep scanning.
			continue
		}
	}
	return nil, nil, false, p.scanner.Err()
}

// Option customizes BuildGraph.
type Option func(cfg *buildConfig)

type buildConfig struct {
	speeds  SpeedTable
	numProc int
}

// WithSpeedTable overrides the highway-to-speed assignment used while
// building the graph.
func WithSpeedTable(t SpeedTable) Option {
	return func(cfg *buildConfig) {
		if t != nil {
			cfg.speeds = t
		}
	}
}

// WithParallelism sets how many goroutines osmpbf may use to decode PBF
// blobs concurrently. The default is 1 (fully sequential decoding).
func WithParallelism(n int) Option {
	return func(cfg *buildConfig) {
		if n > 0 {
			cfg.numProc = n
		}
	}
}

// BuildGraph opens the PBF extract at path and streams it into a road
// graph. An I/O failure opening or reading the file is returned as an
// error; malformed elements inside the file are dropped silently by
// BuildFromStream.
func BuildGraph(ctx context.Context, path string, opts ...Option) (*roadgraph.Graph, error) {
	cfg := &buildConfig{speeds: DefaultSpeedTableKMH(), numProc: 1}
	for _, opt := range opts {
		opt(cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := osmpbf.New(ctx, f, cfg.numProc)
	scanner.SkipRelations = true
	defer scanner.Close()

	g, err := BuildFromStream(&pbfStream{scanner: scanner}, cfg.speeds)
	if err != nil {
		return nil, fmt.Errorf("ingest: %s: %w", path, err)
	}

	return g, nil
}
