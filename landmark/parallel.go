package landmark

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kylerchin/bast-routing-homework/extcost"
	"github.com/kylerchin/bast-routing-homework/roadgraph"
	"github.com/kylerchin/bast-routing-homework/search"
)

// PrecomputeParallel is PrecomputeFor's concurrent twin: each landmark's
// search runs on its own goroutine and its own search.Engine, since an
// Engine's label map and round counter are not safe to share across
// goroutines. If any worker's context is cancelled the whole group
// returns early with that error; landmark searches never fail on their
// own, so in practice only ctx cancellation triggers this path.
func PrecomputeParallel(ctx context.Context, g *roadgraph.Graph, landmarks []roadgraph.NodeID) (*Tables, error) {
	dist := make([]map[roadgraph.NodeID]extcost.Cost, len(landmarks))

	grp, ctx := errgroup.WithContext(ctx)
	for i, l := range landmarks {
		i, l := i, l
		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			e := search.NewEngine(g)
			res := e.Search(l, roadgraph.NoTarget, nil)
			dist[i] = res.Dist
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return &Tables{Landmarks: landmarks, dist: dist}, nil
}
