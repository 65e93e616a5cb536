package builder

import (
	"fmt"

	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

const (
	methodIslands  = "Islands"
	minIslandSize  = 2
	minIslandCount = 1
)

// Islands returns a Constructor building islandCount separate grid-shaped
// road networks, each islandSize x islandSize, with no edges between
// islands. This is the standard fixture for exercising
// search.Engine.PruneToLargestComponent and FindLargestComponent: the
// largest island (or the first one built, if sizes tie) is the component
// that should survive pruning.
//
// Node IDs are partitioned by island so that islands never collide: island
// k (0-indexed) occupies IDs [k*islandSize*islandSize+1, (k+1)*islandSize*islandSize].
//
// Complexity: O(islandCount * islandSize^2).
func Islands(islandCount, islandSize int) Constructor {
	return func(g *roadgraph.Graph, cfg *builderConfig) error {
		if islandCount < minIslandCount {
			return fmt.Errorf("%s: islandCount=%d must be >= %d: %w", methodIslands, islandCount, minIslandCount, ErrTooFewNodes)
		}
		if islandSize < minIslandSize {
			return fmt.Errorf("%s: islandSize=%d must be >= %d: %w", methodIslands, islandSize, minIslandSize, ErrTooFewNodes)
		}

		perIsland := islandSize * islandSize
		for k := 0; k < islandCount; k++ {
			base := k * perIsland
			id := func(r, c int) roadgraph.NodeID {
				return roadgraph.NodeID(base + r*islandSize + c + 1)
			}
			for r := 0; r < islandSize; r++ {
				for c := 0; c < islandSize; c++ {
					u := id(r, c)
					if c+1 < islandSize {
						g.AddEdge(u, id(r, c+1), roadgraph.Seconds(cfg.costFn(cfg.rng)))
					}
					if r+1 < islandSize {
						g.AddEdge(u, id(r+1, c), roadgraph.Seconds(cfg.costFn(cfg.rng)))
					}
				}
			}
		}

		return nil
	}
}
