package builder

import (
	"fmt"

	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor building a rows x cols 4-neighborhood grid,
// with node IDs assigned row-major starting at 1 (node 0 is never used,
// matching roadgraph's avoidance of an implicit zero-value node). Every
// edge's cost comes from cfg.costFn, called once per edge.
//
// Complexity: O(rows*cols) nodes, O(rows*cols) edges.
func Grid(rows, cols int) Constructor {
	return func(g *roadgraph.Graph, cfg *builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d must each be >= %d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		id := func(r, c int) roadgraph.NodeID {
			return roadgraph.NodeID(r*cols + c + 1)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := id(r, c)
				if c+1 < cols {
					g.AddEdge(u, id(r, c+1), roadgraph.Seconds(cfg.costFn(cfg.rng)))
				}
				if r+1 < rows {
					g.AddEdge(u, id(r+1, c), roadgraph.Seconds(cfg.costFn(cfg.rng)))
				}
			}
		}

		return nil
	}
}
