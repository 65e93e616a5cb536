package builder

import (
	"fmt"

	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

const (
	methodChain   = "Chain"
	methodCycle   = "Cycle"
	minChainNodes = 2
	minCycleNodes = 3
	chainIDOffset = 1 // node IDs are 1-based; NodeID(0) is never emitted
)

// Chain returns a Constructor building a simple path 1-2-...-n, e.g. a
// single uninterrupted road segment. Requires n >= 2.
//
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(g *roadgraph.Graph, cfg *builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d must be >= %d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}
		for i := 0; i < n-1; i++ {
			u := roadgraph.NodeID(i + chainIDOffset)
			v := roadgraph.NodeID(i + chainIDOffset + 1)
			g.AddEdge(u, v, roadgraph.Seconds(cfg.costFn(cfg.rng)))
		}
		return nil
	}
}

// Cycle returns a Constructor building a simple cycle 1-2-...-n-1, e.g. a
// ring road. Requires n >= 3.
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *roadgraph.Graph, cfg *builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d must be >= %d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		for i := 0; i < n; i++ {
			u := roadgraph.NodeID(i + chainIDOffset)
			v := roadgraph.NodeID((i+1)%n + chainIDOffset)
			g.AddEdge(u, v, roadgraph.Seconds(cfg.costFn(cfg.rng)))
		}
		return nil
	}
}
