package builder

import (
	"fmt"

	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomSparse returns a Constructor sampling an Erdos-Renyi-like road
// network over n nodes (IDs 1..n): every unordered pair {i,j} becomes an
// edge independently with probability p. Requires cfg.rng to be set via
// WithSeed/WithRand unless p is 0 or 1, in which case the outcome is
// already deterministic and no RNG draw is needed.
//
// Complexity: O(n) nodes + O(n^2) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *roadgraph.Graph, cfg *builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d must be >= %d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				include := p == 1.0
				if cfg.rng != nil {
					include = cfg.rng.Float64() <= p
				}
				if !include {
					continue
				}
				g.AddEdge(roadgraph.NodeID(i), roadgraph.NodeID(j), roadgraph.Seconds(cfg.costFn(cfg.rng)))
			}
		}

		return nil
	}
}
