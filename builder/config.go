package builder

import "math/rand"

// CostFn produces an edge cost in whole seconds given an RNG (nil when the
// constructor is running deterministically). Implementations must return a
// non-negative value.
type CostFn func(rng *rand.Rand) uint32

// DefaultCostFn returns a constant edge cost of 1 second, used whenever a
// constructor is invoked without WithCostFn.
func DefaultCostFn(_ *rand.Rand) uint32 { return 1 }

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the resolved, immutable parameters shared by every
// Constructor: an optional RNG source and the edge cost policy.
type builderConfig struct {
	rng    *rand.Rand
	costFn CostFn
}

// newBuilderConfig applies opts over sensible defaults: nil RNG (fully
// deterministic) and DefaultCostFn.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:    nil,
		costFn: DefaultCostFn,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithCostFn overrides the edge cost policy. A nil fn is a no-op.
func WithCostFn(fn CostFn) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.costFn = fn
		}
	}
}

// WithRand sets an explicit RNG source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed seeds a new RNG for reproducible stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
