// Sentinel errors for builder's Constructors. Only sentinel variables are
// exposed; callers branch with errors.Is. Constructors never panic;
// validation failures are sentinel errors wrapped with %w for context.
package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols) is smaller than
// the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability argument outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked without
// an RNG resolved into builderConfig (supply WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed wraps a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
