package extcost

import (
	"math"
	"strconv"
)

// Cost is a saturating, totally ordered extended-cost value: either a
// finite number of seconds, representable in 32 bits, or Inf. Finite values
// compare and add numerically; Inf compares greater than every finite value
// and absorbs addition.
//
// The zero value of Cost is the additive identity (zero seconds), not Inf.
type Cost uint64

// Inf represents +∞: an unreached node, or an edge/path with no finite
// cost. It is chosen so that it is strictly greater than any value that
// fits in the 32-bit range finite costs live in.
const Inf Cost = math.MaxUint64

// Zero is the additive identity.
const Zero Cost = 0

// maxFinite is the largest sum two finite Costs may produce before
// Add saturates to Inf, matching the 32-bit unsigned range EdgeCost values
// are drawn from.
const maxFinite = math.MaxUint32

// Finite wraps a non-negative integer-second cost as a finite Cost. Callers
// are expected to pass values that already fit in the 32-bit EdgeCost
// range; Finite does not itself validate that.
func Finite(seconds uint32) Cost {
	return Cost(seconds)
}

// IsFinite reports whether c is not +∞.
func (c Cost) IsFinite() bool {
	return c != Inf
}

// Less reports whether c orders strictly before other.
func (c Cost) Less(other Cost) bool {
	return c < other
}

// Greater reports whether c orders strictly after other.
func (c Cost) Greater(other Cost) bool {
	return c > other
}

// Add returns a + b, saturating to Inf if either operand is Inf or if the
// sum of two finite values would exceed the 32-bit unsigned range.
func Add(a, b Cost) Cost {
	if a == Inf || b == Inf {
		return Inf
	}
	sum := uint64(a) + uint64(b)
	if sum > maxFinite {
		return Inf
	}
	return Cost(sum)
}

// AbsDiff returns |a - b|. Both operands must be finite; the ALT heuristic
// never calls this with an infinite operand (it treats that case as a
// zero contribution instead, per the landmark package).
func AbsDiff(a, b Cost) Cost {
	if a > b {
		return a - b
	}
	return b - a
}

// Min returns the lesser of a and b.
func Min(a, b Cost) Cost {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max(a, b Cost) Cost {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts c to the closed interval [lo, hi].
func Clamp(c, lo, hi Cost) Cost {
	return Max(lo, Min(c, hi))
}

// String renders c as either its decimal seconds or "+Inf".
func (c Cost) String() string {
	if c == Inf {
		return "+Inf"
	}
	return strconv.FormatUint(uint64(c), 10)
}
