// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeCost is the cost emitted when no CostFn is configured.
const DefaultEdgeCost int64 = 1

// CostFn draws one edge cost; rng may be nil.
type CostFn func(rng *rand.Rand) int64

// DefaultCostFn always returns DefaultEdgeCost.
func DefaultCostFn(_ *rand.Rand) int64 { return DefaultEdgeCost }

// ConstantCostFn always returns value. Negative values are allowed; the
// path finder accepts them.
func ConstantCostFn(value int64) CostFn {
	return func(_ *rand.Rand) int64 { return value }
}

// UniformCostFn draws uniformly from [min, max]. With a nil rng it returns min.
// Panics if max < min.
func UniformCostFn(min, max int64) CostFn {
	if max < min {
		panic(fmt.Sprintf("UniformCostFn: require min <= max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
