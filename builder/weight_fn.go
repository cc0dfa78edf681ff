// Package builder: transition weight generators.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultWeight is the weight of every generated transition when no WeightFn
// is configured.
const DefaultWeight int64 = 1

// WeightFn produces a transition weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields value. Any value is
// accepted, including zero and negatives: the markov core does not validate
// weights and neither does this constructor.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly from [min,max]
// inclusive. The full int64 range is supported. With a nil RNG it yields min.
// Panics if max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	// diff is max-min computed in uint64 so wide ranges do not overflow.
	diff := uint64(max) - uint64(min)

	return func(rng *rand.Rand) int64 {
		switch {
		case rng == nil || diff == 0:
			return min
		case diff == math.MaxUint64:
			return int64(rng.Uint64())
		case diff < math.MaxInt64:
			return min + rng.Int63n(int64(diff+1))
		}
		// More than 2^63 values: reject draws from the uneven tail.
		n := diff + 1
		limit := math.MaxUint64 - math.MaxUint64%n
		for {
			if v := rng.Uint64(); v < limit {
				return int64(uint64(min) + v%n)
			}
		}
	}
}
