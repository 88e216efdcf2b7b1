// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// rate_fn.go - per-node rate policies.
//
// Policies receive the (possibly nil) RNG; with a nil RNG stochastic
// policies fall back to DefaultRate so that seedless builds stay valid.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultRate is the rate assigned by DefaultRateFn.
const DefaultRate = 1

// RateFn draws the rate of a new node.
type RateFn func(rng *rand.Rand) int

// DefaultRateFn returns DefaultRate for every node.
func DefaultRateFn(_ *rand.Rand) int {
	return DefaultRate
}

// ConstantRateFn returns value for every node. Panics on a negative value.
func ConstantRateFn(value int) RateFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantRateFn: value must be ≥ 0, got %d", value))
	}
	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformRateFn draws uniformly from [min, max]. Panics unless 0 ≤ min ≤ max.
func UniformRateFn(min, max int) RateFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformRateFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int {
		if rng == nil {
			return DefaultRate
		}
		return min + rng.Intn(max-min+1)
	}
}

// SparseRateFn gives a node a rate in [min, max] with probability p and 0
// otherwise, mimicking networks where most nodes carry no reward.
// Panics unless 0 ≤ p ≤ 1 and 1 ≤ min ≤ max.
func SparseRateFn(p float64, min, max int) RateFn {
	if p < probMin || p > probMax {
		panic(fmt.Sprintf("SparseRateFn: p must be in [0,1], got %g", p))
	}
	if min < 1 || max < min {
		panic(fmt.Sprintf("SparseRateFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int {
		if rng == nil {
			return DefaultRate
		}
		if rng.Float64() >= p {
			return 0
		}
		return min + rng.Intn(max-min+1)
	}
}
