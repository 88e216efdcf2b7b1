// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"maps"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node name generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRateFn overrides the per-node rate generator. Panics on nil.
func WithRateFn(fn RateFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}
	return func(c *builderConfig) {
		c.rateFn = fn
	}
}

// WithRates pins the rate of named nodes, overriding the rate policy.
// Panics on a negative rate.
func WithRates(rates map[string]int) BuilderOption {
	for name, r := range rates {
		if r < 0 {
			panic(fmt.Sprintf("builder: WithRates(%s=%d): negative rate", name, r))
		}
	}
	pinned := maps.Clone(rates)
	return func(c *builderConfig) {
		if c.rates == nil {
			c.rates = make(map[string]int, len(pinned))
		}
		maps.Copy(c.rates, pinned)
	}
}
