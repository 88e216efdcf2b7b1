// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig is resolved once per BuildRecords call and passed by value.
type builderConfig struct {
	// idFn maps a constructor-local index to a node name.
	idFn IDFn

	// rng drives stochastic constructors and rate policies; nil unless set.
	rng *rand.Rand

	// rateFn draws the rate of every newly created node.
	rateFn RateFn

	// rates overrides rateFn for specific names.
	rates map[string]int
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		rng:    nil,
		rateFn: DefaultRateFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
