// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildRecords(bopts, cons...). Resolves cfg, runs cons in order on one sketch.
//   - Constructors are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical records.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orienteer/core"
)

// Constructor adds nodes and moves to a sketch using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit moves in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(s *sketch, cfg builderConfig) error

// BuildRecords resolves the builder configuration from bopts, applies all
// constructors in order to one sketch and returns its records: nodes in
// creation order, neighbors in emission order, rates drawn from the rate
// policy at node creation (WithRates overrides by name).
//
// Constructors sharing node names merge into one topology; repeated moves
// are emitted once.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildRecords(bopts []BuilderOption, cons ...Constructor) ([]core.Record, error) {
	cfg := newBuilderConfig(bopts...)
	s := newSketch(cfg)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildRecords: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildRecords: %w", err)
		}
	}

	return s.records(), nil
}

// BuildGraph is BuildRecords followed by core.Build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	recs, err := BuildRecords(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.Build(recs)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
