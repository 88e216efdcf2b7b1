// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required for 0 < p < 1 (else ErrNeedRandSource).
//   - For each unordered pair i < j in lexicographic order, links i <-> j
//     with probability p. Exactly one draw per pair.
//   - Nodes are created first, so rate draws precede edge draws.
//
// Determinism: fixed seed and options ⇒ identical records.

package builder

import "fmt"

// RandomSparse returns a Constructor for an Erdős–Rényi G(n, p) network.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			s.addNode(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case cfg.rng.Float64() >= p:
					continue
				}
				s.addEdge(cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}
