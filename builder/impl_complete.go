// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Moves i <-> j for every i < j, emitted in lexicographic (i, j) order.
//
// Complexity: O(n²) moves.

package builder

import "fmt"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.addNode(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.addEdge(cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}
