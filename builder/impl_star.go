// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub named CenterVertexID, leaves idFn(1..n-1).
//   - Moves Center <-> leaf in increasing leaf index.

package builder

import "fmt"

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		s.addNode(CenterVertexID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			s.addNode(leaf)
			s.addEdge(CenterVertexID, leaf)
		}

		return nil
	}
}
