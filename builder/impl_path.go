// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits moves (i-1) <-> i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import "fmt"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.addNode(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			s.addEdge(cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}
