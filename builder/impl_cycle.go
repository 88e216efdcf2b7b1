// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Nodes idFn(0..n-1); moves i <-> (i+1) mod n in increasing i.

package builder

import "fmt"

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.addNode(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			s.addEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
