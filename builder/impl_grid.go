// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Nodes named "r,c" in row-major order; cfg.idFn is not used.
//   - Each cell links right then down (4-neighborhood).

package builder

import "fmt"

// Grid returns a Constructor that builds an R×C 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.addNode(fmt.Sprintf(gridIDFmt, r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					s.addEdge(u, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					s.addEdge(u, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}

		return nil
	}
}
