// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// constants.go - method names, minima and fixed names shared by constructors.

package builder

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minGridDim       = 1
	minCompleteNodes = 1
	minSparseNodes   = 1
)

const (
	probMin = 0.0
	probMax = 1.0
)

// CenterVertexID names the hub of Star.
const CenterVertexID = "Center"

// gridIDFmt is the fixed "r,c" coordinate naming of Grid.
const gridIDFmt = "%d,%d"
