// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import "github.com/katalvlaran/orienteer/core"

// Common node names used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

// Common rates used across core tests (avoid magic numbers in test bodies).
const (
	Rate0  = 0
	Rate2  = 2
	Rate13 = 13
	Rate20 = 20
)

// lineRecords returns the A(0)–B(13)–C(2) line used by several packages.
func lineRecords() []core.Record {
	return []core.Record{
		{Name: NodeA, Rate: Rate0, Neighbors: []string{NodeB}},
		{Name: NodeB, Rate: Rate13, Neighbors: []string{NodeA, NodeC}},
		{Name: NodeC, Rate: Rate2, Neighbors: []string{NodeB}},
	}
}

// unsortedRecords declares names out of lexicographic order to exercise ranks.
func unsortedRecords() []core.Record {
	return []core.Record{
		{Name: NodeD, Rate: Rate20, Neighbors: []string{NodeA}},
		{Name: NodeA, Rate: Rate0, Neighbors: []string{NodeD, NodeC}},
		{Name: NodeC, Rate: Rate2, Neighbors: []string{NodeA}},
	}
}
