// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Graph construction from records.
//
// Determinism:
//   - Arena order equals record order; reward indices follow arena order.
//   - Neighbor order equals the order listed in each record.

package core

import (
	"fmt"
	"sort"
)

// Build validates records and assembles an immutable Graph.
//
// Implementation:
//   - Stage 1: Register every name in arena order; reject empty names,
//     duplicates and negative rates.
//   - Stage 2: Assign reward indices to nodes with Rate > 0.
//   - Stage 3: Resolve neighbor names into arena indices.
//   - Stage 4: Compute the lexicographic name rank of every node.
//
// Errors:
//   - ErrEmptyName, *DuplicateError, ErrNegativeRate (stage 1).
//   - ErrTooManyRewardNodes (stage 2).
//   - *ReferenceError for the first unresolved neighbor (stage 3).
//
// Complexity:
//   - Time O(V log V + E), Space O(V + E).
func Build(records []Record) (*Graph, error) {
	n := len(records)
	g := &Graph{
		nodes:  make([]Node, n),
		index:  make(map[string]int, n),
		rank:   make([]int, n),
		reward: make([]int, n),
	}

	// Stage 1: names and rates.
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("%w (record %d)", ErrEmptyName, i)
		}
		if first, dup := g.index[rec.Name]; dup {
			return nil, &DuplicateError{Name: rec.Name, First: first, Again: i}
		}
		if rec.Rate < 0 {
			return nil, fmt.Errorf("%w: node %q rate=%d", ErrNegativeRate, rec.Name, rec.Rate)
		}
		g.index[rec.Name] = i
		g.nodes[i] = Node{Name: rec.Name, Rate: rec.Rate}
	}

	// Stage 2: dense reward indices.
	for i := range g.nodes {
		if g.nodes[i].Rate == 0 {
			g.reward[i] = -1
			continue
		}
		if len(g.byBit) == MaxRewardNodes {
			return nil, fmt.Errorf("%w: limit is %d", ErrTooManyRewardNodes, MaxRewardNodes)
		}
		g.reward[i] = len(g.byBit)
		g.byBit = append(g.byBit, i)
	}

	// Stage 3: neighbor resolution.
	for i, rec := range records {
		nbrs := make([]int, 0, len(rec.Neighbors))
		for _, name := range rec.Neighbors {
			j, ok := g.index[name]
			if !ok {
				return nil, &ReferenceError{Node: rec.Name, Neighbor: name}
			}
			nbrs = append(nbrs, j)
		}
		g.nodes[i].Neighbors = nbrs
	}

	// Stage 4: name ranks.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return g.nodes[order[a]].Name < g.nodes[order[b]].Name
	})
	for r, i := range order {
		g.rank[i] = r
	}

	return g, nil
}

// MustBuild is like Build but panics on error. Intended for fixtures.
func MustBuild(records []Record) *Graph {
	g, err := Build(records)
	if err != nil {
		panic(err)
	}

	return g
}
