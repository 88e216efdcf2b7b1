// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only query surface of Graph.
// Policy:
//   - No mutation and no locking: a built Graph is immutable.
//   - Index arguments are trusted; out-of-range indices panic like slice access.

package core

import (
	"slices"
	"sort"
)

// Len returns the number of nodes in the arena.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns a copy of the node stored at arena index i, Neighbors included.
// Complexity: O(deg(i)).
func (g *Graph) Node(i int) Node {
	n := g.nodes[i]
	n.Neighbors = slices.Clone(n.Neighbors)
	return n
}

// Name returns the name of node i.
func (g *Graph) Name(i int) string { return g.nodes[i].Name }

// Rate returns the rate of node i.
func (g *Graph) Rate(i int) int { return g.nodes[i].Rate }

// Neighbors returns the arena indices reachable from node i in one move.
// The slice is shared and must not be modified.
func (g *Graph) Neighbors(i int) []int { return g.nodes[i].Neighbors }

// Index resolves a node name to its arena index.
// Complexity: O(1).
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Lookup resolves a node name or returns a *LookupError.
//
// Errors:
//   - *LookupError (errors.Is(err, ErrNodeNotFound)) when name is absent.
func (g *Graph) Lookup(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return 0, &LookupError{Name: name}
	}

	return i, nil
}

// NameRank returns the position of node i in lexicographic name order.
// Comparing ranks is equivalent to comparing names.
func (g *Graph) NameRank(i int) int { return g.rank[i] }

// RewardCount returns the number of nodes with Rate > 0.
func (g *Graph) RewardCount() int { return len(g.byBit) }

// RewardBit returns the reward index of node i, or -1 when its rate is zero.
func (g *Graph) RewardBit(i int) int { return g.reward[i] }

// RewardNode returns the arena index holding reward index bit.
func (g *Graph) RewardNode(bit int) int { return g.byBit[bit] }

// Names returns all node names sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Names() []string {
	names := make([]string, len(g.nodes))
	for i := range g.nodes {
		names[i] = g.nodes[i].Name
	}
	sort.Strings(names)

	return names
}

// Records reconstructs the records the graph was built from, in arena order.
// Build(g.Records()) yields an equivalent graph.
func (g *Graph) Records() []Record {
	out := make([]Record, len(g.nodes))
	for i, nd := range g.nodes {
		nbrs := make([]string, len(nd.Neighbors))
		for k, j := range nd.Neighbors {
			nbrs[k] = g.nodes[j].Name
		}
		out[i] = Record{Name: nd.Name, Rate: nd.Rate, Neighbors: nbrs}
	}

	return out
}

// MaskNames expands an activated-set mask into sorted node names.
// Bits beyond RewardCount are ignored.
func (g *Graph) MaskNames(mask uint64) []string {
	names := make([]string, 0, len(g.byBit))
	for bit, i := range g.byBit {
		if mask&(1<<uint(bit)) != 0 {
			names = append(names, g.nodes[i].Name)
		}
	}
	sort.Strings(names)

	return names
}
