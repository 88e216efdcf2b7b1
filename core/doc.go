// Package core provides the immutable graph model consumed by the search
// packages: an arena of reward-bearing nodes addressed by stable integer
// indices.
//
// A Graph is built once from a slice of Record values (name, rate, neighbor
// names) and never mutated afterwards. Every structure outside this package
// refers to nodes by their arena index, never by pointer, so a *Graph can be
// shared freely between goroutines without locking.
//
// Model:
//
//   - Node i lives at arena position i, in the order the records were given.
//   - Neighbors are directed: a record lists the nodes reachable in one move.
//     Undirected inputs simply list each edge on both endpoints.
//   - Nodes with Rate > 0 receive a dense "reward index" (0..RewardCount-1)
//     which search code uses as a bit position in a 64-bit activated set.
//   - NameRank(i) is the position of node i in lexicographic name order; it
//     lets callers sort by name with integer compares only.
//
// Construction:
//
//	g, err := core.Build([]core.Record{
//	    {Name: "AA", Rate: 0, Neighbors: []string{"BB"}},
//	    {Name: "BB", Rate: 13, Neighbors: []string{"AA"}},
//	})
//
// Errors:
//
//	ErrEmptyName           – a record has an empty name.
//	ErrDuplicateNode       – two records share a name (*DuplicateError).
//	ErrNegativeRate        – a record has a negative rate.
//	ErrUndefinedReference  – a neighbor name is not defined (*ReferenceError).
//	ErrTooManyRewardNodes  – more than MaxRewardNodes records have Rate > 0.
//	ErrNodeNotFound        – Lookup of an unknown name (*LookupError).
//
// Complexity:
//
//   - Build: O(V log V + E) time, O(V + E) space.
//   - Index/Lookup: O(1). Neighbors/Rate: O(1). Node: O(deg), it copies Neighbors.
package core
