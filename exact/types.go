// Package exact computes the optimal collectible value on small graphs
// without any dominance pruning.
package exact

import "errors"

// MaxRewardNodes bounds the number of nodes with a positive rate; the
// agent combination step enumerates 3^n submask pairs.
const MaxRewardNodes = 16

// Sentinel errors for the exact solver.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("exact: graph is nil")

	// ErrBadBudget is returned when the time budget is below one step.
	ErrBadBudget = errors.New("exact: time budget must be positive")

	// ErrBadAgents is returned when fewer than one agent is requested.
	ErrBadAgents = errors.New("exact: agent count must be positive")

	// ErrTooManyRewardNodes is returned when the graph has more than
	// MaxRewardNodes nodes with a positive rate.
	ErrTooManyRewardNodes = errors.New("exact: too many reward nodes")
)

// Result is the optimum and one assignment achieving it.
type Result struct {
	// Value is the maximum collectible value.
	Value int64

	// Sets lists, per agent, the names of the nodes it activates (sorted).
	Sets [][]string
}
