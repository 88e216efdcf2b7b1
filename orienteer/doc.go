// Package orienteer searches for the maximum value a team of cooperating
// agents can collect on a graph within a fixed number of time steps.
//
// Model
//
//	Every agent starts on the same node with Budget steps. In one step each
//	agent either activates its current node (rate > 0, not yet activated by
//	anyone) or moves to one neighbor; an agent with neither option idles in
//	place. Activating node v when t steps remain earns rate(v) × (t − 1).
//	Two agents may not activate the same node in the same step.
//
// Search
//
//	The engine expands states forward from the initial state and keeps, per
//	canonical Key, the best-valued State seen so far. A successor is kept
//	and expanded only when its key is new or its value beats the stored one.
//	Two Dominance strategies define the key:
//
//	  - DominanceCount: sorted agent movers + number of activated nodes.
//	    Fast and lossy; the result is a lower bound that matches the optimum
//	    on typical inputs.
//	  - DominanceSet: sorted movers + activated set + time remaining.
//	    Exact.
//
//	WithWorkers(1) runs a FIFO worklist. WithWorkers(n > 1) runs a
//	level-synchronous engine over a sharded best-value map that replays
//	each level's successors in FIFO order, so it retains the same states
//	and returns the same Result as the FIFO worklist for any n.
//
// Errors
//
//   - ErrNilGraph, ErrBadBudget, ErrBadAgents, ErrOptionViolation and
//     *core.LookupError are returned by NewEngine before any work.
//   - ErrInterrupted (cancellation, WithTimeLimit) and ErrBudgetExceeded
//     (WithMaxStates) come with a Partial Result holding the best value
//     found so far.
//
// Usage
//
//	res, err := orienteer.Search(ctx, g,
//	    orienteer.Query{Start: "AA", Budget: 26, Agents: 2},
//	    orienteer.WithWorkers(runtime.NumCPU()),
//	    orienteer.WithLogger(logrus.StandardLogger()),
//	)
//	if errors.Is(err, orienteer.ErrInterrupted) {
//	    // res.Value is a lower bound
//	}
package orienteer
