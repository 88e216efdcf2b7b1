// Package bfs provides breadth-first search over an immutable core.Graph,
// returning hop distances.
//
// What
//
//   - Explore nodes in non-decreasing move count from a start node.
//   - Returns a distance slice indexed by arena index, Unreached when a
//     node is in another component or beyond the MaxDepth limit.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Every move costs one time step, so hop distance is travel time.
//   - The exact solver compresses the graph to reward nodes using these
//     distances, bounded by the time budget.
//
// Complexity (V = nodes, E = moves)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	dist, err := bfs.Distances(ctx, g, idx, bfs.WithMaxDepth(24))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // or context errors
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
package bfs
