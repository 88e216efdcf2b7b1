// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances from a start node.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/orienteer/core"
)

// ctxCheckEvery is the number of visits between cancellation checks.
const ctxCheckEvery = 256

// queueItem pairs an arena index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	head  int
	depth []int
}

// Distances returns the hop distance from arena index src to every node,
// with Unreached for nodes in other components or beyond MaxDepth.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func Distances(ctx context.Context, g *core.Graph, src int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if src < 0 || src >= g.Len() {
		return nil, fmt.Errorf("%w: index %d", ErrStartVertexNotFound, src)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   ctx,
		queue: make([]queueItem, 0, n),
		depth: make([]int, n),
	}
	for i := range w.depth {
		w.depth[i] = Unreached
	}

	// Seed queue with start node
	w.enqueue(src, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.depth, nil
}

// enqueue marks id reached at depth d and adds it to the queue.
func (w *walker) enqueue(id, d int) {
	w.depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if w.head%ctxCheckEvery == 0 {
			if err := w.ctx.Err(); err != nil {
				return err
			}
		}

		item := w.queue[w.head]
		w.head++
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor in
// record order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		// first time seen?
		if w.depth[nbr] == Unreached {
			w.enqueue(nbr, nextDepth)
		}
	}
}
