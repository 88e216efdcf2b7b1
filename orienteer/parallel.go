package orienteer

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"
)

// shardCount is the number of independently owned partitions of the
// best-value map. Must be a power of two.
const shardCount = 64

// shardedMap is the best-value map of the parallel engine. During expansion
// every worker reads it; during admission each shard is written by exactly
// one goroutine, so no locks are needed.
type shardedMap struct {
	shards [shardCount]map[Key]State
	total  int
}

func newShardedMap() *shardedMap {
	sm := &shardedMap{}
	for i := range sm.shards {
		sm.shards[i] = make(map[Key]State)
	}
	return sm
}

func shardOf(k Key) int { return int(k.hash() & (shardCount - 1)) }

func (sm *shardedMap) put(k Key, s State) {
	m := sm.shards[shardOf(k)]
	if _, ok := m[k]; !ok {
		sm.total++
	}
	m[k] = s
}

// all yields every retained state. Only safe between levels.
func (sm *shardedMap) all() iter.Seq[State] {
	return func(yield func(State) bool) {
		for i := range sm.shards {
			for _, s := range sm.shards[i] {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// best returns the largest retained value. Only safe between levels.
func (sm *shardedMap) best() int64 {
	var v int64
	for s := range sm.all() {
		if s.value > v {
			v = s.value
		}
	}
	return v
}

// admit replays shard sh's candidates in generation order (worker by
// worker, each in its own order) against the shard, exactly as the FIFO
// driver would meet them. Admitted candidates are marked in keep.
func (sm *shardedMap) admit(sh int, bufs []levelBuf) (admitted, improved int64) {
	m := sm.shards[sh]
	for w := range bufs {
		b := &bufs[w]
		for _, i := range b.buckets[sh] {
			k, child := b.keys[i], b.gen[i]
			cur, ok := m[k]
			if ok && child.value <= cur.value {
				continue
			}
			if ok {
				improved++
			} else {
				admitted++
			}
			m[k] = child
			b.keep[i] = true
		}
	}

	return admitted, improved
}

// levelBuf is one worker's output for one level: the candidates that may be
// admitted, in generation order, bucketed by shard.
type levelBuf struct {
	gen     []State
	keys    []Key
	keep    []bool
	buckets [shardCount][]int32
	// seen is the best candidate value per key so far in this buffer.
	seen map[Key]int64

	expanded, generated int64
}

func (b *levelBuf) reset() {
	b.gen, b.keys = b.gen[:0], b.keys[:0]
	for i := range b.buckets {
		b.buckets[i] = b.buckets[i][:0]
	}
	clear(b.seen)
	b.expanded, b.generated = 0, 0
}

// runParallel is the level-synchronous driver. It makes the same admission
// decisions as runSequential, so both engines return the same Result under
// either Dominance.
//
// Every state of a level has the same time remaining, so the FIFO driver
// handles one level as a block: it expands the frontier in order and admits
// each successor iff it beats the running maximum of its key. That running
// maximum depends only on the map before the level and on the earlier
// successors of the same key. Level L therefore runs in three stages:
//
//  1. Expand: workers expand contiguous chunks of the frontier against the
//     frozen map, dropping successors that cannot be admitted.
//  2. Admit: each shard replays its candidates in generation order.
//  3. Collect: the admitted candidates, in generation order, form the next
//     frontier, stale ones included.
func (e *Engine) runParallel(ctx context.Context) (Result, error) {
	sm := newShardedMap()
	s0 := e.Initial()
	sm.put(e.keys.key(s0), s0)
	frontier := []State{s0}
	workers := e.opts.Workers
	bufs := make([]levelBuf, workers)
	for w := range bufs {
		bufs[w].seen = make(map[Key]int64)
	}

	for len(frontier) > 0 {
		if ctx.Err() != nil {
			return e.stopParallel(sm, interrupted(ctx))
		}
		if frontier[0].time-1 <= 0 {
			break
		}
		if len(frontier) > e.stats.PeakFrontier {
			e.stats.PeakFrontier = len(frontier)
		}
		e.stats.Levels++
		e.opts.OnLevel(LevelInfo{
			TimeRemaining: frontier[0].time,
			Frontier:      len(frontier),
			Retained:      sm.total,
			Best:          sm.best(),
		})

		// Stage 1: expand.
		grp, gctx := errgroup.WithContext(ctx)
		chunk := (len(frontier) + workers - 1) / workers
		for w := range bufs {
			b := &bufs[w]
			b.reset()
			lo := w * chunk
			if lo >= len(frontier) {
				continue
			}
			part := frontier[lo:min(lo+chunk, len(frontier))]
			grp.Go(func() error {
				return e.expandChunk(gctx, sm, part, b)
			})
		}
		err := grp.Wait()
		for w := range bufs {
			e.stats.Expanded += bufs[w].expanded
			e.stats.Generated += bufs[w].generated
		}
		if err != nil {
			return e.stopParallel(sm, e.workerErr(ctx, err))
		}

		// Stage 2: admit, one owner per shard.
		counts := make([][2]int64, workers)
		grp, gctx = errgroup.WithContext(ctx)
		for w := range counts {
			c := &counts[w]
			grp.Go(func() error {
				for sh := w; sh < shardCount; sh += workers {
					if err := gctx.Err(); err != nil {
						return err
					}
					a, i := sm.admit(sh, bufs)
					c[0] += a
					c[1] += i
				}
				return nil
			})
		}
		err = grp.Wait()
		for _, c := range counts {
			e.stats.Admitted += c[0]
			e.stats.Improved += c[1]
			sm.total += int(c[0])
		}
		if err != nil {
			return e.stopParallel(sm, e.workerErr(ctx, err))
		}

		// Stage 3: collect.
		next := make([]State, 0, len(frontier))
		for w := range bufs {
			b := &bufs[w]
			for i, keep := range b.keep {
				if keep {
					next = append(next, b.gen[i])
				}
			}
		}
		frontier = next

		if e.opts.MaxStates > 0 && sm.total > e.opts.MaxStates {
			return e.stopParallel(sm, fmt.Errorf("%w: %d entries > %d", ErrBudgetExceeded, sm.total, e.opts.MaxStates))
		}
	}

	e.stats.Retained = sm.total
	return aggregate(sm.all(), false), nil
}

// stopParallel returns the partial result retained so far with err.
func (e *Engine) stopParallel(sm *shardedMap, err error) (Result, error) {
	e.stats.Retained = sm.total
	return aggregate(sm.all(), true), err
}

// workerErr prefers the interruption of the parent context over the error
// a worker observed through the group context.
func (e *Engine) workerErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return interrupted(ctx)
	}
	return err
}

// expandChunk expands part into b. A successor is kept as a candidate only
// if it beats both the frozen map entry and every earlier candidate of its
// key in b; anything else cannot be admitted by stage 2.
func (e *Engine) expandChunk(ctx context.Context, sm *shardedMap, part []State, b *levelBuf) error {
	x := newExpander(e.g)
	for i, s := range part {
		if i%ctxCheckEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		b.expanded++
		for child := range x.successors(s) {
			b.generated++
			k := e.keys.key(child)
			sh := shardOf(k)
			if cur, ok := sm.shards[sh][k]; ok && child.value <= cur.value {
				continue
			}
			if v, ok := b.seen[k]; ok && child.value <= v {
				continue
			}
			b.seen[k] = child.value
			b.buckets[sh] = append(b.buckets[sh], int32(len(b.gen)))
			b.gen = append(b.gen, child)
			b.keys = append(b.keys, k)
		}
	}
	if cap(b.keep) < len(b.gen) {
		b.keep = make([]bool, len(b.gen))
	} else {
		b.keep = b.keep[:len(b.gen)]
		clear(b.keep)
	}

	return nil
}
