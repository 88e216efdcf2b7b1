package orienteer

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/orienteer/core"
)

// ctxCheckEvery is the number of expansions between cancellation checks.
const ctxCheckEvery = 1024

// Engine runs one search. It moves through PhaseInitialized → PhaseRunning →
// PhaseDone and cannot be reused.
type Engine struct {
	g     *core.Graph
	q     Query
	start int
	opts  Options
	keys  keyer
	phase Phase
	stats Stats
}

// NewEngine validates the graph, query and options and returns an engine in
// PhaseInitialized.
//
// Errors:
//   - ErrNilGraph, ErrBadBudget, ErrBadAgents, ErrOptionViolation.
//   - *core.LookupError (errors.Is(err, core.ErrNodeNotFound)) for an unknown start.
func NewEngine(g *core.Graph, q Query, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if q.Budget < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, q.Budget)
	}
	if q.Agents < 1 || q.Agents > MaxAgents {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrBadAgents, q.Agents, MaxAgents)
	}
	start, err := g.Lookup(q.Start)
	if err != nil {
		return nil, fmt.Errorf("orienteer: start: %w", err)
	}

	return &Engine{
		g:     g,
		q:     q,
		start: start,
		opts:  o,
		keys:  keyer{g: g, dom: o.Dominance},
		phase: PhaseInitialized,
		stats: Stats{Dominance: o.Dominance, Workers: o.Workers},
	}, nil
}

// Phase reports the lifecycle stage of the engine.
func (e *Engine) Phase() Phase { return e.phase }

// Initial returns the initial state: every agent at the start node, nothing
// activated, the full budget and zero value.
func (e *Engine) Initial() State {
	return initialState(e.start, e.q.Budget, e.q.Agents)
}

// Run executes the search and aggregates the result.
//
// On cancellation, time limit or state budget overflow the returned Result is
// Partial and carries the best value retained so far, together with an error
// wrapping ErrInterrupted or ErrBudgetExceeded.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if e.phase != PhaseInitialized {
		return Result{}, ErrAlreadyRun
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if e.opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.TimeLimit)
		defer cancel()
	}

	log := e.opts.Logger.WithFields(logrus.Fields{
		"start":     e.q.Start,
		"budget":    e.q.Budget,
		"agents":    e.q.Agents,
		"dominance": e.opts.Dominance.String(),
		"workers":   e.opts.Workers,
	})
	e.phase = PhaseRunning
	log.Debug("search started")
	began := time.Now()

	var (
		res Result
		err error
	)
	if e.opts.Workers > 1 {
		res, err = e.runParallel(ctx)
	} else {
		res, err = e.runSequential(ctx)
	}

	e.stats.Elapsed = time.Since(began)
	res.Stats = e.stats
	e.phase = PhaseDone

	fields := logrus.Fields{
		"value":    res.Value,
		"expanded": e.stats.Expanded,
		"retained": e.stats.Retained,
		"elapsed":  e.stats.Elapsed,
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("search stopped early")
	} else {
		log.WithFields(fields).Info("search finished")
	}
	if e.opts.Observer != nil {
		e.opts.Observer.ObserveSearch(res.Stats, res.Value, err)
	}

	return res, err
}

// Search builds an engine and runs it.
func Search(ctx context.Context, g *core.Graph, q Query, opts ...Option) (Result, error) {
	e, err := NewEngine(g, q, opts...)
	if err != nil {
		return Result{}, err
	}

	return e.Run(ctx)
}

// MaxValue returns the maximum collectible value for start, budget and agents.
func MaxValue(g *core.Graph, start string, budget, agents int, opts ...Option) (int64, error) {
	res, err := Search(context.Background(), g, Query{Start: start, Budget: budget, Agents: agents}, opts...)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// runSequential is the FIFO worklist driver.
//
// Pop a state; if no time remains after the step, drop it. Otherwise expand
// it, and for each successor keep it in the best-value map and enqueue it iff
// its key is new or its value beats the stored one. Stale copies already in
// the queue are still expanded.
func (e *Engine) runSequential(ctx context.Context) (Result, error) {
	x := newExpander(e.g)
	s0 := e.Initial()
	best := map[Key]State{e.keys.key(s0): s0}
	queue := []State{s0}
	head := 0
	levelTime := s0.time + 1

	for head < len(queue) {
		if e.stats.Expanded%ctxCheckEvery == 0 && ctx.Err() != nil {
			e.stats.Retained = len(best)
			return aggregateMap(best, true), interrupted(ctx)
		}

		s := queue[head]
		head++
		if pending := len(queue) - head + 1; pending > e.stats.PeakFrontier {
			e.stats.PeakFrontier = pending
		}
		// Compact the consumed prefix once it dominates the backing array.
		if head > 4096 && head*2 > len(queue) {
			queue = append(queue[:0], queue[head:]...)
			head = 0
		}
		if s.time-1 <= 0 {
			continue
		}
		if s.time != levelTime {
			levelTime = s.time
			e.stats.Levels++
			e.opts.OnLevel(LevelInfo{
				TimeRemaining: s.time,
				Frontier:      len(queue) - head + 1,
				Retained:      len(best),
				Best:          maxValue(best),
			})
			if ctx.Err() != nil {
				e.stats.Retained = len(best)
				return aggregateMap(best, true), interrupted(ctx)
			}
		}

		e.stats.Expanded++
		for child := range x.successors(s) {
			e.stats.Generated++
			k := e.keys.key(child)
			cur, ok := best[k]
			if ok && child.value <= cur.value {
				continue
			}
			if ok {
				e.stats.Improved++
			} else {
				e.stats.Admitted++
			}
			best[k] = child
			queue = append(queue, child)
		}

		if e.opts.MaxStates > 0 && len(best) > e.opts.MaxStates {
			e.stats.Retained = len(best)
			return aggregateMap(best, true), fmt.Errorf("%w: %d entries > %d", ErrBudgetExceeded, len(best), e.opts.MaxStates)
		}
	}

	e.stats.Retained = len(best)
	return aggregateMap(best, false), nil
}
