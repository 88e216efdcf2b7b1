package orienteer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// MaxAgents bounds the number of cooperating agents a State can hold.
const MaxAgents = 4

// DefaultMaxStates is the default ceiling on retained best-value entries.
const DefaultMaxStates = 1 << 24

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("orienteer: graph is nil")

	// ErrBadBudget is returned when the time budget is below one step.
	ErrBadBudget = errors.New("orienteer: time budget must be positive")

	// ErrBadAgents is returned when the agent count is outside [1, MaxAgents].
	ErrBadAgents = errors.New("orienteer: agent count out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("orienteer: invalid option supplied")

	// ErrBudgetExceeded is returned when the best-value map outgrows MaxStates.
	ErrBudgetExceeded = errors.New("orienteer: state budget exceeded")

	// ErrInterrupted is returned when cancellation or the time limit stops the search.
	// The accompanying Result is Partial and holds the best value found so far.
	ErrInterrupted = errors.New("orienteer: search interrupted")

	// ErrAlreadyRun is returned when Run is called on an engine that already ran.
	ErrAlreadyRun = errors.New("orienteer: engine already run")
)

// Dominance selects the canonical key used to deduplicate states.
type Dominance int

const (
	// DominanceCount keys states by sorted agent movers and the number of
	// activated nodes. Lossy: two states with different activated sets of the
	// same size compete for one slot. Fast; the historical default.
	DominanceCount Dominance = iota

	// DominanceSet keys states by sorted movers, the full activated set and the
	// time remaining. States sharing such a key have identical futures, so the
	// search is exact.
	DominanceSet
)

// String returns the configuration name of d.
func (d Dominance) String() string {
	switch d {
	case DominanceCount:
		return "count"
	case DominanceSet:
		return "set"
	default:
		return fmt.Sprintf("dominance(%d)", int(d))
	}
}

// ParseDominance maps a configuration name to a Dominance.
func ParseDominance(s string) (Dominance, error) {
	switch s {
	case "count", "":
		return DominanceCount, nil
	case "set":
		return DominanceSet, nil
	default:
		return 0, fmt.Errorf("%w: unknown dominance %q", ErrOptionViolation, s)
	}
}

// Phase is the lifecycle stage of an Engine.
type Phase int

const (
	PhaseInitialized Phase = iota
	PhaseRunning
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Query names the start node and the search parameters.
type Query struct {
	Start  string // name of the node every agent starts at
	Budget int    // total number of time steps
	Agents int    // number of cooperating agents
}

// LevelInfo describes the frontier when the search enters a new time step.
type LevelInfo struct {
	TimeRemaining int   // time remaining of the states being expanded
	Frontier      int   // states pending expansion
	Retained      int   // entries in the best-value map
	Best          int64 // best value retained so far
}

// Stats summarises one search.
type Stats struct {
	Dominance    Dominance
	Workers      int
	Expanded     int64         // states expanded
	Generated    int64         // successors produced by the option generator
	Admitted     int64         // successors stored under a new key
	Improved     int64         // successors that replaced a worse entry
	Retained     int           // entries in the best-value map at the end
	PeakFrontier int           // largest pending worklist observed
	Levels       int           // time steps expanded
	Elapsed      time.Duration // wall time of Run
}

// Result is the outcome of a search.
type Result struct {
	// Value is the maximum accumulated value over all retained states.
	Value int64

	// Best is a retained state achieving Value.
	Best State

	// Partial is true when the search stopped early; Value is then a lower bound.
	Partial bool

	// Stats describes the work done.
	Stats Stats
}

// Observer receives the statistics of every finished search, including
// failed and interrupted ones.
type Observer interface {
	ObserveSearch(stats Stats, value int64, err error)
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. zero workers), it is recorded internally
// and surfaced as ErrOptionViolation when the engine is created.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Dominance selects the canonical key granularity.
	Dominance Dominance

	// Workers > 1 selects the sharded parallel engine.
	Workers int

	// MaxStates caps retained entries; 0 disables the guard.
	MaxStates int

	// TimeLimit, if > 0, interrupts the search after this duration.
	TimeLimit time.Duration

	// Logger receives progress at debug level and a summary at info level.
	Logger logrus.FieldLogger

	// Observer receives Stats after each search.
	Observer Observer

	// OnLevel is called once per time step before it is expanded.
	OnLevel func(LevelInfo)

	// internal error recorded during option parsing
	err error
}

// discardLogger swallows everything; used when no Logger is configured.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

// DefaultOptions returns Options with sane defaults:
//   - DominanceCount
//   - one worker (sequential FIFO engine)
//   - MaxStates = DefaultMaxStates, no time limit
//   - discarding logger, no observer, no-op level hook.
func DefaultOptions() Options {
	return Options{
		Dominance: DominanceCount,
		Workers:   1,
		MaxStates: DefaultMaxStates,
		Logger:    discardLogger,
		OnLevel:   func(LevelInfo) {},
	}
}

// WithDominance selects the canonical key strategy.
func WithDominance(d Dominance) Option {
	return func(o *Options) {
		if d != DominanceCount && d != DominanceSet {
			o.err = fmt.Errorf("%w: unknown dominance %d", ErrOptionViolation, int(d))
			return
		}
		o.Dominance = d
	}
}

// WithWorkers sets the number of expansion workers.
//
//	n == 1: sequential FIFO engine
//	n > 1:  level-synchronous sharded engine
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxStates caps the best-value map size (0 disables the cap).
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithTimeLimit interrupts the search after d (0 means no limit).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithLogger routes engine logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer for search statistics.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithOnLevel registers a callback run before each time step is expanded.
func WithOnLevel(fn func(LevelInfo)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// interrupted wraps a context error into the ErrInterrupted family.
func interrupted(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
}
