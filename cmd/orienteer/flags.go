package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/orienteer/config"
)

// queryFlags are the search flags shared by solve and verify. Each one
// overrides the configuration only when set on the command line.
type queryFlags struct {
	part      int
	start     string
	budget    int
	agents    int
	strategy  string
	workers   int
	maxStates int
	timeout   time.Duration
	format    string
}

func (q *queryFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&q.part, "part", 0, "Preset: 1 = AA/30/1 agent, 2 = AA/26/2 agents")
	fs.StringVar(&q.start, "start", "", "Start node (default from config: AA)")
	fs.IntVar(&q.budget, "budget", 0, "Time budget in steps")
	fs.IntVar(&q.agents, "agents", 0, "Number of cooperating agents")
	fs.StringVar(&q.strategy, "strategy", "", "Dominance strategy: count|set")
	fs.IntVar(&q.workers, "workers", 0, "Expansion workers; >1 selects the parallel engine")
	fs.IntVar(&q.maxStates, "max-states", 0, "Cap on retained states (0 disables)")
	fs.DurationVar(&q.timeout, "timeout", 0, "Stop the search after this duration")
	fs.StringVar(&q.format, "format", "", "Input format: text|yaml|json (default by extension, text for stdin)")
}

// apply writes the preset and every explicitly set flag into cfg, then
// validates the result.
func (q *queryFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("part") {
		switch q.part {
		case 1:
			cfg.Start, cfg.Budget, cfg.Agents = "AA", 30, 1
		case 2:
			cfg.Start, cfg.Budget, cfg.Agents = "AA", 26, 2
		default:
			return fmt.Errorf("%w: --part must be 1 or 2 (%d)", config.ErrInvalidConfig, q.part)
		}
	}
	if fs.Changed("start") {
		cfg.Start = q.start
	}
	if fs.Changed("budget") {
		cfg.Budget = q.budget
	}
	if fs.Changed("agents") {
		cfg.Agents = q.agents
	}
	if fs.Changed("strategy") {
		cfg.Strategy = q.strategy
	}
	if fs.Changed("workers") {
		cfg.Workers = q.workers
	}
	if fs.Changed("max-states") {
		cfg.MaxStates = q.maxStates
	}
	if fs.Changed("timeout") {
		cfg.Timeout = q.timeout
	}

	return cfg.Validate()
}
