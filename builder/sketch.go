// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// sketch.go - mutable record accumulator shared by constructors.

package builder

import "github.com/katalvlaran/orienteer/core"

// sketch collects nodes and moves before they are frozen into records.
type sketch struct {
	cfg   builderConfig
	order []string
	rate  map[string]int
	adj   map[string][]string
	seen  map[[2]string]struct{}
}

func newSketch(cfg builderConfig) *sketch {
	return &sketch{
		cfg:  cfg,
		rate: make(map[string]int),
		adj:  make(map[string][]string),
		seen: make(map[[2]string]struct{}),
	}
}

// addNode registers id once, drawing its rate from the rate policy.
// Re-adding an existing id is a no-op.
func (s *sketch) addNode(id string) {
	if _, ok := s.rate[id]; ok {
		return
	}
	r := s.cfg.rateFn(s.cfg.rng)
	if fixed, ok := s.cfg.rates[id]; ok {
		r = fixed
	}
	s.order = append(s.order, id)
	s.rate[id] = r
}

// addMove appends the one-way move u→v once. Both endpoints must exist.
func (s *sketch) addMove(u, v string) {
	k := [2]string{u, v}
	if _, dup := s.seen[k]; dup {
		return
	}
	s.seen[k] = struct{}{}
	s.adj[u] = append(s.adj[u], v)
}

// addEdge emits u→v and v→u.
func (s *sketch) addEdge(u, v string) {
	s.addMove(u, v)
	s.addMove(v, u)
}

// records freezes the sketch in node creation order.
func (s *sketch) records() []core.Record {
	out := make([]core.Record, len(s.order))
	for i, id := range s.order {
		out[i] = core.Record{
			Name:      id,
			Rate:      s.rate[id],
			Neighbors: append([]string(nil), s.adj[id]...),
		}
	}

	return out
}
