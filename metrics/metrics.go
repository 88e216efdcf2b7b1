// Package metrics exports search statistics as Prometheus metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/orienteer/orienteer"
)

// Outcome label values of orienteer_searches_total.
const (
	OutcomeOK             = "ok"
	OutcomeInterrupted    = "interrupted"
	OutcomeBudgetExceeded = "budget_exceeded"
	OutcomeError          = "error"
)

// Registry owns a private prometheus.Registry with the search collectors.
// It implements orienteer.Observer.
type Registry struct {
	reg *prometheus.Registry

	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded prometheus.Counter
	admitted prometheus.Counter
	retained prometheus.Gauge
	frontier prometheus.Gauge
	best     prometheus.Gauge
}

var _ orienteer.Observer = (*Registry)(nil)

// New creates a Registry and registers all collectors.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orienteer_searches_total",
				Help: "Searches finished, by dominance strategy and outcome.",
			},
			[]string{"strategy", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "orienteer_search_duration_seconds",
				Help:    "Wall time of a search.",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"strategy"},
		),
		expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orienteer_states_expanded_total",
			Help: "States expanded across all searches.",
		}),
		admitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orienteer_states_admitted_total",
			Help: "Successors stored under a new key across all searches.",
		}),
		retained: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orienteer_states_retained",
			Help: "Best-value map entries at the end of the last search.",
		}),
		frontier: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orienteer_frontier_peak",
			Help: "Largest pending worklist of the last search.",
		}),
		best: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orienteer_best_value",
			Help: "Value returned by the last search.",
		}),
	}
	r.reg.MustRegister(r.searches, r.duration, r.expanded, r.admitted, r.retained, r.frontier, r.best)

	return r
}

// ObserveSearch records one finished search.
func (r *Registry) ObserveSearch(stats orienteer.Stats, value int64, err error) {
	strategy := stats.Dominance.String()
	r.searches.WithLabelValues(strategy, Outcome(err)).Inc()
	r.duration.WithLabelValues(strategy).Observe(stats.Elapsed.Seconds())
	r.expanded.Add(float64(stats.Expanded))
	r.admitted.Add(float64(stats.Admitted))
	r.retained.Set(float64(stats.Retained))
	r.frontier.Set(float64(stats.PeakFrontier))
	r.best.Set(float64(value))
}

// Outcome maps a search error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, orienteer.ErrInterrupted):
		return OutcomeInterrupted
	case errors.Is(err, orienteer.ErrBudgetExceeded):
		return OutcomeBudgetExceeded
	default:
		return OutcomeError
	}
}

// Gatherer exposes the registry for HTTP handlers and tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile atomically writes all metrics in the text exposition
// format, for node_exporter's textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
