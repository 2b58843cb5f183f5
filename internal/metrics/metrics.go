// Package metrics exposes determinization counters as Prometheus collectors.
package metrics

import (
	"github.com/geange/powerset"
	"github.com/prometheus/client_golang/prometheus"
)

var _ powerset.Observer = &Recorder{}

// Recorder implements powerset.Observer.
type Recorder struct {
	phases      *prometheus.CounterVec
	subsets     prometheus.Histogram
	interned    prometheus.Gauge
	reachable   prometheus.Gauge
	transitions *prometheus.GaugeVec
}

// New creates a Recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		phases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "powerset_phases_total",
				Help: "Completed determinization phases",
			},
			[]string{"phase"},
		),
		subsets: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "powerset_subsets",
				Help:    "Subsets enumerated per run",
				Buckets: prometheus.ExponentialBuckets(2, 4, 8),
			},
		),
		interned: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "powerset_interned_states",
				Help: "Composite states created by the last run",
			},
		),
		reachable: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "powerset_reachable_states",
				Help: "Composite states reachable from the start state in the last run",
			},
		),
		transitions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "powerset_transitions",
				Help: "Transitions of reachable states in the last run",
			},
			[]string{"stage"},
		),
	}

	for _, c := range []prometheus.Collector{r.phases, r.subsets, r.interned, r.reachable, r.transitions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObservePhase records the counters available after phase.
func (r *Recorder) ObservePhase(phase string, stats powerset.Stats) {
	r.phases.WithLabelValues(phase).Inc()

	switch phase {
	case powerset.PhaseConstruct:
		r.subsets.Observe(float64(stats.Subsets))
		r.interned.Set(float64(stats.Interned))
	case powerset.PhaseFilter:
		r.reachable.Set(float64(stats.Reachable))
		r.transitions.WithLabelValues("raw").Set(float64(stats.Transitions))
	case powerset.PhaseCondense:
		r.transitions.WithLabelValues("condensed").Set(float64(stats.Condensed))
	}
}
