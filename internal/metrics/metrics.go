package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// ChartRequests counts chart computations by outcome
	// (success, missing_input, place_not_found, error).
	ChartRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astropulse",
			Subsystem: "chart",
			Name:      "requests_total",
			Help:      "Chart requests by outcome",
		},
		[]string{"outcome"},
	)

	// ChartLatency measures end-to-end chart build time, external lookups
	// included.
	ChartLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "astropulse",
			Subsystem: "chart",
			Name:      "build_seconds",
			Help:      "Latency of full chart computation",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// LookupFailures counts swallowed external lookup failures by
	// collaborator (geocoder, timezone).
	LookupFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astropulse",
			Subsystem: "lookup",
			Name:      "failures_total",
			Help:      "External lookup failures by collaborator",
		},
		[]string{"collaborator"},
	)
)

// Register installs the collectors exactly once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(ChartRequests, ChartLatency, LookupFailures)
	})
}
