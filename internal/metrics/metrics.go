package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Branch labels
const (
	BranchExact    = "exact"
	BranchSignals  = "signals"
	AttemptPrimary = "primary"
	AttemptRetry   = "fallback"
)

var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "property_search_total",
			Help: "Total number of property searches by query branch",
		},
		[]string{"branch"},
	)

	SearchFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "property_search_fallback_total",
			Help: "Exact-reference searches that fell back to location, by outcome",
		},
		[]string{"outcome"},
	)

	SearchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "property_search_errors_total",
			Help: "Record store failures during search, by attempt",
		},
		[]string{"attempt"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "property_search_duration_seconds",
			Help:    "Duration of property searches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"branch"},
	)
)
