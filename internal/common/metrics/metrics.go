// Package metrics registers the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ParseRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parse_requests_total",
			Help: "Total number of parse requests by resulting intent type",
		},
		[]string{"intent_type"},
	)

	ParseFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parse_failures_total",
			Help: "Total number of failed parse requests by error code",
		},
		[]string{"error_code"},
	)

	ParseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "parse_duration_seconds",
			Help: "Duration of parse requests in seconds",
		},
		[]string{"intent_type"},
	)

	LLMEnhancements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_enhancements_total",
			Help: "Total number of LLM enhancement attempts by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parse_cache_hits_total",
			Help: "Total number of parse cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parse_cache_misses_total",
			Help: "Total number of parse cache misses",
		},
	)
)
