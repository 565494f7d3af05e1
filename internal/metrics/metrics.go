// Package metrics provides the centralized Prometheus metrics registry for
// the match analysis engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	AnalysesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "value_edge",
		Name:      "analyses_total",
		Help:      "Total number of completed match analyses",
	})
	RecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "value_edge",
		Name:      "recommendations_total",
		Help:      "Total recommendations emitted, by label",
	}, []string{"recommendation"})
	ValidationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "value_edge",
		Name:      "validation_failures_total",
		Help:      "Total analyses rejected for invalid required input",
	})
	InvalidMarketsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "value_edge",
		Name:      "invalid_markets_total",
		Help:      "Total analyses rejected for invalid odds markets",
	})
	NarrativeRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "value_edge",
		Name:      "narrative_requests_total",
		Help:      "Total narrative generation requests, by status",
	}, []string{"status"})
	NarrativeCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "value_edge",
		Name:      "narrative_cache_hits_total",
		Help:      "Total narrative responses served from cache",
	})
)

// Histogram metrics
var (
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "value_edge",
		Name:      "analysis_duration_seconds",
		Help:      "Duration of a full match analysis in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	NarrativeLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "value_edge",
		Name:      "narrative_latency_seconds",
		Help:      "Latency of reasoning service calls in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(AnalysesTotal)
		registry.MustRegister(RecommendationsTotal)
		registry.MustRegister(ValidationFailuresTotal)
		registry.MustRegister(InvalidMarketsTotal)
		registry.MustRegister(NarrativeRequestsTotal)
		registry.MustRegister(NarrativeCacheHitsTotal)

		registry.MustRegister(AnalysisDuration)
		registry.MustRegister(NarrativeLatency)
	})
	return registry
}

// Handler returns an HTTP handler serving the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(InitRegistry(), promhttp.HandlerOpts{})
}
