// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillmatch_analyses_total",
			Help: "Total number of completed skill analyses",
		},
		[]string{"track"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skillmatch_analysis_duration_seconds",
			Help:    "Duration of one analysis pipeline pass",
			Buckets: prometheus.DefBuckets,
		},
	)

	OverallScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skillmatch_overall_score",
			Help:    "Distribution of overall match scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	QuotaRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillmatch_quota_rejections_total",
			Help: "Requests rejected at the quota gate",
		},
		[]string{"plan", "action", "reason"},
	)

	GenerationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillmatch_generation_fallbacks_total",
			Help: "Generation calls recovered by the deterministic fallback",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillmatch_http_requests_total",
			Help: "HTTP requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillmatch_http_request_duration_seconds",
			Help:    "HTTP request latency by endpoint",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)
)
