package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// YouTube Data API Metrics
var (
	// YouTubeAPIRequestsTotal tracks YouTube Data API calls by operation and status
	YouTubeAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "youtube_api_requests_total",
			Help: "Total YouTube Data API requests by operation and status",
		},
		[]string{"operation", "status"},
	)

	// YouTubeAPIRequestDuration tracks YouTube Data API latency in seconds
	YouTubeAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "youtube_api_request_duration_seconds",
			Help:    "YouTube Data API request duration in seconds",
			Buckets: []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	// CircuitBreakerStateChanges tracks circuit breaker state transitions
	CircuitBreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by component and new state",
		},
		[]string{"component", "state"},
	)

	// CircuitBreakerState tracks current circuit breaker state (0=closed, 1=half-open, 2=open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)
)

// Analysis Metrics
var (
	// AnalysisRequestsTotal tracks analyses by result
	AnalysisRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total video analyses by result (success/invalid_url/not_found/comments_disabled/quota/error)",
		},
		[]string{"result"},
	)

	// AnalysisDuration tracks end-to-end analysis duration (fetch + scoring)
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "Video analysis duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	// CommentsAnalyzedTotal tracks the number of comments run through the engine
	CommentsAnalyzedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_analyzed_total",
			Help: "Total comments scored by the sentiment engine",
		},
	)

	// DominantEmotionTotal tracks the per-video dominant emotion distribution
	DominantEmotionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dominant_emotion_total",
			Help: "Total analyses by dominant summary emotion",
		},
		[]string{"emotion"},
	)
)

// Build Information Metrics
var (
	// BuildInfo is a gauge that always returns 1, with build metadata as labels
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "Build information with version, commit, build_time, and go_version labels (value is always 1)",
		},
		[]string{"version", "commit", "build_time", "go_version"},
	)
)

// HTTP Error Metrics
// Note: http_errors_total{type} is provided by internal/errors package
