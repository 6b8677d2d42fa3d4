package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Evaluation metrics
	ReadingsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "usagealert_readings_total",
			Help: "Total number of usage readings evaluated against triggers",
		},
	)

	EligibleFires = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "usagealert_eligible_fires_total",
			Help: "Total number of trigger fires that passed edge, cooldown and cap checks",
		},
	)

	// Dispatch metrics
	NotificationsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usagealert_notifications_total",
			Help: "Notification attempts recorded to history",
		},
		[]string{"type", "status"}, // type: threshold, startup; status: success, failure
	)

	DedupSuppressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "usagealert_dedup_suppressed_total",
			Help: "Eligible fires that shared a phone number with another fire in the same batch and did not get their own send",
		},
	)

	SendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "usagealert_send_duration_seconds",
			Help:    "Gateway send latency in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	StartupNotices = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "usagealert_startup_notices_total",
			Help: "Total number of simulator stream starts handled",
		},
	)

	// HTTP metrics
	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "usagealert_rate_limited_requests_total",
			Help: "Total number of HTTP requests rejected by the per-simulator rate limiter",
		},
	)
)
