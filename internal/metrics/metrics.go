package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cfd_api_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cfd_api_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cfd_api_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Oracle metrics
	OracleCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cfd_oracle_calls_total",
			Help: "Total number of token oracle calls",
		},
		[]string{"method", "status"},
	)

	OracleCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cfd_oracle_call_duration_seconds",
			Help:    "Duration of token oracle calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~41s
		},
		[]string{"method"},
	)

	// Dividend engine metrics
	SnapshotBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cfd_snapshot_build_duration_seconds",
			Help:    "Duration of eligibility snapshot builds in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)

	SnapshotExclusionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cfd_snapshot_exclusions_total",
			Help: "Wallets dropped from a snapshot during oracle verification",
		},
		[]string{"reason"},
	)

	DistributionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cfd_distributions_created_total",
			Help: "Total number of distributions committed",
		},
	)

	ClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cfd_dividend_claims_total",
			Help: "Claim outcomes per distribution entry",
		},
		[]string{"outcome"},
	)
)

// Exclusion reasons
const (
	ExclusionOracleError = "oracle_error"
	ExclusionZeroBalance = "zero_balance"
)

// Claim outcomes
const (
	ClaimOutcomePaid      = "paid"
	ClaimOutcomeSkipped   = "skipped"
	ClaimOutcomeDuplicate = "duplicate"
	ClaimOutcomeFailed    = "failed"
)
