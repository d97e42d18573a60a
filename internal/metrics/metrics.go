// Package metrics defines the Prometheus instruments exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BatchesCreated counts batches accepted by the pipeline.
	BatchesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xertiq_batches_created_total",
		Help: "Number of batches accepted for processing.",
	})

	// BatchesFailed counts batches whose pipeline run ended in failure
	// before anchoring started.
	BatchesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xertiq_batches_failed_total",
		Help: "Number of batches that failed during processing.",
	})

	// AnchorOutcomes counts terminal anchoring outcomes by result.
	AnchorOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xertiq_anchor_outcomes_total",
		Help: "Number of anchoring runs by terminal outcome.",
	}, []string{"outcome"})

	// AnchorSubmitAttempts observes how many ledger submissions one
	// anchoring run needed before acceptance.
	AnchorSubmitAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "xertiq_anchor_submit_attempts",
		Help:    "Ledger submission attempts per anchoring run.",
		Buckets: prometheus.LinearBuckets(1, 1, 10),
	})

	// AnchorDuration observes wall time from dequeue to terminal outcome.
	AnchorDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "xertiq_anchor_duration_seconds",
		Help:    "Duration of anchoring runs in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
	})

	// Verifications counts verification requests by verdict.
	Verifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xertiq_verifications_total",
		Help: "Number of verification requests by verdict.",
	}, []string{"verdict"})
)
