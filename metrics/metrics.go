package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedbacksIngested counts accepted feedback submissions by the
	// classification outcome.
	FeedbacksIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airfeedback_feedbacks_ingested_total",
			Help: "Accepted feedback submissions by sentiment and language",
		},
		[]string{"sentiment", "language"},
	)

	// RollupFailures counts stats bucket updates that failed after a
	// feedback was already persisted.
	RollupFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airfeedback_rollup_failures_total",
			Help: "Daily stats rollup writes that failed",
		},
	)
)
