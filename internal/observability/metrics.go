// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level metrics registered against the default registry. Defined as
// vars rather than a constructor so repeated engine construction (common in
// tests) never double-registers.
var (
	analyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "idscan_analyze_duration_seconds",
		Help:    "Duration of full analysis requests including merge and filtering",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})

	resultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "idscan_results_total",
		Help: "Total results emitted by entity type",
	}, []string{"entity_type"})

	patternBudgetExceeded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "idscan_pattern_budget_exceeded_total",
		Help: "Pattern evaluations abandoned for exceeding the per-pattern time budget",
	}, []string{"entity_type", "pattern"})
)

// ObserveAnalyzeDuration records the total duration of one analysis request.
func ObserveAnalyzeDuration(d time.Duration) {
	analyzeDuration.Observe(d.Seconds())
}

// CountResult records one emitted result for an entity type.
func CountResult(entityType string) {
	resultsTotal.WithLabelValues(entityType).Inc()
}

// CountPatternBudgetExceeded records an abandoned pattern evaluation.
func CountPatternBudgetExceeded(entityType, pattern string) {
	patternBudgetExceeded.WithLabelValues(entityType, pattern).Inc()
}
