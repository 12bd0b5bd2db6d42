// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

// Package metrics defines the Prometheus instrumentation for the
// application: API latency and throughput, Mongo query performance,
// summarizer calls and sample data generation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Document Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_query_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_query_errors_total",
			Help: "Total number of MongoDB operation errors",
		},
		[]string{"operation", "collection"},
	)

	// Summarizer Metrics
	SummarizerCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summarizer_calls_total",
			Help: "Total number of narrative summarizer calls",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	SummarizerDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarizer_call_duration_seconds",
			Help:    "Duration of narrative summarizer calls in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Sample Data Metrics
	SampleGenerations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sample_generations_total",
			Help: "Total number of sample data generation runs",
		},
	)

	SampleLogsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sample_logs_generated_total",
			Help: "Total number of access logs generated",
		},
	)

	// Assessment Metrics
	AssessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_assessments_total",
			Help: "Total number of per-user risk assessments",
		},
		[]string{"risk_level"},
	)
)

// RecordStoreQuery records a document store operation metric.
func RecordStoreQuery(operation, collection string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		StoreQueryErrors.WithLabelValues(operation, collection).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordSummarizerCall records a summarizer call and its outcome.
// result is one of "success", "failure", "rejected".
func RecordSummarizerCall(result string, duration time.Duration) {
	SummarizerCalls.WithLabelValues(result).Inc()
	SummarizerDuration.Observe(duration.Seconds())
}

// RecordSampleGeneration records a sample data generation run.
func RecordSampleGeneration(logCount int) {
	SampleGenerations.Inc()
	SampleLogsGenerated.Add(float64(logCount))
}

// RecordAssessment records a completed risk assessment.
func RecordAssessment(riskLevel string) {
	AssessmentsTotal.WithLabelValues(riskLevel).Inc()
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
