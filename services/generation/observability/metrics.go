// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides metrics and instrumentation for the
// generation service.
//
// # Description
//
// This package implements Prometheus metrics for monitoring streaming reply
// generation. Metrics include:
//   - Request counters (by endpoint, status, error type)
//   - Latency histograms (time to first delta, total stream duration)
//   - Active stream gauges
//   - Continuation round counters
//
// # Integration
//
// Metrics are exposed via /metrics endpoint. Use with Prometheus + Grafana
// for dashboards and alerting.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Metric Definitions
// =============================================================================

// Namespace for all metrics
const metricsNamespace = "asiakasvastaus"

// Subsystem for generation metrics
const generationSubsystem = "generation"

// GenerationMetrics holds all Prometheus metrics for streaming reply
// generation.
//
// # Description
//
// Provides counters, histograms, and gauges for monitoring generation
// performance and resource usage. Initialize once at startup via
// InitMetrics().
//
// # Thread Safety
//
// All operations are thread-safe.
type GenerationMetrics struct {
	// RequestsTotal counts generation requests by endpoint and status.
	// Labels: endpoint (generate_stream, list_templates), status (success, error)
	RequestsTotal *prometheus.CounterVec

	// TimeToFirstDeltaSeconds measures latency to the first delta event.
	// Labels: endpoint
	TimeToFirstDeltaSeconds *prometheus.HistogramVec

	// StreamDurationSeconds measures total stream duration.
	// Labels: endpoint, status (success, error)
	StreamDurationSeconds *prometheus.HistogramVec

	// ActiveStreams tracks currently active streaming connections.
	// Labels: endpoint
	ActiveStreams *prometheus.GaugeVec

	// ErrorsTotal counts errors by type and endpoint.
	// Labels: endpoint, error_code (validation, paywall, llm_error, etc.)
	ErrorsTotal *prometheus.CounterVec

	// ContinuationsTotal counts continuation rounds by template key.
	// Labels: template_key
	ContinuationsTotal *prometheus.CounterVec

	// ProviderRoundsTotal counts upstream completion calls by template key
	// and round (initial, continuation).
	// Labels: template_key, round
	ProviderRoundsTotal *prometheus.CounterVec
}

// DefaultMetrics is the singleton instance of GenerationMetrics.
// Initialized by InitMetrics().
var DefaultMetrics *GenerationMetrics

// InitMetrics initializes the default metrics instance.
//
// # Description
//
// Creates and registers all Prometheus metrics. Should be called once
// at application startup, after Prometheus registry is available.
//
// # Outputs
//
//   - *GenerationMetrics: The initialized metrics instance.
//
// # Limitations
//
//   - Panics if called twice (duplicate registration).
//
// # Assumptions
//
//   - Prometheus default registry is available.
func InitMetrics() *GenerationMetrics {
	DefaultMetrics = &GenerationMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: generationSubsystem,
				Name:      "requests_total",
				Help:      "Total number of generation requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),

		TimeToFirstDeltaSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: generationSubsystem,
				Name:      "time_to_first_delta_seconds",
				Help:      "Time from request to first delta event in seconds",
				Buckets:   []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
			},
			[]string{"endpoint"},
		),

		StreamDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: generationSubsystem,
				Name:      "stream_duration_seconds",
				Help:      "Total stream duration in seconds",
				Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
			},
			[]string{"endpoint", "status"},
		),

		ActiveStreams: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: generationSubsystem,
				Name:      "active_streams",
				Help:      "Number of currently active streaming connections",
			},
			[]string{"endpoint"},
		),

		ErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: generationSubsystem,
				Name:      "errors_total",
				Help:      "Total generation errors by type and endpoint",
			},
			[]string{"endpoint", "error_code"},
		),

		ContinuationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: generationSubsystem,
				Name:      "continuations_total",
				Help:      "Total continuation rounds by template key",
			},
			[]string{"template_key"},
		),

		ProviderRoundsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: generationSubsystem,
				Name:      "provider_rounds_total",
				Help:      "Total upstream completion calls by template key and round",
			},
			[]string{"template_key", "round"},
		),
	}

	return DefaultMetrics
}

// =============================================================================
// Error Codes
// =============================================================================

// ErrorCode represents a categorized error type for metrics.
type ErrorCode string

const (
	// ErrorCodeValidation indicates request validation failure.
	ErrorCodeValidation ErrorCode = "validation"

	// ErrorCodeUnauthorized indicates a missing or invalid session.
	ErrorCodeUnauthorized ErrorCode = "unauthorized"

	// ErrorCodeEmailNotVerified indicates a refusal for an unverified email.
	ErrorCodeEmailNotVerified ErrorCode = "email_not_verified"

	// ErrorCodePaywall indicates a refusal for a lapsed trial/subscription.
	ErrorCodePaywall ErrorCode = "paywall"

	// ErrorCodeNotFound indicates an unknown template key.
	ErrorCodeNotFound ErrorCode = "not_found"

	// ErrorCodeLLMError indicates an upstream completion failure.
	ErrorCodeLLMError ErrorCode = "llm_error"

	// ErrorCodeInternal indicates internal server error.
	ErrorCodeInternal ErrorCode = "internal"
)

// =============================================================================
// Endpoint Names
// =============================================================================

// Endpoint represents an endpoint for metrics labeling.
type Endpoint string

const (
	// EndpointGenerateStream is the streaming reply generation endpoint.
	EndpointGenerateStream Endpoint = "generate_stream"

	// EndpointListTemplates is the template listing endpoint.
	EndpointListTemplates Endpoint = "list_templates"
)

// =============================================================================
// Helper Methods
// =============================================================================

// RecordRequest records a completed request.
func (m *GenerationMetrics) RecordRequest(endpoint Endpoint, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.RequestsTotal.WithLabelValues(string(endpoint), status).Inc()
}

// RecordError records an error by category.
func (m *GenerationMetrics) RecordError(endpoint Endpoint, code ErrorCode) {
	m.ErrorsTotal.WithLabelValues(string(endpoint), string(code)).Inc()
}

// StreamStarted increments the active streams gauge.
func (m *GenerationMetrics) StreamStarted(endpoint Endpoint) {
	m.ActiveStreams.WithLabelValues(string(endpoint)).Inc()
}

// StreamEnded decrements the active streams gauge.
func (m *GenerationMetrics) StreamEnded(endpoint Endpoint) {
	m.ActiveStreams.WithLabelValues(string(endpoint)).Dec()
}

// RecordTimeToFirstDelta records latency to the first delta event.
func (m *GenerationMetrics) RecordTimeToFirstDelta(endpoint Endpoint, seconds float64) {
	m.TimeToFirstDeltaSeconds.WithLabelValues(string(endpoint)).Observe(seconds)
}

// RecordStreamDuration records the total stream duration.
func (m *GenerationMetrics) RecordStreamDuration(endpoint Endpoint, seconds float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.StreamDurationSeconds.WithLabelValues(string(endpoint), status).Observe(seconds)
}

// RecordContinuation counts one continuation round for a template.
func (m *GenerationMetrics) RecordContinuation(templateKey string) {
	m.ContinuationsTotal.WithLabelValues(templateKey).Inc()
}

// RecordProviderRound counts one upstream completion call.
func (m *GenerationMetrics) RecordProviderRound(templateKey, round string) {
	m.ProviderRoundsTotal.WithLabelValues(templateKey, round).Inc()
}
