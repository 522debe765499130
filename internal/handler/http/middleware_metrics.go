// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// requestMetrics holds the per-action request metrics.
type requestMetrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
}

func newRequestMetrics(reg prometheus.Registerer) *requestMetrics {
	return &requestMetrics{
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "sqs_gateway_requests_total",
				Help: "Total number of SQS requests by action, HTTP status and error code",
			},
			[]string{"action", "status", "error_code"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sqs_gateway_request_duration_seconds",
				Help:    "Duration of SQS requests in seconds",
				Buckets: []float64{0.001, 0.01, 0.1, 1, 5, 20},
			},
			[]string{"action"},
		),
		requestsInFlight: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "sqs_gateway_requests_in_flight",
				Help: "Current number of SQS requests being processed",
			},
		),
	}
}

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := requestInfoFromContext(r.Context())
		action := h.actionLabel(info.action)
		if action == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.metrics.requestsInFlight.Inc()
		defer h.metrics.requestsInFlight.Dec()

		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.requestsTotal.WithLabelValues(action, strconv.Itoa(status), info.errorCode).Inc()
		h.metrics.requestDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
	})
}

// actionLabel bounds the label cardinality: unregistered actions share one
// label. Requests without an action (health, metrics) are not measured.
func (h *Handler) actionLabel(action string) string {
	if action == "" {
		return ""
	}
	if _, ok := h.operations[action]; !ok {
		return "unknown"
	}
	return action
}
