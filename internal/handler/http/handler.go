// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/internal/service"
	"github.com/ydavid365/elasticmq/internal/validators"
	"github.com/ydavid365/elasticmq/internal/workers"
)

// QueueURLFunc derives the public URL of a queue from its name.
type QueueURLFunc func(queueName string) string

// Handler serves SQS query protocol requests against a QueueEngine.
type Handler struct {
	engine   service.QueueEngine
	executor workers.Executor
	limits   validators.Limits
	queueURL QueueURLFunc

	operations map[string]operationFunc
	registry   *prometheus.Registry
	metrics    *requestMetrics

	logger *logger.Logger
}

// NewHandler builds a Handler. Request metrics are registered on registry,
// which is also what GET /metrics exposes; registering twice on the same
// registry panics.
func NewHandler(
	engine service.QueueEngine,
	executor workers.Executor,
	limits validators.Limits,
	queueURL QueueURLFunc,
	registry *prometheus.Registry,
	logger *logger.Logger,
) *Handler {
	h := &Handler{
		engine:   engine,
		executor: executor,
		limits:   limits,
		queueURL: queueURL,
		registry: registry,
		metrics:  newRequestMetrics(registry),
		logger:   logger,
	}
	h.operations = h.operationRegistry()

	logger.Info().Str("limits", limits.Mode().String()).Int("operations", len(h.operations)).Msg("http handler created")
	return h
}
