// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists queue definitions so queues survive a gateway
// restart. Messages are never persisted.
//
// Two backends are supported behind the same QueueCatalog: an embedded
// SQLite file and PostgreSQL, selected by the DSN.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/queue_catalog_mock.go -package=mock

import (
	"context"

	"github.com/ydavid365/elasticmq/models"
)

// QueueCatalog stores queue definitions.
type QueueCatalog interface {
	// SaveQueue inserts the queue or replaces its stored attributes.
	SaveQueue(ctx context.Context, queue models.Queue) error

	// DeleteQueue removes the queue. Deleting an unknown queue is not an error.
	DeleteQueue(ctx context.Context, name string) error

	// LoadQueues returns every stored queue ordered by name.
	LoadQueues(ctx context.Context) ([]models.Queue, error)
}

// ErrorClassificator tells transient database errors from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
