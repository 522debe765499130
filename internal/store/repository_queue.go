// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/models"
)

// queueCatalog is the SQL-backed QueueCatalog.
type queueCatalog struct {
	db     *DB
	logger *logger.Logger
}

// NewQueueCatalog returns a QueueCatalog stored in db. Call db.Migrate first.
func NewQueueCatalog(db *DB, logger *logger.Logger) QueueCatalog {
	logger.Debug().Msg("creating queue catalog")
	return &queueCatalog{
		db:     db,
		logger: logger,
	}
}

// queueRow is the storage shape of a queue: durations in whole seconds,
// timestamps in unix milliseconds.
type queueRow struct {
	Name                     string
	VisibilityTimeoutSeconds int64
	DelaySeconds             int64
	ReceiveWaitSeconds       int64
	RetentionSeconds         int64
	MaximumMessageSize       int64
	CreatedAt                int64
	LastModifiedAt           int64
}

func newQueueRow(q models.Queue) queueRow {
	return queueRow{
		Name:                     q.Name,
		VisibilityTimeoutSeconds: int64(q.Attributes.VisibilityTimeout / time.Second),
		DelaySeconds:             int64(q.Attributes.DelaySeconds / time.Second),
		ReceiveWaitSeconds:       int64(q.Attributes.ReceiveMessageWaitTime / time.Second),
		RetentionSeconds:         int64(q.Attributes.MessageRetentionPeriod / time.Second),
		MaximumMessageSize:       int64(q.Attributes.MaximumMessageSize),
		CreatedAt:                q.CreatedAt.UnixMilli(),
		LastModifiedAt:           q.LastModifiedAt.UnixMilli(),
	}
}

func (r queueRow) values() []any {
	return []any{
		r.Name,
		r.VisibilityTimeoutSeconds,
		r.DelaySeconds,
		r.ReceiveWaitSeconds,
		r.RetentionSeconds,
		r.MaximumMessageSize,
		r.CreatedAt,
		r.LastModifiedAt,
	}
}

func (r queueRow) queue() models.Queue {
	return models.Queue{
		Name: r.Name,
		Attributes: models.QueueAttributes{
			VisibilityTimeout:      time.Duration(r.VisibilityTimeoutSeconds) * time.Second,
			DelaySeconds:           time.Duration(r.DelaySeconds) * time.Second,
			ReceiveMessageWaitTime: time.Duration(r.ReceiveWaitSeconds) * time.Second,
			MessageRetentionPeriod: time.Duration(r.RetentionSeconds) * time.Second,
			MaximumMessageSize:     int(r.MaximumMessageSize),
		},
		CreatedAt:      time.UnixMilli(r.CreatedAt),
		LastModifiedAt: time.UnixMilli(r.LastModifiedAt),
	}
}

func (c *queueCatalog) SaveQueue(ctx context.Context, queue models.Queue) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertQueue(c.db.placeholder, newQueueRow(queue))
	if err != nil {
		log.Err(err).Str("func", "*queueCatalog.SaveQueue").Msg("error building query")
		return err
	}

	err = c.db.withRetry(ctx, func() error {
		_, execErr := c.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*queueCatalog.SaveQueue").Str("queue", queue.Name).Msg("error saving queue")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (c *queueCatalog) DeleteQueue(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQueue(c.db.placeholder, name)
	if err != nil {
		log.Err(err).Str("func", "*queueCatalog.DeleteQueue").Msg("error building query")
		return err
	}

	err = c.db.withRetry(ctx, func() error {
		_, execErr := c.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*queueCatalog.DeleteQueue").Str("queue", name).Msg("error deleting queue")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (c *queueCatalog) LoadQueues(ctx context.Context) ([]models.Queue, error) {
	query, args, err := buildLoadQueues(c.db.placeholder)
	if err != nil {
		c.logger.Err(err).Str("func", "*queueCatalog.LoadQueues").Msg("error building query")
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		c.logger.Err(err).Str("func", "*queueCatalog.LoadQueues").Msg("error querying queues")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var queues []models.Queue
	for rows.Next() {
		var r queueRow
		if err = rows.Scan(&r.Name, &r.VisibilityTimeoutSeconds, &r.DelaySeconds, &r.ReceiveWaitSeconds,
			&r.RetentionSeconds, &r.MaximumMessageSize, &r.CreatedAt, &r.LastModifiedAt); err != nil {
			c.logger.Err(err).Str("func", "*queueCatalog.LoadQueues").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		queues = append(queues, r.queue())
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	c.logger.Debug().Int("count", len(queues)).Msg("queues loaded from catalog")
	return queues, nil
}
