// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/queue_engine_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/ydavid365/elasticmq/models"
)

// QueueEngine is the queue-management engine the gateway submits
// operations to. The gateway either creates one (and closes it on stop) or
// is handed one by its caller (and never closes it).
type QueueEngine interface {
	// CreateQueue creates a queue. Creating an existing queue with identical
	// attributes returns it; different attributes yield ErrQueueAlreadyExists.
	CreateQueue(ctx context.Context, name string, attrs models.QueueAttributes) (models.Queue, error)
	GetQueue(ctx context.Context, name string) (models.Queue, error)
	ListQueues(ctx context.Context, prefix string) ([]models.Queue, error)
	DeleteQueue(ctx context.Context, name string) error
	PurgeQueue(ctx context.Context, name string) error
	SetQueueAttributes(ctx context.Context, name string, attrs models.QueueAttributes) (models.Queue, error)
	QueueStats(ctx context.Context, name string) (models.QueueStats, error)

	SendMessage(ctx context.Context, queue string, msg models.NewMessage) (models.Message, error)

	// ReceiveMessages returns up to req.MaxMessages visible messages, waiting
	// up to the effective wait time for at least one to arrive. Cancelling
	// ctx ends the wait with an empty result.
	ReceiveMessages(ctx context.Context, queue string, req models.ReceiveRequest) ([]models.Message, error)
	DeleteMessage(ctx context.Context, queue, receiptHandle string) error
	ChangeMessageVisibility(ctx context.Context, queue, receiptHandle string, timeout time.Duration) error

	// Close releases the engine and wakes pending receives.
	Close() error
}

// IDGenerator issues message ids and receipt handles.
type IDGenerator interface {
	Generate() string
}
