// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/internal/store"
	"github.com/ydavid365/elasticmq/internal/utils"
	"github.com/ydavid365/elasticmq/models"
)

// MemoryEngine is an in-memory QueueEngine. Queue definitions can be
// mirrored to a store.QueueCatalog; messages live in memory only.
type MemoryEngine struct {
	mu     sync.RWMutex
	queues map[string]*queueState

	catalog store.QueueCatalog
	ids     IDGenerator
	now     func() time.Time
	logger  *logger.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

// EngineOption configures a MemoryEngine.
type EngineOption func(*MemoryEngine)

// WithCatalog mirrors queue definitions to catalog.
func WithCatalog(catalog store.QueueCatalog) EngineOption {
	return func(e *MemoryEngine) { e.catalog = catalog }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) EngineOption {
	return func(e *MemoryEngine) { e.now = now }
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(ids IDGenerator) EngineOption {
	return func(e *MemoryEngine) { e.ids = ids }
}

// NewMemoryEngine creates an empty engine.
func NewMemoryEngine(log *logger.Logger, opts ...EngineOption) *MemoryEngine {
	e := &MemoryEngine{
		queues: make(map[string]*queueState),
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: log,
		closed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Restore loads the queues stored in the catalog. Without a catalog it is a
// no-op.
func (e *MemoryEngine) Restore(ctx context.Context) error {
	if e.catalog == nil {
		return nil
	}

	queues, err := e.catalog.LoadQueues(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, q := range queues {
		e.queues[q.Name] = newQueueState(q)
	}
	e.logger.Info().Int("queues", len(queues)).Msg("queues restored from catalog")
	return nil
}

func (e *MemoryEngine) CreateQueue(ctx context.Context, name string, attrs models.QueueAttributes) (models.Queue, error) {
	if err := e.checkOpen(); err != nil {
		return models.Queue{}, err
	}

	e.mu.Lock()
	if existing, ok := e.queues[name]; ok {
		e.mu.Unlock()
		q := existing.snapshot()
		if q.Attributes != attrs {
			return models.Queue{}, ErrQueueAlreadyExists
		}
		return q, nil
	}

	now := e.now()
	q := models.Queue{Name: name, Attributes: attrs, CreatedAt: now, LastModifiedAt: now}
	e.queues[name] = newQueueState(q)
	e.mu.Unlock()

	if err := e.persist(ctx, q); err != nil {
		e.mu.Lock()
		delete(e.queues, name)
		e.mu.Unlock()
		return models.Queue{}, err
	}

	logger.FromContext(ctx).Info().Str("queue", name).Msg("queue created")
	return q, nil
}

func (e *MemoryEngine) GetQueue(_ context.Context, name string) (models.Queue, error) {
	qs, err := e.queue(name)
	if err != nil {
		return models.Queue{}, err
	}
	return qs.snapshot(), nil
}

func (e *MemoryEngine) ListQueues(_ context.Context, prefix string) ([]models.Queue, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}

	e.mu.RLock()
	queues := make([]models.Queue, 0, len(e.queues))
	for name, qs := range e.queues {
		if strings.HasPrefix(name, prefix) {
			queues = append(queues, qs.snapshot())
		}
	}
	e.mu.RUnlock()

	slices.SortFunc(queues, func(a, b models.Queue) int { return strings.Compare(a.Name, b.Name) })
	return queues, nil
}

func (e *MemoryEngine) DeleteQueue(ctx context.Context, name string) error {
	if err := e.checkOpen(); err != nil {
		return err
	}

	e.mu.Lock()
	qs, ok := e.queues[name]
	if ok {
		delete(e.queues, name)
	}
	e.mu.Unlock()
	if !ok {
		return ErrQueueDoesNotExist
	}
	qs.markDeleted()

	if e.catalog != nil {
		if err := e.catalog.DeleteQueue(ctx, name); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*MemoryEngine.DeleteQueue").Str("queue", name).Msg("error removing queue from catalog")
			return err
		}
	}

	logger.FromContext(ctx).Info().Str("queue", name).Msg("queue deleted")
	return nil
}

func (e *MemoryEngine) PurgeQueue(_ context.Context, name string) error {
	qs, err := e.queue(name)
	if err != nil {
		return err
	}
	qs.purge()
	return nil
}

func (e *MemoryEngine) SetQueueAttributes(ctx context.Context, name string, attrs models.QueueAttributes) (models.Queue, error) {
	qs, err := e.queue(name)
	if err != nil {
		return models.Queue{}, err
	}

	q := qs.setAttributes(attrs, e.now())
	if err = e.persist(ctx, q); err != nil {
		return models.Queue{}, err
	}
	return q, nil
}

func (e *MemoryEngine) QueueStats(_ context.Context, name string) (models.QueueStats, error) {
	qs, err := e.queue(name)
	if err != nil {
		return models.QueueStats{}, err
	}
	return qs.stats(e.now()), nil
}

func (e *MemoryEngine) SendMessage(_ context.Context, queue string, msg models.NewMessage) (models.Message, error) {
	qs, err := e.queue(queue)
	if err != nil {
		return models.Message{}, err
	}
	return qs.send(msg, e.ids.Generate(), e.now()), nil
}

func (e *MemoryEngine) ReceiveMessages(ctx context.Context, queue string, req models.ReceiveRequest) ([]models.Message, error) {
	qs, err := e.queue(queue)
	if err != nil {
		return nil, err
	}

	wait := qs.snapshot().Attributes.ReceiveMessageWaitTime
	if req.WaitTime != nil {
		wait = *req.WaitTime
	}
	deadline := e.now().Add(wait)

	for {
		msgs, next, notify, err := qs.receive(req, e.now(), e.ids.Generate)
		if err != nil || len(msgs) > 0 {
			return msgs, err
		}

		remaining := deadline.Sub(e.now())
		if remaining <= 0 {
			return msgs, nil
		}
		if !next.IsZero() {
			remaining = min(remaining, next.Sub(e.now()))
		}

		timer := time.NewTimer(max(remaining, time.Millisecond))
		select {
		case <-notify:
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, nil
		case <-e.closed:
			timer.Stop()
			return nil, nil
		}
		timer.Stop()
	}
}

func (e *MemoryEngine) DeleteMessage(_ context.Context, queue, receiptHandle string) error {
	qs, err := e.queue(queue)
	if err != nil {
		return err
	}
	return qs.delete(receiptHandle)
}

func (e *MemoryEngine) ChangeMessageVisibility(_ context.Context, queue, receiptHandle string, timeout time.Duration) error {
	qs, err := e.queue(queue)
	if err != nil {
		return err
	}
	return qs.changeVisibility(receiptHandle, timeout, e.now())
}

// Close implements QueueEngine. It is safe to call more than once.
func (e *MemoryEngine) Close() error {
	e.closeOnce.Do(func() {
		close(e.closed)
		e.logger.Info().Msg("queue engine closed")
	})
	return nil
}

func (e *MemoryEngine) checkOpen() error {
	select {
	case <-e.closed:
		return ErrEngineClosed
	default:
		return nil
	}
}

func (e *MemoryEngine) queue(name string) (*queueState, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}

	e.mu.RLock()
	qs, ok := e.queues[name]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrQueueDoesNotExist
	}
	return qs, nil
}

func (e *MemoryEngine) persist(ctx context.Context, q models.Queue) error {
	if e.catalog == nil {
		return nil
	}
	if err := e.catalog.SaveQueue(ctx, q); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*MemoryEngine.persist").Str("queue", q.Name).Msg("error saving queue to catalog")
		return err
	}
	return nil
}
