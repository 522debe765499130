// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/ydavid365/elasticmq/models"
)

type messageState struct {
	msg       models.Message
	visibleAt time.Time
	current   string
	handles   []string
}

func (m *messageState) inFlight(now time.Time) bool {
	return m.msg.ReceiveCount > 0 && m.visibleAt.After(now)
}

// queueState holds one queue's messages in send order.
type queueState struct {
	mu       sync.Mutex
	queue    models.Queue
	messages []*messageState
	byHandle map[string]*messageState
	notify   chan struct{}
	deleted  bool
}

func newQueueState(q models.Queue) *queueState {
	return &queueState{
		queue:    q,
		byHandle: make(map[string]*messageState),
		notify:   make(chan struct{}),
	}
}

func (q *queueState) snapshot() models.Queue {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue
}

// wake releases every pending receive. Callers hold q.mu.
func (q *queueState) wake() {
	close(q.notify)
	q.notify = make(chan struct{})
}

func (q *queueState) markDeleted() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.deleted = true
	q.wake()
}

func (q *queueState) setAttributes(attrs models.QueueAttributes, now time.Time) models.Queue {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queue.Attributes = attrs
	q.queue.LastModifiedAt = now
	return q.queue
}

func (q *queueState) purge() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = nil
	clear(q.byHandle)
}

func (q *queueState) send(in models.NewMessage, id string, now time.Time) models.Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	delay := q.queue.Attributes.DelaySeconds
	if in.Delay != nil {
		delay = *in.Delay
	}

	m := &messageState{
		msg: models.Message{
			ID:         id,
			Body:       in.Body,
			Attributes: maps.Clone(in.Attributes),
			SenderID:   in.SenderID,
			SentAt:     now,
		},
		visibleAt: now.Add(delay),
	}
	q.messages = append(q.messages, m)
	q.wake()

	return m.msg
}

// receive hands out visible messages. When none is visible it also returns
// the earliest time a message becomes visible (zero if unknown) and the
// channel closed on the next send.
func (q *queueState) receive(req models.ReceiveRequest, now time.Time, newHandle func() string) ([]models.Message, time.Time, <-chan struct{}, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.deleted {
		return nil, time.Time{}, nil, ErrQueueDoesNotExist
	}
	q.dropExpired(now)

	limit := req.MaxMessages
	if limit <= 0 {
		limit = 1
	}
	visibility := q.queue.Attributes.VisibilityTimeout
	if req.VisibilityTimeout != nil {
		visibility = *req.VisibilityTimeout
	}

	var (
		out  []models.Message
		next time.Time
	)
	for _, m := range q.messages {
		if len(out) == limit {
			break
		}
		if m.visibleAt.After(now) {
			if next.IsZero() || m.visibleAt.Before(next) {
				next = m.visibleAt
			}
			continue
		}

		handle := newHandle()
		m.current = handle
		m.handles = append(m.handles, handle)
		q.byHandle[handle] = m

		m.msg.ReceiveCount++
		if m.msg.FirstReceivedAt.IsZero() {
			m.msg.FirstReceivedAt = now
		}
		m.visibleAt = now.Add(visibility)

		received := m.msg
		received.ReceiptHandle = handle
		received.Attributes = maps.Clone(m.msg.Attributes)
		out = append(out, received)
	}

	return out, next, q.notify, nil
}

func (q *queueState) delete(handle string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.byHandle[handle]
	if !ok {
		return ErrReceiptHandleInvalid
	}
	q.remove(m)
	return nil
}

func (q *queueState) changeVisibility(handle string, timeout time.Duration, now time.Time) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.byHandle[handle]
	if !ok {
		return ErrReceiptHandleInvalid
	}
	if m.current != handle || !m.inFlight(now) {
		return ErrMessageNotInflight
	}

	m.visibleAt = now.Add(timeout)
	if timeout == 0 {
		q.wake()
	}
	return nil
}

func (q *queueState) stats(now time.Time) models.QueueStats {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.dropExpired(now)

	var s models.QueueStats
	for _, m := range q.messages {
		switch {
		case !m.visibleAt.After(now):
			s.Visible++
		case m.inFlight(now):
			s.InFlight++
		default:
			s.Delayed++
		}
	}
	return s
}

// dropExpired removes messages older than the retention period. Callers
// hold q.mu.
func (q *queueState) dropExpired(now time.Time) {
	retention := q.queue.Attributes.MessageRetentionPeriod
	if retention <= 0 {
		return
	}
	cutoff := now.Add(-retention)
	for _, m := range q.messages {
		if m.msg.SentAt.Before(cutoff) {
			q.forget(m)
		}
	}
	q.messages = slices.DeleteFunc(q.messages, func(m *messageState) bool {
		return m.msg.SentAt.Before(cutoff)
	})
}

func (q *queueState) remove(m *messageState) {
	q.forget(m)
	q.messages = slices.DeleteFunc(q.messages, func(other *messageState) bool { return other == m })
}

func (q *queueState) forget(m *messageState) {
	for _, h := range m.handles {
		delete(q.byHandle, h)
	}
}
