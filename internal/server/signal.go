// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"sync"
	"time"
)

// Signal is a one-shot completion notice carrying an optional error. It is
// resolved exactly once; later resolutions are ignored.
type Signal struct {
	once sync.Once
	done chan struct{}
	err  error
}

func newSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

func (s *Signal) resolve(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}

// Done is closed when the signal resolves.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Err returns the outcome, or nil while the signal is pending.
func (s *Signal) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Resolved reports whether the signal has resolved.
func (s *Signal) Resolved() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the signal resolves or ctx is done.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitTimeout blocks until the signal resolves or timeout elapses, in which
// case ErrWaitTimeout is returned.
func (s *Signal) WaitTimeout(timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-s.done:
		return s.err
	case <-timer.C:
		return ErrWaitTimeout
	}
}
