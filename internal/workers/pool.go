// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Pool runs each job on its own goroutine and bounds how many jobs hold a
// slot at once. A job can hand its slot back while it waits on something
// outside the pool (see Suspend), so parked jobs never starve new ones.
type Pool struct {
	name  string
	size  int
	slots chan struct{}
	quit  chan struct{}
	done  chan struct{}
	wg    sync.WaitGroup

	mu       sync.Mutex
	stopOnce sync.Once
	stopped  atomic.Bool

	busy      atomic.Int64
	parked    atomic.Int64
	processed atomic.Int64
	panicked  atomic.Int64
	metrics   *poolMetrics
}

type poolMetrics struct {
	busy      prometheus.GaugeFunc
	parked    prometheus.GaugeFunc
	processed prometheus.CounterFunc
}

// Option configures a Pool.
type Option func(*Pool)

// WithMetrics registers the pool's busy and parked job gauges and its
// processed-job counter with reg, labelled with the pool name.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(p *Pool) {
		labels := prometheus.Labels{"pool": p.name}
		m := &poolMetrics{
			busy: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name:        "sqs_gateway_pool_busy_workers",
				Help:        "Jobs currently holding a slot",
				ConstLabels: labels,
			}, func() float64 { return float64(p.busy.Load()) }),
			parked: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name:        "sqs_gateway_pool_parked_jobs",
				Help:        "Jobs suspended without a slot",
				ConstLabels: labels,
			}, func() float64 { return float64(p.parked.Load()) }),
			processed: prometheus.NewCounterFunc(prometheus.CounterOpts{
				Name:        "sqs_gateway_pool_processed_total",
				Help:        "Jobs run to completion",
				ConstLabels: labels,
			}, func() float64 { return float64(p.processed.Load()) }),
		}
		if reg.Register(m.busy) == nil && reg.Register(m.parked) == nil && reg.Register(m.processed) == nil {
			p.metrics = m
		}
	}
}

// NewPool returns a pool with size slots. A non-positive size defaults to
// four slots per CPU.
func NewPool(name string, size int, opts ...Option) *Pool {
	if size <= 0 {
		size = runtime.NumCPU() * 4
	}

	p := &Pool{
		name:  name,
		size:  size,
		slots: make(chan struct{}, size),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the pool name.
func (p *Pool) Name() string {
	return p.name
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return p.size
}

// Stopped reports whether Shutdown has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Submit implements Executor. It blocks until a slot is free.
func (p *Pool) Submit(ctx context.Context, job func()) error {
	if job == nil {
		return ErrNilJob
	}
	if p.stopped.Load() {
		return ErrPoolStopped
	}

	select {
	case p.slots <- struct{}{}:
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	p.mu.Lock()
	if p.stopped.Load() {
		p.mu.Unlock()
		<-p.slots
		return ErrPoolStopped
	}
	p.wg.Add(1)
	p.mu.Unlock()

	go p.run(job)
	return nil
}

// Suspend runs wait without holding a slot and takes a slot back before
// returning. It must only be called from a job running on p.
func (p *Pool) Suspend(wait func()) {
	<-p.slots
	p.busy.Add(-1)
	p.parked.Add(1)
	defer func() {
		p.slots <- struct{}{}
		p.parked.Add(-1)
		p.busy.Add(1)
	}()

	wait()
}

// Parked returns the number of jobs currently suspended.
func (p *Pool) Parked() int64 {
	return p.parked.Load()
}

// Shutdown implements Executor. Calling it more than once is safe; later
// calls only wait.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped.Store(true)
		close(p.quit)
		p.mu.Unlock()

		go func() {
			p.wg.Wait()
			close(p.done)
		}()
	})

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Panicked returns the number of jobs that panicked. A panicking job does
// not affect other jobs.
func (p *Pool) Panicked() int64 {
	return p.panicked.Load()
}

func (p *Pool) run(job func()) {
	p.busy.Add(1)
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Add(1)
		}
		p.busy.Add(-1)
		p.processed.Add(1)
		<-p.slots
		p.wg.Done()
	}()
	job()
}
