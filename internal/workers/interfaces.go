// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the execution context request handling runs on:
// a bounded pool that runs submitted jobs until it is shut down.
package workers

import "context"

// Executor runs jobs concurrently. The gateway either creates its own Pool
// (and shuts it down on stop) or borrows an Executor from the caller, which
// it never shuts down.
type Executor interface {
	// Submit hands job to a worker. It blocks until a worker accepts the
	// job, ctx is done or the executor is shut down.
	Submit(ctx context.Context, job func()) error

	// Shutdown stops accepting jobs and waits for running jobs to finish
	// or ctx to expire.
	Shutdown(ctx context.Context) error
}

// Suspender is implemented by executors that let a running job give up its
// slot while it waits, for example on a long poll.
type Suspender interface {
	Suspend(wait func())
}

// Suspend runs wait through e when e is a Suspender, and directly
// otherwise. It must be called from a job running on e.
func Suspend(e Executor, wait func()) {
	if s, ok := e.(Suspender); ok {
		s.Suspend(wait)
		return
	}
	wait()
}
