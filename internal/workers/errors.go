// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	// ErrPoolStopped is returned by Submit after Shutdown was called.
	ErrPoolStopped = errors.New("worker pool stopped")

	// ErrNilJob is returned by Submit when job is nil.
	ErrNilJob = errors.New("job cannot be nil")
)
