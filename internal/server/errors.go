// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
)

var (
	// ErrWaitTimeout is returned when a signal is not resolved in time.
	ErrWaitTimeout = errors.New("timed out waiting for signal")

	errNoRoutes = errors.New("no routes builder provided")
)

// ConfigurationError reports a ServerConfig that cannot be served.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid server configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// BindError reports a listener that could not be bound.
type BindError struct {
	Address string
	Err     error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Address, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// StopError reports a stop that did not complete cleanly, e.g. because
// in-flight requests outlived StopTimeout.
type StopError struct {
	Err error
}

func (e *StopError) Error() string {
	return fmt.Sprintf("stop: %v", e.Err)
}

func (e *StopError) Unwrap() error { return e.Err }
