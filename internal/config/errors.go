// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned while building a configuration.
var (
	// ErrInvalidServerConfigs indicates a process configuration that failed
	// validation.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPublicAddress indicates a public address that is not an
	// http(s) URL with a host.
	ErrInvalidPublicAddress = errors.New("invalid public address")
	// ErrInvalidInterface indicates an empty bind interface.
	ErrInvalidInterface = errors.New("bind interface must not be empty")
	// ErrInvalidPort indicates a bind port outside 0..65535.
	ErrInvalidPort = errors.New("bind port out of range")
)
