// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
)

// transport is the listener-facing part of the server. *http.Server
// implements it.
type transport interface {
	// Serve accepts connections on l until Shutdown or Close is called.
	Serve(l net.Listener) error

	// Shutdown stops accepting connections and waits for active ones to
	// finish or ctx to expire.
	Shutdown(ctx context.Context) error

	// Close drops every connection immediately.
	Close() error
}
