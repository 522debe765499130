// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/ydavid365/elasticmq/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
)

// newHTTPServer builds the transport for handler. Request contexts derive
// from baseCtx, so cancelling it ends long polls of in-flight requests.
// WriteTimeout stays zero so that a long poll is never cut off.
func newHTTPServer(handler http.Handler, baseCtx context.Context, log *logger.Logger) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
		ErrorLog:          stdlog.New(log, "", 0),
	}
}
