// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/ydavid365/elasticmq/internal/logger"
)

// withFaultBarrier converts a panic in an operation into an InternalError
// response. The panic value and stack go to the log only. When the
// operation already sent its header, the response is left as is.
func (h *Handler) withFaultBarrier(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.FromRequest(r).Error().
				Str("func", "*Handler.withFaultBarrier").
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Bool("header_sent", rw.wroteHeader).
				Msg("operation panicked")
			if rw.wroteHeader {
				return
			}
			h.writeError(rw, r, errInternal)
		}()

		next.ServeHTTP(rw, r)
	})
}
