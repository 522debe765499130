// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/internal/workers"
)

// withDispatch runs the rest of the chain on the worker pool and waits for
// it. The connection goroutine only blocks; operation code never runs on it.
func (h *Handler) withDispatch(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done := make(chan struct{})
		err := h.executor.Submit(r.Context(), func() {
			defer close(done)
			next.ServeHTTP(w, r)
		})
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withDispatch").Msg("error submitting request to worker pool")
			if errors.Is(err, workers.ErrPoolStopped) {
				h.writeError(w, r, errServiceUnavailable)
				return
			}
			h.writeError(w, r, errRequestCanceled)
			return
		}
		<-done
	})
}
