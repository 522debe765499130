// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router.
//
// Actions are accepted on "/" (queue named by QueueUrl), on
// "/{account}/{queue}" (the queue URL itself) and on "/queue/{queue}".
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withAction, h.withLogging, h.withMetrics)

	router.Get("/health", h.health)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		r.Use(h.withDispatch, h.withFaultBarrier)

		for _, pattern := range []string{"/", "/{account}/{queue}", "/queue/{queue}"} {
			r.Get(pattern, h.serveAction)
			r.Post(pattern, h.serveAction)
		}
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
