// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
)

const actionParam = "Action"

type requestInfoCtxKey struct{}

// requestInfo travels in the request context from withAction down to the
// operation and back up to logging and metrics. errorCode is written by the
// operation goroutine before the dispatch middleware returns.
type requestInfo struct {
	action    string
	formErr   error
	errorCode string
}

// withAction parses the query string and form body once and records the
// requested action. A malformed body is reported by the operation layer, so
// the request still goes through logging and metrics.
func (h *Handler) withAction(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := &requestInfo{}
		if err := r.ParseForm(); err != nil {
			info.formErr = err
		} else {
			info.action = r.Form.Get(actionParam)
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestInfoCtxKey{}, info)))
	})
}

func requestInfoFromContext(ctx context.Context) *requestInfo {
	if info, ok := ctx.Value(requestInfoCtxKey{}).(*requestInfo); ok {
		return info
	}
	return &requestInfo{}
}

func actionFromContext(ctx context.Context) string {
	return requestInfoFromContext(ctx).action
}
