// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the SQS query protocol over HTTP.
//
// Requests carry an Action parameter (query string or form body) and are
// answered with XML documents in the 2012-11-05 SQS namespace. Each action
// is served by an entry of the operation registry; the middleware chain adds
// request tracing, access logging, Prometheus metrics, dispatch onto the
// worker pool, and a fault barrier that turns handler panics into
// InternalError responses.
package http
