// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway is the composition root of the SQS gateway: it binds the
// limits policy and the query protocol handler to a server lifecycle.
package gateway
