// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs one gateway listener and manages its lifecycle.
//
// Start returns immediately with a RunningServer whose start signal resolves
// once the listener is bound (or with a *ConfigurationError / *BindError).
// Stop closes the listener, waits for in-flight requests and then releases
// the worker pool and queue engine the server created for itself. Resources
// supplied through the configuration are borrowed and left untouched.
package server
