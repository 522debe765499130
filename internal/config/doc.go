// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the gateway.
//
// Process configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetStructuredConfig] returns the merged process configuration, and
// [StructuredConfig.ToServerConfig] turns it into the immutable
// [ServerConfig] a gateway instance is started with.
package config
