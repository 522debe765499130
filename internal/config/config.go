// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/ydavid365/elasticmq/internal/validators"
)

// StructuredConfig is the process-level configuration of the gateway. It is
// populated by merging values from environment variables, command-line flags
// and an optional JSON file, and converted into a [ServerConfig] with
// [StructuredConfig.ToServerConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// Server holds the listener and protocol settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the optional queue catalog settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds the settings of the SQS listener.
type Server struct {
	// Interface is the address the listener binds to (e.g. "0.0.0.0").
	// Env: SERVER_INTERFACE
	Interface string `env:"INTERFACE" validate:"omitempty,ip|hostname"`

	// Port is the TCP port the listener binds to.
	// Env: SERVER_PORT
	Port int `env:"PORT" validate:"gte=0,lte=65535"`

	// PublicAddress is the base URL queue URLs are built from
	// (e.g. "http://localhost:9324").
	// Env: SERVER_PUBLIC_ADDRESS
	PublicAddress string `env:"PUBLIC_ADDRESS" validate:"omitempty,url"`

	// Limits selects the limits policy: "strict" or "relaxed".
	// Env: SERVER_LIMITS
	Limits string `env:"LIMITS" validate:"omitempty,oneof=strict relaxed Strict Relaxed"`

	// Workers is the size of the worker pool operations run on. Zero picks a
	// size from the number of CPUs.
	// Env: SERVER_WORKERS
	Workers int `env:"WORKERS" validate:"gte=0"`

	// ShutdownTimeout bounds how long the process waits for the gateway to
	// stop after a termination signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gte=0"`
}

// Storage groups the configuration of the queue catalog.
type Storage struct {
	// DB holds the catalog database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the queue catalog.
type DB struct {
	// DSN selects the catalog backend: a postgres:// URL or a SQLite file
	// path. Empty disables the catalog.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// ToServerConfig converts the process configuration into a ServerConfig,
// starting from [DefaultServerConfig] and replacing every field that was
// set.
func (cfg *StructuredConfig) ToServerConfig() (ServerConfig, error) {
	serverCfg := DefaultServerConfig()

	if cfg.Server.Interface != "" {
		serverCfg = serverCfg.WithInterface(cfg.Server.Interface)
	}
	if cfg.Server.Port != 0 {
		serverCfg = serverCfg.WithPort(cfg.Server.Port)
	}
	if cfg.Server.Workers != 0 {
		serverCfg = serverCfg.WithWorkerCount(cfg.Server.Workers)
	}

	if cfg.Server.PublicAddress != "" {
		addr, err := ParsePublicAddress(cfg.Server.PublicAddress)
		if err != nil {
			return ServerConfig{}, err
		}
		serverCfg = serverCfg.WithPublicAddress(addr)
	}

	if cfg.Server.Limits != "" {
		mode, err := validators.ParseMode(cfg.Server.Limits)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
		}
		serverCfg = serverCfg.WithLimitsMode(mode)
	}

	return serverCfg, nil
}
