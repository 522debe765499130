// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The gateway reads:
//
//	CONFIG                   path of the JSON config file
//	SERVER_INTERFACE         bind address
//	SERVER_PORT              bind port, 0 picks an ephemeral one
//	SERVER_PUBLIC_ADDRESS    base of generated queue URLs
//	SERVER_LIMITS            strict or relaxed validation
//	SERVER_WORKERS           executor slot count
//	SERVER_SHUTDOWN_TIMEOUT  bound on graceful stop, e.g. "30s"
//	STORAGE_DB_DSN           queue catalog database, empty keeps it in memory
//
// Unset variables leave their fields zero so lower-priority sources survive
// the merge in [configBuilder].
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error reading gateway environment: %w", err)
	}
	return nil
}
