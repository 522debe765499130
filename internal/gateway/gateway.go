// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"net/http"

	"github.com/ydavid365/elasticmq/internal/config"
	handler "github.com/ydavid365/elasticmq/internal/handler/http"
	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/internal/server"
	"github.com/ydavid365/elasticmq/internal/validators"
)

// Start launches a gateway for cfg and returns immediately. Bind and
// configuration failures are reported through the start signal of the
// returned server.
func Start(cfg config.ServerConfig, log *logger.Logger) *server.RunningServer {
	return server.Start(cfg, Routes(cfg), log)
}

// Routes returns the route builder serving the SQS query protocol with the
// limits and queue URLs of cfg.
func Routes(cfg config.ServerConfig) server.Routes {
	limits := validators.NewLimits(cfg.LimitsMode())

	return func(deps server.Dependencies) http.Handler {
		return handler.NewHandler(
			deps.Engine,
			deps.Executor,
			limits,
			cfg.QueueURL,
			deps.Registry,
			deps.Logger,
		).Init()
	}
}
