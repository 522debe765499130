// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ydavid365/elasticmq/internal/config"
	"github.com/ydavid365/elasticmq/internal/gateway"
	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/internal/server"
	"github.com/ydavid365/elasticmq/internal/service"
	"github.com/ydavid365/elasticmq/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startTimeout = 10 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("sqs-gateway")
	if err := run(log); err != nil {
		log.Error().Err(err).Msg("gateway terminated")
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	serverCfg, err := cfg.ToServerConfig()
	if err != nil {
		return fmt.Errorf("error building server config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if cfg.Storage.DB.DSN != "" {
		engine, closeCatalog, err := openCatalogEngine(ctx, cfg.Storage.DB.DSN, log)
		if err != nil {
			return err
		}
		defer closeCatalog()
		serverCfg = serverCfg.WithQueueEngine(engine)
	}

	gw := gateway.Start(serverCfg, log)
	if err = gw.WaitStarted(startTimeout); err != nil {
		_ = gw.StopAndWait(startTimeout)
		return fmt.Errorf("error starting gateway: %w", err)
	}
	log.Info().Str("address", gw.Addr().String()).Str("public_address", serverCfg.PublicAddress().String()).Msg("gateway started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = server.StopTimeout
	}
	if err = gw.StopAndWait(shutdownTimeout); err != nil {
		return fmt.Errorf("error stopping gateway: %w", err)
	}

	log.Info().Msg("gateway stopped")
	return nil
}

// openCatalogEngine opens the queue catalog at dsn and returns an engine
// restored from it. The engine is borrowed by the gateway, so the returned
// func closes it together with the database.
func openCatalogEngine(ctx context.Context, dsn string, log *logger.Logger) (service.QueueEngine, func(), error) {
	db, err := store.NewConnect(ctx, dsn, log)
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to queue catalog: %w", err)
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("error migrating queue catalog: %w", err)
	}

	engine := service.NewMemoryEngine(log, service.WithCatalog(store.NewQueueCatalog(db, log)))
	if err = engine.Restore(ctx); err != nil {
		_ = engine.Close()
		_ = db.Close()
		return nil, nil, fmt.Errorf("error restoring queues: %w", err)
	}

	closeAll := func() {
		if err := engine.Close(); err != nil {
			log.Err(err).Msg("error closing queue engine")
		}
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing queue catalog")
		}
	}
	return engine, closeAll, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
