// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ydavid365/elasticmq/internal/config"
	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/internal/service"
	"github.com/ydavid365/elasticmq/internal/workers"
)

// StopTimeout bounds how long Stop waits for in-flight requests, and then
// for the owned worker pool, before giving up with a *StopError.
const StopTimeout = 30 * time.Second

// ListenerName is the name of the listener bound to port. It tags every log
// line of the instance and names its worker pool.
func ListenerName(port int) string {
	return "sqs-gateway-" + strconv.Itoa(port)
}

// Dependencies are the resources the request handler is built on. They are
// either borrowed from the configuration or created by the server.
type Dependencies struct {
	Executor workers.Executor
	Engine   service.QueueEngine
	Registry *prometheus.Registry
	Logger   *logger.Logger
}

// Routes builds the request handler once the listener is bound and the
// dependencies are resolved.
type Routes func(deps Dependencies) http.Handler

// RunningServer is one started gateway instance.
type RunningServer struct {
	name   string
	cfg    config.ServerConfig
	logger *logger.Logger

	started *Signal
	stopped *Signal

	stopOnce    sync.Once
	stopTimeout time.Duration
	cancel      context.CancelFunc

	// written by start before the start signal resolves
	addr      net.Addr
	transport transport
	serveDone chan struct{}

	ownedPool   *workers.Pool
	ownedEngine service.QueueEngine
}

// Start begins serving cfg in the background and returns at once. The
// outcome of the bind is delivered through StartSignal.
func Start(cfg config.ServerConfig, routes Routes, log *logger.Logger) *RunningServer {
	return launch(cfg, routes, log, StopTimeout)
}

// launch is Start with an explicit bound for each stop phase.
func launch(cfg config.ServerConfig, routes Routes, log *logger.Logger, stopTimeout time.Duration) *RunningServer {
	name := ListenerName(cfg.Port())
	baseCtx, cancel := context.WithCancel(context.Background())

	s := &RunningServer{
		name:        name,
		cfg:         cfg,
		logger:      log.WithListener(name),
		started:     newSignal(),
		stopped:     newSignal(),
		stopTimeout: stopTimeout,
		cancel:      cancel,
		serveDone:   make(chan struct{}),
	}

	go s.start(baseCtx, routes)

	return s
}

// Name returns the listener name.
func (s *RunningServer) Name() string {
	return s.name
}

// Config returns the configuration the server was started with.
func (s *RunningServer) Config() config.ServerConfig {
	return s.cfg
}

// StartSignal resolves with nil once the listener is bound, or with a
// *ConfigurationError or *BindError.
func (s *RunningServer) StartSignal() *Signal {
	return s.started
}

// Addr returns the bound address, or nil when the server is not bound.
// With port 0 this is the only way to learn the ephemeral port.
func (s *RunningServer) Addr() net.Addr {
	if !s.started.Resolved() || s.started.Err() != nil {
		return nil
	}
	return s.addr
}

// WaitStarted blocks until the start signal resolves or timeout elapses.
func (s *RunningServer) WaitStarted(timeout time.Duration) error {
	return s.started.WaitTimeout(timeout)
}

// Stop closes the listener and releases owned resources in the
// background. Every call returns the same signal; only the first one acts.
func (s *RunningServer) Stop() *Signal {
	s.stopOnce.Do(func() {
		go s.stop()
	})
	return s.stopped
}

// StopAndWait stops the server and waits for the stop signal.
func (s *RunningServer) StopAndWait(timeout time.Duration) error {
	return s.Stop().WaitTimeout(timeout)
}

func (s *RunningServer) start(baseCtx context.Context, routes Routes) {
	if err := s.cfg.Validate(); err != nil {
		s.fail(&ConfigurationError{Err: err})
		return
	}
	if routes == nil {
		s.fail(&ConfigurationError{Err: errNoRoutes})
		return
	}

	address := s.cfg.BindAddress()
	ln, err := net.Listen("tcp", address)
	if err != nil {
		s.fail(&BindError{Address: address, Err: err})
		return
	}

	deps := s.acquire()
	s.transport = newHTTPServer(routes(deps), baseCtx, s.logger)
	s.addr = ln.Addr()

	go s.serve(ln)

	s.logger.Info().
		Str("func", "*RunningServer.start").
		Str("address", s.addr.String()).
		Str("public_address", s.cfg.PublicAddress().String()).
		Str("limits", s.cfg.LimitsMode().String()).
		Bool("owns_executor", s.ownedPool != nil).
		Bool("owns_engine", s.ownedEngine != nil).
		Msg("listener bound")
	s.started.resolve(nil)
}

func (s *RunningServer) fail(err error) {
	s.logger.Error().Err(err).Str("func", "*RunningServer.start").Msg("server failed to start")
	close(s.serveDone)
	s.started.resolve(err)
}

// acquire resolves the executor and queue engine, creating the missing
// ones. Created resources are owned and released by stop.
func (s *RunningServer) acquire() Dependencies {
	deps := Dependencies{
		Executor: s.cfg.ExecutionContext(),
		Engine:   s.cfg.QueueEngine(),
		Registry: prometheus.NewRegistry(),
		Logger:   s.logger,
	}

	if deps.Executor == nil {
		s.ownedPool = workers.NewPool(s.name, s.cfg.WorkerCount(), workers.WithMetrics(deps.Registry))
		deps.Executor = s.ownedPool
	}
	if deps.Engine == nil {
		s.ownedEngine = service.NewMemoryEngine(s.logger)
		deps.Engine = s.ownedEngine
	}

	return deps
}

func (s *RunningServer) serve(ln net.Listener) {
	defer close(s.serveDone)

	if err := s.transport.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error().Err(err).Str("func", "*RunningServer.serve").Msg("listener stopped unexpectedly")
	}
}

func (s *RunningServer) stop() {
	<-s.started.Done()
	if s.started.Err() != nil {
		s.cancel()
		s.stopped.resolve(nil)
		return
	}

	s.logger.Info().Str("func", "*RunningServer.stop").Msg("stopping listener")

	// end long polls so that in-flight requests can complete
	s.cancel()

	var errs []error

	ctx, cancel := context.WithTimeout(context.Background(), s.stopTimeout)
	if err := s.transport.Shutdown(ctx); err != nil {
		errs = append(errs, err)
		_ = s.transport.Close()
	}
	cancel()
	<-s.serveDone

	errs = append(errs, s.release()...)

	var stopErr error
	if len(errs) > 0 {
		stopErr = &StopError{Err: errors.Join(errs...)}
		s.logger.Error().Err(stopErr).Str("func", "*RunningServer.stop").Msg("listener stopped with errors")
	} else {
		s.logger.Info().Str("func", "*RunningServer.stop").Msg("listener stopped")
	}
	s.stopped.resolve(stopErr)
}

// release shuts down the owned engine and pool. The engine goes first so
// that receives still parked on it wake up and free their workers.
func (s *RunningServer) release() []error {
	var errs []error

	if s.ownedEngine != nil {
		if err := s.ownedEngine.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if s.ownedPool != nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.stopTimeout)
		defer cancel()
		if err := s.ownedPool.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}
