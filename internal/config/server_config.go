// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/ydavid365/elasticmq/internal/service"
	"github.com/ydavid365/elasticmq/internal/validators"
	"github.com/ydavid365/elasticmq/internal/workers"
)

// Defaults of a ServerConfig built with DefaultServerConfig.
const (
	DefaultInterface = "127.0.0.1"
	DefaultPort      = 9324
)

// AccountSegment is the fixed path segment between the public address and
// the queue name in a queue URL.
const AccountSegment = "000000000000"

// PublicAddress is the externally visible base address of the gateway.
type PublicAddress struct {
	Scheme string
	Host   string
	// Port is omitted from the rendered address when zero.
	Port int
}

// DefaultPublicAddress is http://localhost:9324.
func DefaultPublicAddress() PublicAddress {
	return PublicAddress{Scheme: "http", Host: "localhost", Port: DefaultPort}
}

// String renders the address as scheme://host[:port].
func (a PublicAddress) String() string {
	if a.Port == 0 {
		return a.Scheme + "://" + a.Host
	}
	return a.Scheme + "://" + a.Host + ":" + strconv.Itoa(a.Port)
}

// ParsePublicAddress parses a base URL such as "https://sqs.local:9324".
func ParsePublicAddress(s string) (PublicAddress, error) {
	u, err := url.Parse(s)
	if err != nil {
		return PublicAddress{}, fmt.Errorf("%w: %w", ErrInvalidPublicAddress, err)
	}

	addr := PublicAddress{Scheme: u.Scheme, Host: u.Hostname()}
	if p := u.Port(); p != "" {
		addr.Port, err = strconv.Atoi(p)
		if err != nil {
			return PublicAddress{}, fmt.Errorf("%w: port %q", ErrInvalidPublicAddress, p)
		}
	}

	if err = addr.validate(); err != nil {
		return PublicAddress{}, err
	}
	return addr, nil
}

func (a PublicAddress) validate() error {
	if a.Scheme != "http" && a.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidPublicAddress, a.Scheme)
	}
	if a.Host == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidPublicAddress)
	}
	if a.Port < 0 || a.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidPublicAddress, a.Port)
	}
	return nil
}

// ServerConfig is the immutable configuration of one gateway instance.
// Every With method returns a modified copy and leaves the receiver intact.
//
// A nil executor or queue engine means the server creates its own and
// releases it on stop. Supplied ones are borrowed and never shut down by the
// server.
type ServerConfig struct {
	executor      workers.Executor
	engine        service.QueueEngine
	iface         string
	port          int
	publicAddress PublicAddress
	limitsMode    validators.LimitsMode
	workerCount   int
}

// DefaultServerConfig binds 127.0.0.1:9324, publishes http://localhost:9324
// and applies Strict limits.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		iface:         DefaultInterface,
		port:          DefaultPort,
		publicAddress: DefaultPublicAddress(),
		limitsMode:    validators.Strict,
	}
}

// WithExecutionContext returns a copy that runs operations on executor. The
// caller keeps ownership of executor.
func (c ServerConfig) WithExecutionContext(executor workers.Executor) ServerConfig {
	c.executor = executor
	return c
}

// WithQueueEngine returns a copy that submits operations to engine. The
// caller keeps ownership of engine.
func (c ServerConfig) WithQueueEngine(engine service.QueueEngine) ServerConfig {
	c.engine = engine
	return c
}

// WithInterface returns a copy binding the given interface.
func (c ServerConfig) WithInterface(iface string) ServerConfig {
	c.iface = iface
	return c
}

// WithPort returns a copy binding the given port. Port 0 binds an
// ephemeral port.
func (c ServerConfig) WithPort(port int) ServerConfig {
	c.port = port
	return c
}

// WithPublicAddress returns a copy publishing queue URLs under addr.
func (c ServerConfig) WithPublicAddress(addr PublicAddress) ServerConfig {
	c.publicAddress = addr
	return c
}

// WithLimitsMode returns a copy applying mode.
func (c ServerConfig) WithLimitsMode(mode validators.LimitsMode) ServerConfig {
	c.limitsMode = mode
	return c
}

// WithWorkerCount returns a copy whose server-created worker pool has n
// workers. It has no effect when an execution context is supplied.
func (c ServerConfig) WithWorkerCount(n int) ServerConfig {
	c.workerCount = n
	return c
}

// ExecutionContext is the executor requests run on. Nil means the server
// creates and owns a pool of WorkerCount slots.
func (c ServerConfig) ExecutionContext() workers.Executor { return c.executor }

// QueueEngine is the engine backing the queues. Nil means the server
// creates and owns an in-memory one.
func (c ServerConfig) QueueEngine() service.QueueEngine { return c.engine }

// Interface is the host the listener binds.
func (c ServerConfig) Interface() string { return c.iface }

// Port is the bind port. Zero asks the OS for a free one.
func (c ServerConfig) Port() int { return c.port }

// PublicAddress is the address queue URLs are built from.
func (c ServerConfig) PublicAddress() PublicAddress { return c.publicAddress }

// LimitsMode selects strict or relaxed request validation.
func (c ServerConfig) LimitsMode() validators.LimitsMode { return c.limitsMode }

// WorkerCount is the slot count of a server-created pool.
func (c ServerConfig) WorkerCount() int { return c.workerCount }

// QueueURL is the public address of the named queue.
func (c ServerConfig) QueueURL(queueName string) string {
	return c.publicAddress.String() + "/" + AccountSegment + "/" + queueName
}

// BindAddress is the host:port the listener binds.
func (c ServerConfig) BindAddress() string {
	return net.JoinHostPort(c.iface, strconv.Itoa(c.port))
}

// Validate reports every semantic problem of the configuration at once.
func (c ServerConfig) Validate() error {
	var errs []error

	if c.iface == "" {
		errs = append(errs, ErrInvalidInterface)
	}
	if c.port < 0 || c.port > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPort, c.port))
	}
	if err := c.publicAddress.validate(); err != nil {
		errs = append(errs, err)
	}
	if c.limitsMode != validators.Strict && c.limitsMode != validators.Relaxed {
		errs = append(errs, fmt.Errorf("%w: %d", validators.ErrUnknownLimitsMode, c.limitsMode))
	}
	if c.workerCount < 0 {
		errs = append(errs, fmt.Errorf("%w: negative worker count %d", ErrInvalidServerConfigs, c.workerCount))
	}

	return errors.Join(errs...)
}
