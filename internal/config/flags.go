// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a listener address in format [host]:[port]
//	-i listener interface
//	-p listener port
//	-public-address base URL of queue URLs (e.g. http://localhost:9324)
//	-limits limits mode: strict or relaxed
//	-workers worker pool size
//	-shutdown-timeout bound of the graceful stop (e.g. "45s")
//	-d queue catalog DSN
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var listenAddress NetAddress
	var iface string
	var port int
	var publicAddress string
	var limits string
	var workerCount int
	var shutdownTimeout time.Duration
	var databaseDSN string
	var jsonConfigPath string

	flag.Var(&listenAddress, "a", "Net address host:port")
	flag.StringVar(&iface, "i", "", "Listener interface")
	flag.IntVar(&port, "p", 0, "Listener port")
	flag.StringVar(&publicAddress, "public-address", "", "Public base address of queue URLs")
	flag.StringVar(&limits, "limits", "", "Limits mode: strict or relaxed")
	flag.IntVar(&workerCount, "workers", 0, "Worker pool size")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful stop bound (e.g., 45s)")
	flag.StringVar(&databaseDSN, "d", "", "Queue catalog DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	// -a is shorthand for -i and -p; explicit -i / -p win.
	if iface == "" {
		iface = listenAddress.Host
	}
	if port == 0 {
		port = listenAddress.Port
	}

	return &StructuredConfig{
		Server: Server{
			Interface:       iface,
			Port:            port,
			PublicAddress:   publicAddress,
			Limits:          limits,
			Workers:         workerCount,
			ShutdownTimeout: shutdownTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
