// Package config provides default configuration values shared by the
// submitter and the execute endpoint, so a bare `sqlbatch FILE` reaches a
// bare `sqlbatchd` without any flags.
package config

import "time"

const (
	// DefaultBindAddr is the loopback address the endpoint binds to.
	// The endpoint has no authentication, so it never listens on all
	// interfaces unless asked.
	DefaultBindAddr = "127.0.0.1"

	// DefaultPort is the execute endpoint port
	DefaultPort = 26650

	// DefaultDaemonLogLevel is the log level for sqlbatchd
	DefaultDaemonLogLevel = "INFO"

	// DefaultShutdownTimeout bounds graceful shutdown of the endpoint
	DefaultShutdownTimeout = 10 * time.Second
)
