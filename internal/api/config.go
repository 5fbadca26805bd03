// Package api provides the HTTP execute endpoint served by sqlbatchd.
//
// This file defines the server configuration: where to bind, which nonce the
// journal starts from, and the version reported by /health.
package api

import (
	"fmt"

	configDefaults "github.com/concave-dev/sqlbatch/internal/config"
	"github.com/concave-dev/sqlbatch/internal/validate"
	"github.com/concave-dev/sqlbatch/internal/version"
)

const (
	DefaultBindAddr = configDefaults.DefaultBindAddr // Loopback unless --bind says otherwise
	DefaultPort     = configDefaults.DefaultPort     // Matches the submitter's default URL
)

// Config holds all parameters required to run the execute endpoint.
type Config struct {
	BindAddr   string // HTTP server bind address (e.g., "127.0.0.1")
	BindPort   int    // HTTP server bind port, 0 picks a free port
	StartNonce uint64 // Nonce the first accepted submission must carry
	Version    string // Reported by /health
}

// DefaultConfig creates a Config bound to loopback on the default port.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:   DefaultBindAddr,
		BindPort:   DefaultPort,
		StartNonce: 0,
		Version:    version.SqlbatchdVersion,
	}
}

// Validate checks the bind address and port. Port 0 is allowed so tests can
// ask the OS for a free port.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidateField(c.BindAddr, "ip"); err != nil {
		return fmt.Errorf("bind address must be an IP address: %s", c.BindAddr)
	}
	if err := validate.ValidateField(c.BindPort, "min=0,max=65535"); err != nil {
		return fmt.Errorf("bind port validation failed: %w", err)
	}
	return nil
}
