// Package config provides configuration management for the sqlbatch CLI.
package config

import (
	"github.com/concave-dev/sqlbatch/internal/version"
	"github.com/concave-dev/sqlbatch/internal/wire"
)

const (
	DefaultURL       = "http://127.0.0.1:26650" // Default execute endpoint (local sqlbatchd or proxy)
	DefaultBatchSize = 10                       // Lines per request
	DefaultMode      = "json"                   // Payload mode
	DefaultLogLevel  = "ERROR"                  // Keep stderr quiet unless asked
)

// DefaultGasLimit is sent with every request unless overridden.
var DefaultGasLimit = wire.DefaultGasLimit

// Version returns the current sqlbatch CLI version from the centralized version package
var Version = version.SqlbatchVersion

// Global holds the CLI configuration
var Global struct {
	URL           string // Base URL of the execute endpoint
	StartSequence uint64 // Sequence number of the first batch
	BatchSize     int    // Lines per batch
	GasLimit      uint64 // Gas limit sent with every batch
	Mode          string // Payload mode flag value: json, raw
	Timeout       int    // Per-request timeout in seconds, 0 for none
	LogLevel      string // Log level for CLI operations
	Verbose       bool   // Show progress and summary on stderr
	DryRun        bool   // Print payloads instead of sending them

	// Derived during validation
	PayloadMode wire.Mode
}
