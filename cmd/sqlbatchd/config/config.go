// Package config provides configuration management for the sqlbatchd daemon.
//
// Flags are bound directly to the Global struct. Validation runs in the root
// command's PreRunE and splits the raw --bind value into host and port before
// the daemon starts.
package config

import (
	configDefaults "github.com/concave-dev/sqlbatch/internal/config"
	"github.com/concave-dev/sqlbatch/internal/validate"
)

const (
	DefaultLogLevel = configDefaults.DefaultDaemonLogLevel // Default log level
)

// DefaultBind is the default --bind value
var DefaultBind = validate.NetworkAddress{
	Host: configDefaults.DefaultBindAddr,
	Port: configDefaults.DefaultPort,
}.String()

// Config holds all daemon configuration values
type Config struct {
	Bind       string // Raw --bind flag value (host:port)
	BindAddr   string // Bind host, derived from Bind
	BindPort   int    // Bind port, derived from Bind
	StartNonce uint64 // Nonce the first submission must carry
	LogLevel   string // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string // Optional log file, stderr when empty
}

// Global configuration instance
var Global = Config{
	Bind:     DefaultBind,
	LogLevel: DefaultLogLevel,
}
