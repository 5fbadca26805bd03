// Package config handles configuration validation for the sqlbatchd daemon.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/concave-dev/sqlbatch/internal/validate"
)

// InitializeConfig applies environment overrides before validation runs.
func InitializeConfig() {
	if os.Getenv("DEBUG") == "true" {
		Global.LogLevel = "DEBUG"
		logging.Info("DEBUG environment variable detected, setting log level to DEBUG")
	}
}

// ValidateConfig validates and normalizes the daemon configuration.
//
// The bind address must be an IP with an explicit port: submitters locate the
// endpoint by URL, so an OS-assigned port would leave them nothing to target.
func ValidateConfig() error {
	netAddr, err := validate.ParseBindAddress(Global.Bind)
	if err != nil {
		logging.Error("Invalid bind address '%s': %v", Global.Bind, err)
		return fmt.Errorf("invalid bind address: %w", err)
	}

	if err := validate.ValidatePortRange(netAddr.Port); err != nil {
		logging.Error("Bind port cannot be 0 (auto-assigned) - submitters need a known port")
		return fmt.Errorf("sqlbatchd requires specific port (not 0): %w", err)
	}

	Global.BindAddr = netAddr.Host
	Global.BindPort = netAddr.Port

	Global.LogLevel = strings.ToUpper(Global.LogLevel)
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	return nil
}
