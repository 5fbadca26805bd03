// Package utils provides utility functions for the sqlbatch CLI.
// This file contains logging setup and Resty logger integration utilities.
package utils

import (
	"os"

	"github.com/concave-dev/sqlbatch/cmd/sqlbatch/config"
	"github.com/concave-dev/sqlbatch/internal/logging"
)

// RestyLogger implements resty.Logger interface and routes logs through structured logging
type RestyLogger struct{}

// Errorf routes error messages through structured logging.
func (s RestyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (s RestyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (s RestyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// SetupLogging configures CLI logging behavior based on environment and config.
// DEBUG=true forces debug output; --verbose raises the floor to INFO so batch
// progress and the run summary appear; otherwise only errors are shown.
// Logs always go to stderr, leaving stdout to batch responses.
func SetupLogging() {
	switch {
	case os.Getenv("DEBUG") == "true":
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
	case config.Global.Verbose && config.Global.LogLevel == "ERROR":
		logging.RestoreOutput()
		logging.SetLevel("INFO")
	case config.Global.LogLevel != "ERROR":
		logging.RestoreOutput()
		logging.SetLevel(config.Global.LogLevel)
	default:
		logging.SuppressOutput()
	}
}
