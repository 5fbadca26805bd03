// Package commands provides the CLI command structure for sqlbatchd.
//
// The daemon has a single root command. PreRunE opens the optional log file,
// applies the log level, and validates flags; RunE hands off to the daemon
// package, which serves until SIGINT/SIGTERM.
package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/concave-dev/sqlbatch/cmd/sqlbatchd/config"
	"github.com/concave-dev/sqlbatch/cmd/sqlbatchd/daemon"
	"github.com/concave-dev/sqlbatch/cmd/sqlbatchd/utils"
	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/concave-dev/sqlbatch/internal/version"
	"github.com/spf13/cobra"
)

// Global variable to track log file handle for cleanup
var logFileHandle *os.File

// CleanupLogFile closes the log file handle if it exists
func CleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// The log file is what failed, so report on stderr directly
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

// openLogFile redirects logging to path, creating parent directories
func openLogFile(path string) error {
	logDir := filepath.Dir(path)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}

	var err error
	logFileHandle, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	logging.SetOutput(logFileHandle)
	return nil
}

// Root command for sqlbatchd
var RootCmd = &cobra.Command{
	Use:   "sqlbatchd",
	Short: "Local execute endpoint for sqlbatch submissions",
	Long: `sqlbatchd serves the execute wire contract on a local address.

Each POST /v1/execute is checked against the current nonce, split into
statements on ';', and journaled in memory. Nothing is executed. Use it to
rehearse a script with sqlbatch before sending it to a real endpoint.`,
	Version:      version.SqlbatchdVersion,
	SilenceUsage: true, // Don't show usage on errors
	Args:         cobra.NoArgs,
	Example: `  # Serve on the default address the submitter targets
  sqlbatchd

  # Expect the first batch at sequence 100
  sqlbatchd --sequence=100

  # Listen on all interfaces with debug logging to a file
  sqlbatchd --bind=0.0.0.0:26650 --log-level=DEBUG --log-file=./logs/sqlbatchd.log`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Display logo first, before any validation or logging
		utils.DisplayLogo(cmd.OutOrStdout(), version.SqlbatchdVersion)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if config.Global.LogFile != "" {
			if err := openLogFile(config.Global.LogFile); err != nil {
				return err
			}
		}

		// Apply the flag level now so config initialization logs honour it,
		// then again in case the environment changed it
		logging.SetLevel(config.Global.LogLevel)
		config.InitializeConfig()
		logging.SetLevel(config.Global.LogLevel)

		if err := config.ValidateConfig(); err != nil {
			CleanupLogFile()
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer CleanupLogFile()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return daemon.Run(ctx)
	},
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	SetupFlags(RootCmd)
}
