// Package main provides the entry point for the sqlbatch CLI.
//
// sqlbatch submits a SQL script to an execute endpoint in fixed-size line
// batches, one request at a time, printing each server response on its own
// stdout line.
//
// INITIALIZATION FLOW:
// 1. Flag configuration bound to the config.Global struct
// 2. Flag validation in PersistentPreRunE, before the script is opened
// 3. Handler assignment linking the root command to the submit loop
// 4. Execution under a signal-bound context so Ctrl-C aborts the in-flight request
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/concave-dev/sqlbatch/cmd/sqlbatch/commands"
	"github.com/concave-dev/sqlbatch/cmd/sqlbatch/config"
	"github.com/concave-dev/sqlbatch/cmd/sqlbatch/handlers"
)

func init() {
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	commands.SetupFlags(rootCmd,
		&config.Global.URL, &config.Global.StartSequence, &config.Global.BatchSize,
		&config.Global.GasLimit, &config.Global.Mode, &config.Global.Timeout,
		&config.Global.LogLevel, &config.Global.Verbose, &config.Global.DryRun,
		config.DefaultURL, config.DefaultBatchSize, config.DefaultGasLimit,
		config.DefaultMode, config.DefaultLogLevel)

	rootCmd.RunE = handlers.HandleSubmit
}

// main is the main entry point
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
