// Package commands contains Cobra CLI command definitions for sqlbatchd.
package commands

import (
	"github.com/concave-dev/sqlbatch/cmd/sqlbatchd/config"
	"github.com/spf13/cobra"
)

// SetupFlags configures all command line flags for the daemon
func SetupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&config.Global.Bind, "bind", config.DefaultBind,
		"Address and port for the execute endpoint (e.g., "+config.DefaultBind+")")
	cmd.Flags().Uint64VarP(&config.Global.StartNonce, "sequence", "n", 0,
		"Nonce the first submission must carry (match the submitter's --start-sequence)")

	// Operational flags
	cmd.Flags().StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	cmd.Flags().StringVar(&config.Global.LogFile, "log-file", "",
		"Append logs to this file instead of stderr")
}
