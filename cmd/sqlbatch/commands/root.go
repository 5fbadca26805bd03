// Package commands provides the command definition for sqlbatch.
//
// sqlbatch has a single root command with no subcommands: it takes one SQL
// script path, splits the script into fixed-size line batches, and submits
// each batch in order to an execute endpoint.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "sqlbatch [flags] FILE",
	Short: "Submit a SQL script to an execute endpoint in fixed-size line batches",
	Long: `sqlbatch reads a SQL script, groups its lines into batches of --batch-size
lines, joins each batch into one statement string, and POSTs it to
<url>/v1/execute with an increasing sequence number.

Batching is positional and does not look at statement boundaries, so every
statement in the script must carry its own terminator (for example ';').
Batches are sent one at a time. The first failure stops the run and no
later batch is sent.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	Example: `  # Submit a script to the local endpoint
  sqlbatch schema.sql

  # Continue a sequence on a remote proxy
  sqlbatch -u https://proxy.example.com -s 42 data.sql

  # Bigger batches with a custom gas limit
  sqlbatch -b 100 -g 20000000000 data.sql

  # Send raw text bodies instead of JSON
  sqlbatch --mode raw data.sql

  # Show what would be sent without sending it
  sqlbatch --dry-run data.sql

  # Show per-batch progress on stderr
  sqlbatch -v data.sql`,
}

// SetupFlags configures all flags on the root command
func SetupFlags(rootCmd *cobra.Command, urlPtr *string, startSequencePtr *uint64,
	batchSizePtr *int, gasLimitPtr *uint64, modePtr *string, timeoutPtr *int,
	logLevelPtr *string, verbosePtr *bool, dryRunPtr *bool,
	defaultURL string, defaultBatchSize int, defaultGasLimit uint64, defaultMode string, defaultLogLevel string) {
	flags := rootCmd.Flags()

	flags.StringVarP(urlPtr, "url", "u", defaultURL,
		"Host URL of the execute endpoint")
	flags.Uint64VarP(startSequencePtr, "start-sequence", "s", 0,
		"Sequence number of the first batch")
	flags.IntVarP(batchSizePtr, "batch-size", "b", defaultBatchSize,
		"Number of script lines per request")
	flags.Uint64VarP(gasLimitPtr, "gas-limit", "g", defaultGasLimit,
		"Gas limit sent with every request")
	flags.StringVarP(modePtr, "mode", "m", defaultMode,
		"Payload mode: json (stmts/sequence/gas_limit body), raw (statement text body)")
	flags.IntVar(timeoutPtr, "timeout", 0,
		"Per-request timeout in seconds (0 waits indefinitely)")
	flags.StringVar(logLevelPtr, "log-level", defaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	flags.BoolVarP(verbosePtr, "verbose", "v", false,
		"Show per-batch progress and a summary on stderr")
	flags.BoolVar(dryRunPtr, "dry-run", false,
		"Print each request payload instead of sending it")
}
