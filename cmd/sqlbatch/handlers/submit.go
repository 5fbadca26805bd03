// Package handlers provides command handler functions for sqlbatch.
//
// This file contains the submit handler run by the root command.
package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/concave-dev/sqlbatch/cmd/sqlbatch/client"
	"github.com/concave-dev/sqlbatch/cmd/sqlbatch/config"
	"github.com/concave-dev/sqlbatch/cmd/sqlbatch/display"
	"github.com/concave-dev/sqlbatch/cmd/sqlbatch/utils"
	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/concave-dev/sqlbatch/internal/netutil"
	"github.com/concave-dev/sqlbatch/internal/script"
	"github.com/concave-dev/sqlbatch/internal/submit"
	"github.com/spf13/cobra"
)

// HandleSubmit loads the script named by the single positional argument and
// submits it batch by batch. Responses are printed to the command's output
// stream, one line per batch.
func HandleSubmit(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	path := args[0]
	sc, err := script.Load(path)
	if err != nil {
		logging.Error("Failed to load script: %v", err)
		return err
	}

	var executor submit.Executor
	if config.Global.DryRun {
		logging.Info("Dry run: payloads for %s will be printed, nothing is sent", path)
		executor = client.DryRunExecutor{Mode: config.Global.PayloadMode}
	} else {
		logging.Info("Submitting %s to %s (mode %s)", path, config.Global.URL, config.Global.PayloadMode)
		executor = client.CreateExecuteClient()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return RunSubmission(ctx, sc, executor, cmd.OutOrStdout())
}

// RunSubmission runs the submission loop for sc with the global options.
// Split out from HandleSubmit so tests can supply an executor and output.
func RunSubmission(ctx context.Context, sc *script.Script, executor submit.Executor, out io.Writer) error {
	printer := display.NewResponsePrinter(out, config.Global.PayloadMode)
	submitter := submit.NewSubmitter(executor, printer, submit.Options{
		StartSequence: config.Global.StartSequence,
		BatchSize:     config.Global.BatchSize,
		GasLimit:      config.Global.GasLimit,
	})

	summary, err := submitter.Run(ctx, sc)
	if err != nil {
		if summary != nil && summary.Batches > 0 {
			logging.Warn("Stopped after %s", display.FormatSummary(summary))
		}
		if netutil.IsConnectionRefusedError(err) {
			logging.Error("TIP: Check that an execute endpoint is listening at %s", config.Global.URL)
			logging.Error("     A local one can be started with: sqlbatchd")
		}
		return fmt.Errorf("submission of %s aborted: %w", sc.Path, err)
	}

	logging.Success("%s", display.FormatSummary(summary))
	return nil
}
