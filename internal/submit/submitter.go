// Package submit drives the sequential batch submission loop: every batch of a
// script is turned into one execute request, sent, and its response handed to
// a Printer before the next batch is built.
//
// EXECUTION MODEL:
//   - Strictly sequential, one request in flight at a time
//   - Sequence numbers are start, start+1, ... with no gaps
//   - The first failure aborts the run; later batches are never sent
//   - No retry and no progress record: the returned BatchError names the
//     failing batch and sequence so operators can pick a --start-sequence
package submit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/concave-dev/sqlbatch/internal/script"
	"github.com/concave-dev/sqlbatch/internal/wire"
	"github.com/dustin/go-humanize"
)

// Executor sends one execute request and returns the server's response.
// Implementations return an error for transport failures and non-success
// statuses alike.
type Executor interface {
	Execute(ctx context.Context, req wire.ExecuteRequest) (*wire.ExecuteResult, error)
}

// Printer reports the result of one batch, typically as one stdout line.
type Printer interface {
	Print(res *wire.ExecuteResult) error
}

// Options controls how batches are numbered and sized.
type Options struct {
	StartSequence uint64
	BatchSize     int
	GasLimit      uint64
}

// Summary describes a completed run.
type Summary struct {
	Batches  int
	Lines    int
	Bytes    uint64
	Duration time.Duration
	// NextSequence is the sequence the next run should start from.
	NextSequence uint64
}

// BatchError reports the batch a run stopped at.
type BatchError struct {
	Index    int
	Sequence uint64
	Err      error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch %d (sequence %d) failed: %v", e.Index, e.Sequence, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// Submitter sends script batches through an Executor.
type Submitter struct {
	executor Executor
	printer  Printer
	opts     Options
}

// NewSubmitter creates a Submitter. opts.BatchSize must be at least one; opts
// is otherwise used as given, so a zero GasLimit is sent as zero.
func NewSubmitter(executor Executor, printer Printer, opts Options) *Submitter {
	return &Submitter{
		executor: executor,
		printer:  printer,
		opts:     opts,
	}
}

// Request builds the execute request for a batch.
func (s *Submitter) Request(b script.Batch) wire.ExecuteRequest {
	return wire.ExecuteRequest{
		Stmts:    b.Statement(),
		Sequence: s.opts.StartSequence + uint64(b.Index),
		GasLimit: s.opts.GasLimit,
	}
}

// Run submits every batch of sc in order and returns a summary of the batches
// that succeeded. On failure the summary covers the batches before the failing
// one and the error is a *BatchError.
func (s *Submitter) Run(ctx context.Context, sc *script.Script) (*Summary, error) {
	batches, err := sc.Batches(s.opts.BatchSize)
	if err != nil {
		return nil, err
	}

	summary := &Summary{NextSequence: s.opts.StartSequence}
	start := time.Now()
	defer func() { summary.Duration = time.Since(start) }()

	if len(batches) == 0 {
		logging.Warn("Script %s has no lines, nothing to submit", sc.Path)
		return summary, nil
	}

	logging.Info("Submitting %d lines in %d batches of up to %d (sequences %d-%d)",
		sc.Len(), len(batches), s.opts.BatchSize,
		s.opts.StartSequence, s.opts.StartSequence+uint64(len(batches))-1)

	for _, b := range batches {
		req := s.Request(b)

		if err := ctx.Err(); err != nil {
			return summary, s.fail(b, req, err)
		}

		logging.Debug("Batch %d: sequence %d, %d lines, %s",
			b.Index, req.Sequence, b.Len(), humanize.Bytes(uint64(len(req.Stmts))))

		res, err := s.executor.Execute(ctx, req)
		if err != nil {
			return summary, s.fail(b, req, err)
		}

		if err := s.printer.Print(res); err != nil {
			return summary, s.fail(b, req, fmt.Errorf("failed to print response: %w", err))
		}

		summary.Batches++
		summary.Lines += b.Len()
		summary.Bytes += uint64(len(req.Stmts))
		summary.NextSequence = req.Sequence + 1

		logging.Info("Batch %d/%d accepted (sequence %d, status %d)",
			b.Index+1, len(batches), req.Sequence, res.StatusCode)
	}

	return summary, nil
}

// fail logs and wraps the error that stopped the run at batch b.
func (s *Submitter) fail(b script.Batch, req wire.ExecuteRequest, err error) error {
	if errors.Is(err, context.Canceled) {
		logging.Warn("Submission cancelled before batch %d completed", b.Index)
	} else {
		logging.Error("Batch %d (sequence %d) failed: %v", b.Index, req.Sequence, err)
	}
	logging.Error("%d batches accepted before the failure, last good sequence %s",
		b.Index, lastGood(s.opts.StartSequence, b.Index))
	return &BatchError{Index: b.Index, Sequence: req.Sequence, Err: err}
}

// lastGood formats the sequence of the batch before index, or "none".
func lastGood(start uint64, index int) string {
	if index == 0 {
		return "none"
	}
	return fmt.Sprintf("%d", start+uint64(index)-1)
}
