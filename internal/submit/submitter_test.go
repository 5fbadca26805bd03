package submit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/concave-dev/sqlbatch/internal/script"
	"github.com/concave-dev/sqlbatch/internal/wire"
)

// fakeExecutor records requests and fails on a chosen call
type fakeExecutor struct {
	requests []wire.ExecuteRequest
	failOn   int // 1-based call number that fails; 0 never fails
}

func (f *fakeExecutor) Execute(_ context.Context, req wire.ExecuteRequest) (*wire.ExecuteResult, error) {
	f.requests = append(f.requests, req)
	if f.failOn == len(f.requests) {
		return nil, errors.New("status 500")
	}
	return &wire.ExecuteResult{StatusCode: 200, Body: []byte(fmt.Sprintf("ok %d", req.Sequence))}, nil
}

// recordingPrinter keeps every printed body
type recordingPrinter struct {
	lines []string
}

func (p *recordingPrinter) Print(res *wire.ExecuteResult) error {
	p.lines = append(p.lines, string(res.Body))
	return nil
}

// failingPrinter always returns an error
type failingPrinter struct{}

func (failingPrinter) Print(*wire.ExecuteResult) error {
	return errors.New("stdout closed")
}

// newScript builds a script of n terminated statements
func newScript(n int) *script.Script {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("INSERT INTO t VALUES (%d);  \n", i)
	}
	return script.FromLines(lines)
}

// TestRunSequences tests batch counts and gap-free sequence numbers
func TestRunSequences(t *testing.T) {
	tests := []struct {
		name          string
		lines         int
		batchSize     int
		startSequence uint64
		expectedSizes []int
	}{
		{name: "25 lines by 10", lines: 25, batchSize: 10, startSequence: 0, expectedSizes: []int{10, 10, 5}},
		{name: "offset start", lines: 4, batchSize: 2, startSequence: 41, expectedSizes: []int{2, 2}},
		{name: "single batch", lines: 3, batchSize: 10, startSequence: 5, expectedSizes: []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{}
			printer := &recordingPrinter{}
			sub := NewSubmitter(exec, printer, Options{
				StartSequence: tt.startSequence,
				BatchSize:     tt.batchSize,
				GasLimit:      wire.DefaultGasLimit,
			})

			summary, err := sub.Run(context.Background(), newScript(tt.lines))
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if len(exec.requests) != len(tt.expectedSizes) {
				t.Fatalf("sent %d requests, want %d", len(exec.requests), len(tt.expectedSizes))
			}

			for i, req := range exec.requests {
				if req.Sequence != tt.startSequence+uint64(i) {
					t.Errorf("request %d sequence = %d, want %d", i, req.Sequence, tt.startSequence+uint64(i))
				}
				if req.GasLimit != wire.DefaultGasLimit {
					t.Errorf("request %d gas limit = %d", i, req.GasLimit)
				}
			}

			if len(printer.lines) != len(tt.expectedSizes) {
				t.Errorf("printed %d lines, want %d", len(printer.lines), len(tt.expectedSizes))
			}
			if summary.Batches != len(tt.expectedSizes) || summary.Lines != tt.lines {
				t.Errorf("summary = %+v", summary)
			}
			if summary.NextSequence != tt.startSequence+uint64(len(tt.expectedSizes)) {
				t.Errorf("NextSequence = %d", summary.NextSequence)
			}
		})
	}
}

// TestRunStatementContent tests that each request carries its batch's trimmed lines
func TestRunStatementContent(t *testing.T) {
	exec := &fakeExecutor{}
	sub := NewSubmitter(exec, &recordingPrinter{}, Options{BatchSize: 2, GasLimit: 1})

	sc := script.FromLines([]string{"CREATE TABLE t (\n", "id INT);\n", "DROP TABLE t;"})
	if _, err := sub.Run(context.Background(), sc); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	expected := []string{"CREATE TABLE t (id INT);", "DROP TABLE t;"}
	for i, want := range expected {
		if exec.requests[i].Stmts != want {
			t.Errorf("request %d stmts = %q, want %q", i, exec.requests[i].Stmts, want)
		}
	}
}

// TestRunEmptyScript tests that an empty script sends nothing
func TestRunEmptyScript(t *testing.T) {
	exec := &fakeExecutor{}
	printer := &recordingPrinter{}
	sub := NewSubmitter(exec, printer, Options{BatchSize: 10})

	summary, err := sub.Run(context.Background(), newScript(0))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(exec.requests) != 0 || len(printer.lines) != 0 {
		t.Errorf("empty script sent %d requests", len(exec.requests))
	}
	if summary.Batches != 0 {
		t.Errorf("summary.Batches = %d, want 0", summary.Batches)
	}
}

// TestRunAbortsOnFailure tests that a failing batch stops the run
func TestRunAbortsOnFailure(t *testing.T) {
	exec := &fakeExecutor{failOn: 2}
	printer := &recordingPrinter{}
	sub := NewSubmitter(exec, printer, Options{StartSequence: 100, BatchSize: 10})

	summary, err := sub.Run(context.Background(), newScript(25))
	if err == nil {
		t.Fatal("Run() expected error")
	}

	var batchErr *BatchError
	if !errors.As(err, &batchErr) {
		t.Fatalf("Run() error type = %T, want *BatchError", err)
	}
	if batchErr.Index != 1 || batchErr.Sequence != 101 {
		t.Errorf("BatchError = %+v, want index 1 sequence 101", batchErr)
	}

	if len(exec.requests) != 2 {
		t.Errorf("sent %d requests, want 2 (third batch must not be sent)", len(exec.requests))
	}
	if len(printer.lines) != 1 || printer.lines[0] != "ok 100" {
		t.Errorf("printed %v, want only the first batch", printer.lines)
	}
	if summary.Batches != 1 || summary.NextSequence != 101 {
		t.Errorf("summary = %+v", summary)
	}
}

// TestRunPrinterFailure tests that a print failure aborts the run
func TestRunPrinterFailure(t *testing.T) {
	exec := &fakeExecutor{}
	sub := NewSubmitter(exec, failingPrinter{}, Options{BatchSize: 1})

	if _, err := sub.Run(context.Background(), newScript(3)); err == nil {
		t.Fatal("Run() expected error")
	}
	if len(exec.requests) != 1 {
		t.Errorf("sent %d requests, want 1", len(exec.requests))
	}
}

// TestRunCancelled tests that a cancelled context sends nothing
func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExecutor{}
	sub := NewSubmitter(exec, &recordingPrinter{}, Options{BatchSize: 1})

	_, err := sub.Run(ctx, newScript(3))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(exec.requests) != 0 {
		t.Errorf("sent %d requests after cancel", len(exec.requests))
	}
}

// TestRunInvalidBatchSize tests that a zero batch size is rejected
func TestRunInvalidBatchSize(t *testing.T) {
	sub := NewSubmitter(&fakeExecutor{}, &recordingPrinter{}, Options{BatchSize: 0})
	if _, err := sub.Run(context.Background(), newScript(3)); err == nil {
		t.Error("Run() expected error for batch size 0")
	}
}
