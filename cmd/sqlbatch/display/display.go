// Package display provides output formatting for the sqlbatch CLI.
//
// Stdout carries exactly one line per accepted batch, in submission order, so
// the output can be piped or diffed. JSON responses are re-encoded compactly
// on a single line; raw responses are written verbatim with their trailing
// newline trimmed. Everything else (progress, summaries, errors) goes through
// the logging package to stderr.
package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/concave-dev/sqlbatch/internal/submit"
	"github.com/concave-dev/sqlbatch/internal/wire"
	"github.com/dustin/go-humanize"
)

// ResponsePrinter writes one line per batch response.
type ResponsePrinter struct {
	mu   sync.Mutex
	out  io.Writer
	mode wire.Mode
}

// NewResponsePrinter creates a printer writing to out in the given payload mode.
func NewResponsePrinter(out io.Writer, mode wire.Mode) *ResponsePrinter {
	return &ResponsePrinter{out: out, mode: mode}
}

// Print implements submit.Printer.
func (p *ResponsePrinter) Print(res *wire.ExecuteResult) error {
	line, err := FormatResponse(res, p.mode)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	_, err = fmt.Fprintln(p.out, line)
	return err
}

// FormatResponse renders a response as a single output line.
func FormatResponse(res *wire.ExecuteResult, mode wire.Mode) (string, error) {
	if mode == wire.ModeRaw || res.JSON == nil {
		return strings.TrimRight(string(res.Body), "\r\n"), nil
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(res.JSON); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// FormatSummary renders a run summary for the final log line.
func FormatSummary(s *submit.Summary) string {
	return fmt.Sprintf("Submitted %d batches (%d lines, %s) in %s, next sequence %d",
		s.Batches, s.Lines, humanize.Bytes(s.Bytes), s.Duration.Round(time.Millisecond), s.NextSequence)
}
