// Package script loads SQL script files and partitions them into batches for
// sequential submission to an execute endpoint.
//
// A script is held fully in memory as an ordered, immutable list of lines.
// Batching is purely positional: line i belongs to batch floor(i / size). It
// never looks at statement boundaries, so statements must already carry their
// own terminators (for example a trailing semicolon) in the source file. Lines
// are joined with no separator, which keeps a statement that straddles a batch
// boundary intact only when both halves end up in the same request.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"
)

// ErrNotFound is returned by Load when the script path does not exist.
var ErrNotFound = errors.New("script file not found")

// Script is an ordered list of lines read from a file.
type Script struct {
	Path  string
	lines []string
}

// Batch is a contiguous, positionally grouped run of script lines.
type Batch struct {
	Index int
	Lines []string
}

// Load reads the file at path fully into memory. Each line keeps its original
// terminator; a final line without a newline still counts as a line and an
// empty file yields zero lines.
//
// Missing files return an error wrapping ErrNotFound; any other open or read
// failure is returned wrapped with the path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open script %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}

	return &Script{Path: path, lines: lines}, nil
}

// ReadLines splits r into lines, keeping terminators. bufio.Reader is used
// instead of bufio.Scanner so single lines larger than the scanner token
// limit (large INSERT blobs) are read without error.
func ReadLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// FromLines builds a Script from lines already in memory. The slice is copied.
func FromLines(lines []string) *Script {
	return &Script{lines: append([]string(nil), lines...)}
}

// Len returns the number of lines in the script.
func (s *Script) Len() int {
	return len(s.lines)
}

// Lines returns a copy of the script lines.
func (s *Script) Lines() []string {
	return append([]string(nil), s.lines...)
}

// BatchCount returns ceil(Len / size). size must be at least one.
func (s *Script) BatchCount(size int) int {
	if size < 1 {
		return 0
	}
	return (len(s.lines) + size - 1) / size
}

// Batches partitions the script into consecutive batches of size lines; the
// last batch may be shorter. A size below one returns an error rather than
// looping forever.
func (s *Script) Batches(size int) ([]Batch, error) {
	if size < 1 {
		return nil, fmt.Errorf("batch size must be at least 1, got: %d", size)
	}

	batches := make([]Batch, 0, s.BatchCount(size))
	for start := 0; start < len(s.lines); start += size {
		end := min(start+size, len(s.lines))
		batches = append(batches, Batch{
			Index: start / size,
			Lines: s.lines[start:end],
		})
	}
	return batches, nil
}

// Statement concatenates the batch lines into one statement blob. Trailing
// whitespace (including the newline) is removed from every line and no
// separator is inserted between lines.
func (b Batch) Statement() string {
	var sb strings.Builder
	for _, line := range b.Lines {
		sb.WriteString(TrimLine(line))
	}
	return sb.String()
}

// Len returns the number of lines in the batch.
func (b Batch) Len() int {
	return len(b.Lines)
}

// TrimLine removes trailing whitespace from a single line.
func TrimLine(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
