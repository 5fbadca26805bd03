// Package journal records the statements accepted by the sqlbatchd execute
// endpoint together with the nonce each submission was accepted under.
//
// The journal owns the endpoint's nonce. Every successful Execute appends the
// submission's statements and advances the nonce by exactly one, so the
// sequence numbers a submitter sends map one-to-one onto journal nonces. A
// single mutex serializes the nonce check, append, and increment.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/concave-dev/sqlbatch/internal/wire"
)

// ErrEmptySubmission is returned when a submission holds no statement text.
var ErrEmptySubmission = errors.New("submission contains no statements")

// SequenceError is returned when a submission's sequence differs from the
// journal nonce.
type SequenceError struct {
	Expected uint64
	Got      uint64
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("sequence mismatch: expected %d, got %d", e.Expected, e.Got)
}

// Journal is an in-memory, append-only statement log.
type Journal struct {
	mu      sync.Mutex
	nonce   uint64
	entries []wire.JournalEntry
}

// New creates a journal whose first accepted submission gets nonce start.
func New(start uint64) *Journal {
	return &Journal{nonce: start}
}

// Nonce returns the nonce the next submission must carry.
func (j *Journal) Nonce() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.nonce
}

// Len returns the number of recorded statements.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Execute records the statements in blob under the current nonce and advances
// the nonce. When sequence is non-nil it must equal the current nonce; on a
// mismatch nothing is recorded and a *SequenceError is returned.
func (j *Journal) Execute(blob string, sequence *uint64) (uint64, []string, error) {
	stmts := SplitStatements(blob)
	if len(stmts) == 0 {
		return 0, nil, ErrEmptySubmission
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if sequence != nil && *sequence != j.nonce {
		return 0, nil, &SequenceError{Expected: j.nonce, Got: *sequence}
	}

	nonce := j.nonce
	for i, stmt := range stmts {
		j.entries = append(j.entries, wire.JournalEntry{
			Nonce:     nonce,
			Position:  i,
			Statement: stmt,
		})
	}
	j.nonce++

	return nonce, stmts, nil
}

// Query returns the recorded statements containing filter, case-insensitively.
// An empty or all-whitespace filter matches every statement.
func (j *Journal) Query(filter string) wire.QueryData {
	needle := strings.ToLower(strings.TrimSpace(filter))

	j.mu.Lock()
	defer j.mu.Unlock()

	matches := make([]wire.JournalEntry, 0)
	for _, entry := range j.entries {
		if needle == "" || strings.Contains(strings.ToLower(entry.Statement), needle) {
			matches = append(matches, entry)
		}
	}

	return wire.QueryData{
		Nonce:   j.nonce,
		Total:   len(j.entries),
		Matches: matches,
	}
}

// SplitStatements removes trailing semicolons and whitespace from blob and
// splits the rest on ';'. Parts are kept as sent, including surrounding
// whitespace, except that whitespace-only parts are dropped. A blob with no
// statement text yields no statements.
func SplitStatements(blob string) []string {
	trimmed := strings.TrimRightFunc(blob, func(r rune) bool {
		return r == ';' || unicode.IsSpace(r)
	})

	var stmts []string
	for _, part := range strings.Split(trimmed, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		stmts = append(stmts, part)
	}
	return stmts
}
