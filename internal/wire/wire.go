// Package wire defines the HTTP contract shared by the sqlbatch submitter and
// the sqlbatchd execute endpoint.
//
// ROUTES:
//   - POST /v1/execute: submit one statement blob, either as an
//     ExecuteRequest JSON body or as a raw text body
//   - POST /v1/query: raw text filter over executed statements
//   - GET  /health: liveness and current nonce
//
// Both sides import these types so a field rename cannot drift between the
// client and the server.
package wire

import "fmt"

const (
	// ExecutePath is the route a batch is submitted to.
	ExecutePath = "/v1/execute"
	// QueryPath is the read-only statement lookup route.
	QueryPath = "/v1/query"
	// HealthPath is the liveness route.
	HealthPath = "/health"

	// RequestIDHeader carries the ID the endpoint assigned to a request.
	RequestIDHeader = "X-Request-ID"

	// MaxBodyLength caps request bodies accepted by the execute endpoint (100 MiB).
	MaxBodyLength = 100 * 1024 * 1024

	// DefaultGasLimit is the gas limit sent when none is given.
	DefaultGasLimit uint64 = 10_000_000_000
)

// Mode selects how a batch is encoded on the wire.
type Mode string

const (
	// ModeJSON sends an ExecuteRequest JSON body and decodes the response as JSON.
	ModeJSON Mode = "json"
	// ModeRaw sends the statement blob as a text body and prints the response verbatim.
	ModeRaw Mode = "raw"
)

// ParseMode converts a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeJSON, ModeRaw:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode '%s' - valid: json, raw", s)
	}
}

// ExecuteRequest is the JSON body of POST /v1/execute.
type ExecuteRequest struct {
	Stmts    string `json:"stmts"`
	Sequence uint64 `json:"sequence"`
	GasLimit uint64 `json:"gas_limit"`
}

// ExecuteResult is what the submitter keeps from one execute round trip.
type ExecuteResult struct {
	StatusCode int
	Body       []byte
	// JSON holds the decoded body in ModeJSON and is nil in ModeRaw.
	JSON any
}

// ErrorMessage is the body returned by the execute endpoint for rejected requests.
type ErrorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ExecuteResponse is the success body of POST /v1/execute.
type ExecuteResponse struct {
	Response   ExecuteReceipt `json:"response"`
	ReturnData ExecuteEffects `json:"return_data"`
}

// ExecuteReceipt describes how the endpoint accepted a submission.
type ExecuteReceipt struct {
	Nonce      uint64 `json:"nonce"`
	Statements int    `json:"statements"`
	GasLimit   uint64 `json:"gas_limit"`
}

// ExecuteEffects lists the statements recorded for a submission.
type ExecuteEffects struct {
	Effects []string `json:"effects"`
}

// QueryResponse is the success body of POST /v1/query.
type QueryResponse struct {
	ReturnData QueryData `json:"return_data"`
}

// QueryData carries the statements matching a query filter.
type QueryData struct {
	Nonce   uint64         `json:"nonce"`
	Total   int            `json:"total"`
	Matches []JournalEntry `json:"matches"`
}

// JournalEntry is one recorded statement.
type JournalEntry struct {
	Nonce     uint64 `json:"nonce"`
	Position  int    `json:"position"`
	Statement string `json:"statement"`
}
