// Package client provides the HTTP client the sqlbatch CLI uses to submit
// batches to an execute endpoint.
//
// This package wraps the Resty HTTP client with the execute wire contract:
// request encoding for both payload modes, status handling, and structured
// logging of every round trip.
//
// PAYLOAD MODES:
//   - json: body is {"stmts","sequence","gas_limit"}; the response body is
//     decoded as JSON
//   - raw: body is the statement blob sent as text/plain; the response body is
//     kept verbatim
//
// FAULT HANDLING:
// Retries are disabled. Each request carries a sequence number the server
// checks against its nonce, so resending a request the server may already
// have applied could double-apply it or be rejected. Any transport error or
// non-2xx status is returned to the caller, which aborts the run.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/concave-dev/sqlbatch/cmd/sqlbatch/config"
	"github.com/concave-dev/sqlbatch/cmd/sqlbatch/utils"
	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/concave-dev/sqlbatch/internal/wire"
	"github.com/go-resty/resty/v2"
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("execute request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("execute request failed with status %d: %s", e.StatusCode, e.Body)
}

// ExecuteClient submits execute requests to one endpoint.
type ExecuteClient struct {
	client  *resty.Client
	baseURL string
	mode    wire.Mode
}

// NewExecuteClient creates a client for the endpoint at baseURL. baseURL must
// already be validated and free of a trailing slash. A timeout of zero means
// requests never time out on their own; cancellation still works through the
// request context.
func NewExecuteClient(baseURL string, mode wire.Mode, timeout time.Duration) *ExecuteClient {
	client := resty.New()

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	client.
		SetBaseURL(baseURL).
		SetHeader("User-Agent", fmt.Sprintf("sqlbatch/%s", config.Version)).
		SetRetryCount(0)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making execute request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Execute response: %d %s (request %s, took %v)",
			resp.StatusCode(), resp.Status(), resp.Header().Get(wire.RequestIDHeader), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("Execute request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &ExecuteClient{
		client:  client,
		baseURL: baseURL,
		mode:    mode,
	}
}

// CreateExecuteClient creates an ExecuteClient from the global configuration.
func CreateExecuteClient() *ExecuteClient {
	return NewExecuteClient(config.Global.URL, config.Global.PayloadMode,
		time.Duration(config.Global.Timeout)*time.Second)
}

// Mode returns the payload mode the client encodes requests with.
func (api *ExecuteClient) Mode() wire.Mode {
	return api.mode
}

// Execute posts one batch to /v1/execute and returns the response. The
// request body follows the client's payload mode.
func (api *ExecuteClient) Execute(ctx context.Context, req wire.ExecuteRequest) (*wire.ExecuteResult, error) {
	r := api.client.R().SetContext(ctx)

	switch api.mode {
	case wire.ModeRaw:
		r.SetHeader("Content-Type", "text/plain; charset=utf-8").
			SetHeader("Accept", "*/*").
			SetBody(req.Stmts)
	default:
		r.SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetBody(req)
	}

	resp, err := r.Post(wire.ExecutePath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to execute endpoint at %s: %w", api.baseURL, err)
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.String(),
		}
	}

	result := &wire.ExecuteResult{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}

	if api.mode == wire.ModeJSON {
		decoded, err := decodeJSON(result.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode execute response as JSON: %w", err)
		}
		result.JSON = decoded
	}

	return result, nil
}

// DryRunExecutor renders requests without sending them. The rendered payload
// is returned as the response body so the normal printer shows exactly what
// would have been posted.
type DryRunExecutor struct {
	Mode wire.Mode
}

// Execute implements submit.Executor.
func (d DryRunExecutor) Execute(_ context.Context, req wire.ExecuteRequest) (*wire.ExecuteResult, error) {
	if d.Mode == wire.ModeRaw {
		return &wire.ExecuteResult{StatusCode: 0, Body: []byte(req.Stmts)}, nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	decoded, err := decodeJSON(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}

	return &wire.ExecuteResult{StatusCode: 0, Body: body, JSON: decoded}, nil
}

// decodeJSON decodes one JSON value, keeping numbers as json.Number so large
// sequence and gas values are printed back exactly.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}
