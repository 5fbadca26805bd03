package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/concave-dev/sqlbatch/internal/wire"
)

// capturedRequest records what the test server received
type capturedRequest struct {
	method      string
	path        string
	contentType string
	body        string
}

// newTestServer returns a server that records requests and replies with status and body
func newTestServer(t *testing.T, status int, body string, captured *[]capturedRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		*captured = append(*captured, capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        string(data),
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// TestExecuteJSON tests the JSON payload mode
func TestExecuteJSON(t *testing.T) {
	var captured []capturedRequest
	server := newTestServer(t, http.StatusOK, `{"response":{"nonce":7}}`, &captured)

	api := NewExecuteClient(server.URL, wire.ModeJSON, 5*time.Second)
	res, err := api.Execute(context.Background(), wire.ExecuteRequest{
		Stmts:    "CREATE TABLE t (id INT);",
		Sequence: 7,
		GasLimit: wire.DefaultGasLimit,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(captured) != 1 {
		t.Fatalf("server received %d requests, want 1", len(captured))
	}
	req := captured[0]
	if req.method != http.MethodPost || req.path != "/v1/execute" {
		t.Errorf("request = %s %s, want POST /v1/execute", req.method, req.path)
	}
	if !strings.HasPrefix(req.contentType, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", req.contentType)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(req.body), &body); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if body["stmts"] != "CREATE TABLE t (id INT);" || body["sequence"] != float64(7) || body["gas_limit"] != float64(wire.DefaultGasLimit) {
		t.Errorf("request body = %v", body)
	}

	decoded, ok := res.JSON.(map[string]any)
	if !ok {
		t.Fatalf("res.JSON type = %T, want map", res.JSON)
	}
	if _, ok := decoded["response"]; !ok {
		t.Errorf("res.JSON = %v, want response key", decoded)
	}
}

// TestExecuteRaw tests the raw text payload mode
func TestExecuteRaw(t *testing.T) {
	var captured []capturedRequest
	server := newTestServer(t, http.StatusOK, "accepted\n", &captured)

	api := NewExecuteClient(server.URL, wire.ModeRaw, 0)
	res, err := api.Execute(context.Background(), wire.ExecuteRequest{Stmts: "DROP TABLE t;", Sequence: 1})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if captured[0].body != "DROP TABLE t;" {
		t.Errorf("request body = %q, want raw statements", captured[0].body)
	}
	if !strings.HasPrefix(captured[0].contentType, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", captured[0].contentType)
	}
	if string(res.Body) != "accepted\n" || res.JSON != nil {
		t.Errorf("result = %+v, want verbatim body and no JSON", res)
	}
}

// TestExecuteBaseURLWithPath tests that a path prefix on the base URL is kept
func TestExecuteBaseURLWithPath(t *testing.T) {
	var captured []capturedRequest
	server := newTestServer(t, http.StatusOK, `{}`, &captured)

	api := NewExecuteClient(server.URL+"/proxy", wire.ModeJSON, 0)
	if _, err := api.Execute(context.Background(), wire.ExecuteRequest{}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if captured[0].path != "/proxy/v1/execute" {
		t.Errorf("path = %q, want /proxy/v1/execute", captured[0].path)
	}
}

// TestExecuteStatusError tests that non-2xx statuses fail without retry
func TestExecuteStatusError(t *testing.T) {
	var captured []capturedRequest
	server := newTestServer(t, http.StatusInternalServerError, `{"code":500,"message":"boom"}`, &captured)

	api := NewExecuteClient(server.URL, wire.ModeJSON, 0)
	_, err := api.Execute(context.Background(), wire.ExecuteRequest{Sequence: 3})
	if err == nil {
		t.Fatal("Execute() expected error for status 500")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error type = %T, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError || !strings.Contains(statusErr.Body, "boom") {
		t.Errorf("StatusError = %+v", statusErr)
	}
	if len(captured) != 1 {
		t.Errorf("server received %d requests, want exactly 1 (no retry)", len(captured))
	}
}

// TestExecuteInvalidJSONResponse tests that an undecodable JSON response fails
func TestExecuteInvalidJSONResponse(t *testing.T) {
	var captured []capturedRequest
	server := newTestServer(t, http.StatusOK, "not json", &captured)

	api := NewExecuteClient(server.URL, wire.ModeJSON, 0)
	if _, err := api.Execute(context.Background(), wire.ExecuteRequest{}); err == nil {
		t.Error("Execute() expected error for non-JSON response")
	}
}

// TestExecuteConnectionRefused tests transport failures
func TestExecuteConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	api := NewExecuteClient(url, wire.ModeJSON, time.Second)
	if _, err := api.Execute(context.Background(), wire.ExecuteRequest{}); err == nil {
		t.Error("Execute() expected error for closed server")
	}
}

// TestDryRunExecutor tests payload rendering without a server
func TestDryRunExecutor(t *testing.T) {
	req := wire.ExecuteRequest{Stmts: "SELECT 1;", Sequence: 2, GasLimit: 9}

	res, err := DryRunExecutor{Mode: wire.ModeJSON}.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if string(res.Body) != `{"stmts":"SELECT 1;","sequence":2,"gas_limit":9}` {
		t.Errorf("json body = %s", res.Body)
	}
	if res.JSON == nil {
		t.Error("json mode should populate JSON")
	}

	res, err = DryRunExecutor{Mode: wire.ModeRaw}.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if string(res.Body) != "SELECT 1;" || res.JSON != nil {
		t.Errorf("raw result = %+v", res)
	}
}
