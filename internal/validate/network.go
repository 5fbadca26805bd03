// Package validate provides network validation utilities for sqlbatch, covering
// the endpoint URL the submitter posts to and the bind address the local
// execute endpoint listens on.
//
// Implements URL, IP address, and port validation using the
// go-playground/validator library so malformed input is rejected before a
// script file is opened or a listener is bound.
//
// VALIDATION FEATURES:
//   - Endpoint URL: absolute http/https URL with a host
//   - Bind Address: "host:port" with an IP host and a valid port
//   - Single Fields: arbitrary validator tags through ValidateField
package validate

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// NetworkAddress represents a validated network address with host and port
// components. Uses struct tags for automatic validation via the
// go-playground/validator library.
type NetworkAddress struct {
	Host string `validate:"required,ip"`              // Built-in IP validator
	Port int    `validate:"required,min=0,max=65535"` // Built-in range validator
}

// String returns the network address in standard "host:port" format.
func (na NetworkAddress) String() string {
	return net.JoinHostPort(na.Host, strconv.Itoa(na.Port))
}

// ParseBindAddress parses and validates a "host:port" address string for the
// execute endpoint listener. Checks format, IP address, and port range.
//
// Returns a validated NetworkAddress or an error describing which part of the
// address was rejected.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}

	// Validate using struct tags
	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// EndpointURL is a validated base URL for the execute endpoint.
type EndpointURL struct {
	Raw    string `validate:"required,url"`
	Scheme string `validate:"required,oneof=http https"`
	Host   string `validate:"required"`
}

// ParseEndpointURL parses and validates the base URL requests are sent to.
// The URL must be absolute, use http or https, and name a host. A trailing
// slash is removed so "<base>/v1/execute" never contains a double slash.
//
// Example: ParseEndpointURL("http://127.0.0.1:26650/")
func ParseEndpointURL(raw string) (*EndpointURL, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid url '%s': %w", raw, err)
	}

	endpoint := &EndpointURL{
		Raw:    trimmed,
		Scheme: strings.ToLower(u.Scheme),
		Host:   u.Host,
	}

	if err := validate.Struct(endpoint); err != nil {
		return nil, fmt.Errorf("validation failed for '%s': %w", raw, err)
	}

	return endpoint, nil
}

// ValidateField validates individual values against specified validation rules using
// the go-playground/validator library. Provides flexible validation for single fields
// without requiring struct definitions.
//
// Example: ValidateField(10, "required,min=1")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}
