// Package netutil classifies network errors for the submitter and the
// execute endpoint.
//
// Classification uses error types and syscall constants instead of message
// matching, so it holds across operating systems and Go versions. Callers use
// it to attach an operator hint to an otherwise opaque dial or bind failure.
package netutil

import (
	"errors"
	"net"
	"syscall"
)

// IsAddressInUseError checks if an error indicates "address already in use".
// sqlbatchd uses it to point at a second instance holding the port.
func IsAddressInUseError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.EADDRINUSE)
	}
	return false
}

// IsConnectionRefusedError checks if an error indicates "connection refused".
// The submitter uses it to suggest that no endpoint is listening at --url.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return errors.Is(err, syscall.ECONNREFUSED)
}
