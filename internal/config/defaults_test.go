package config

import (
	"net"
	"strconv"
	"testing"

	"github.com/concave-dev/sqlbatch/internal/logging"
)

// TestDefaultBindAddrIsLoopback validates that the default bind address is a loopback IP
func TestDefaultBindAddrIsLoopback(t *testing.T) {
	ip := net.ParseIP(DefaultBindAddr)
	if ip == nil {
		t.Fatalf("DefaultBindAddr %q is not a valid IP", DefaultBindAddr)
	}
	if !ip.IsLoopback() {
		t.Errorf("DefaultBindAddr %q is not a loopback address", DefaultBindAddr)
	}
}

// TestDefaultAddressFormat validates that the defaults join into a usable address
func TestDefaultAddressFormat(t *testing.T) {
	addr := net.JoinHostPort(DefaultBindAddr, strconv.Itoa(DefaultPort))
	if addr != "127.0.0.1:26650" {
		t.Errorf("default address = %q, want %q", addr, "127.0.0.1:26650")
	}

	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		t.Errorf("default address %q cannot be resolved: %v", addr, err)
	}
}

// TestDefaultDaemonLogLevel validates the default log level
func TestDefaultDaemonLogLevel(t *testing.T) {
	if err := logging.ValidateLogLevel(DefaultDaemonLogLevel); err != nil {
		t.Errorf("DefaultDaemonLogLevel %q is invalid: %v", DefaultDaemonLogLevel, err)
	}
}

// TestDefaultShutdownTimeout validates the shutdown deadline
func TestDefaultShutdownTimeout(t *testing.T) {
	if DefaultShutdownTimeout <= 0 {
		t.Errorf("DefaultShutdownTimeout = %v, want positive", DefaultShutdownTimeout)
	}
}
