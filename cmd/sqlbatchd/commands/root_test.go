package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/concave-dev/sqlbatch/cmd/sqlbatchd/config"
	"github.com/concave-dev/sqlbatch/internal/logging"
)

// TestSetupFlags tests flag registration and defaults
func TestSetupFlags(t *testing.T) {
	SetupCommands()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "bind", defValue: config.DefaultBind},
		{name: "sequence", shorthand: "n", defValue: "0"},
		{name: "log-level", defValue: config.DefaultLogLevel},
		{name: "log-file", defValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := RootCmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("flag --%s not registered", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("--%s shorthand = %q, want %q", tt.name, flag.Shorthand, tt.shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("--%s default = %q, want %q", tt.name, flag.DefValue, tt.defValue)
			}
		})
	}
}

// TestOpenLogFile tests log redirection into a nested path
func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sqlbatchd.log")
	t.Cleanup(func() {
		CleanupLogFile()
		logging.RestoreOutput()
	})

	if err := openLogFile(path); err != nil {
		t.Fatalf("openLogFile() error = %v", err)
	}

	logging.SetLevel("INFO")
	logging.Info("journal ready")
	CleanupLogFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
	if logFileHandle != nil {
		t.Error("CleanupLogFile() left the handle set")
	}
}
