// Package daemon runs the sqlbatchd execute endpoint until it is told to stop.
package daemon

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/concave-dev/sqlbatch/cmd/sqlbatchd/config"
	"github.com/concave-dev/sqlbatch/internal/api"
	configDefaults "github.com/concave-dev/sqlbatch/internal/config"
	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/concave-dev/sqlbatch/internal/netutil"
	"github.com/concave-dev/sqlbatch/internal/version"
)

// buildAPIConfig converts the daemon config into the execute endpoint config
func buildAPIConfig() *api.Config {
	apiConfig := api.DefaultConfig()
	apiConfig.BindAddr = config.Global.BindAddr
	apiConfig.BindPort = config.Global.BindPort
	apiConfig.StartNonce = config.Global.StartNonce
	apiConfig.Version = version.SqlbatchdVersion
	return apiConfig
}

// Run starts the execute endpoint and blocks until ctx is cancelled or the
// process receives SIGINT/SIGTERM, then shuts the endpoint down within
// DefaultShutdownTimeout. In-flight submissions finish before Run returns.
func Run(ctx context.Context) error {
	logging.Info("Starting sqlbatchd v%s", version.SqlbatchdVersion)

	apiConfig := buildAPIConfig()
	if err := apiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid endpoint config: %w", err)
	}

	server := api.NewServer(apiConfig)
	if err := server.Start(); err != nil {
		logging.Error("Failed to start execute endpoint: %v", err)
		if netutil.IsAddressInUseError(err) {
			logging.Error("TIP: Another process is listening on %s:%d", apiConfig.BindAddr, apiConfig.BindPort)
			logging.Error("     Stop it or pick another address with --bind")
		}
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info("Daemon running... Press Ctrl+C to shutdown")
	<-ctx.Done()
	logging.Info("Initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configDefaults.DefaultShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("Error shutting down execute endpoint: %v", err)
		return err
	}

	logging.Success("sqlbatchd shutdown completed (%d statements journaled, next nonce %d)",
		server.Journal().Len(), server.Journal().Nonce())
	return nil
}
