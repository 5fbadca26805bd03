// Package api provides the HTTP execute endpoint served by sqlbatchd.
// It speaks the same wire contract the submitter posts to, journaling every
// accepted submission in memory instead of executing it.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/concave-dev/sqlbatch/internal/api/handlers"
	"github.com/concave-dev/sqlbatch/internal/journal"
	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/gin-gonic/gin"
)

// Represents the sqlbatchd execute endpoint
type Server struct {
	journal    *journal.Journal
	httpServer *http.Server
	bindAddr   string
	bindPort   int
	version    string
	startTime  time.Time

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a new execute endpoint instance
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		journal:   journal.New(config.StartNonce),
		bindAddr:  config.BindAddr,
		bindPort:  config.BindPort,
		version:   config.Version,
		startTime: time.Now(),
	}
}

// Journal returns the statement journal backing the endpoint
func (s *Server) Journal() *journal.Journal {
	return s.journal
}

// Router builds the Gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// Configure Gin logging only if not already configured by CLI tools
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	router.Use(s.loggingMiddleware())
	router.Use(s.requestIDMiddleware())
	router.Use(s.corsMiddleware())
	router.Use(gin.Recovery())

	s.setupRoutes(router)
	return router
}

// Start binds the listener and serves in the background. Binding happens
// before Start returns so address errors surface immediately.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.bindAddr, strconv.Itoa(s.bindPort))
	logging.Info("Starting execute endpoint on %s", addr)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", addr, err)
	}

	s.httpServer = &http.Server{
		Handler: s.Router(),
		// Large scripts can take a while to upload, so only the header read is bounded
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("Execute endpoint started at http://%s (nonce %d)", listener.Addr(), s.journal.Nonce())
	return nil
}

// Addr returns the bound address, or "" before Start
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down execute endpoint...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// getHandlerHealth is a health endpoint handler factory
func (s *Server) getHandlerHealth() gin.HandlerFunc {
	return handlers.HandleHealth(s.version, s.startTime, s.journal)
}

// getHandlerExecute is an execute endpoint handler factory
func (s *Server) getHandlerExecute() gin.HandlerFunc {
	return handlers.HandleExecute(s.journal)
}

// getHandlerQuery is a query endpoint handler factory
func (s *Server) getHandlerQuery() gin.HandlerFunc {
	return handlers.HandleQuery(s.journal)
}
