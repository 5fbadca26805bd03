package api

import (
	"github.com/concave-dev/sqlbatch/internal/api/handlers"
	"github.com/concave-dev/sqlbatch/internal/wire"
	"github.com/gin-gonic/gin"
)

// Configures all execute endpoint routes
func (s *Server) setupRoutes(router *gin.Engine) {
	router.GET(wire.HealthPath, s.getHandlerHealth())

	router.POST(wire.ExecutePath, s.getHandlerExecute())
	router.POST(wire.QueryPath, s.getHandlerQuery())

	router.NoRoute(handlers.HandleNotFound)
}
