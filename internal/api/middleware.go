package api

import (
	"net/http"

	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/concave-dev/sqlbatch/internal/utils"
	"github.com/concave-dev/sqlbatch/internal/wire"
	"github.com/gin-gonic/gin"
)

// requestIDKey is the gin context key holding the request ID
const requestIDKey = "request_id"

// loggingMiddleware logs one line per request through the shared logger.
// Rejected requests are logged at WARN so they show at the default level.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[requestIDKey].(string)

		if param.StatusCode >= 400 {
			logging.Warn("[%s] %s %s -> %d (%s) from %s %s",
				requestID, param.Method, param.Path, param.StatusCode, param.Latency,
				param.ClientIP, param.Request.UserAgent())
			return ""
		}

		logging.Info("[%s] %s %s -> %d (%s) from %s %s",
			requestID, param.Method, param.Path, param.StatusCode, param.Latency,
			param.ClientIP, param.Request.UserAgent())
		return ""
	})
}

// corsMiddleware allows any origin so browser tools can post scripts directly
func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Accept, Content-Type, "+wire.RequestIDHeader)
		c.Header("Access-Control-Expose-Headers", wire.RequestIDHeader)
		c.Header("Access-Control-Max-Age", "300")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware tags each request with an ID, keeping one supplied by
// the caller, and echoes it in the response header
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(wire.RequestIDHeader)
		if requestID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				logging.Warn("Failed to generate request ID: %v", err)
			}
			requestID = id
		}

		c.Set(requestIDKey, requestID)
		c.Header(wire.RequestIDHeader, requestID)
		c.Next()
	}
}
