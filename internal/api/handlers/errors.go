// Package handlers provides the gin handlers behind the sqlbatchd routes.
//
// Rejected requests always answer with a wire.ErrorMessage JSON body so the
// submitter can print the reason verbatim.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/concave-dev/sqlbatch/internal/wire"
	"github.com/gin-gonic/gin"
)

// respondError aborts the request with a JSON error body
func respondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, wire.ErrorMessage{Code: code, Message: message})
}

// HandleNotFound answers unknown routes
func HandleNotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Not Found")
}

// readBody reads the request body up to wire.MaxBodyLength. It writes the
// error response itself and returns ok=false when the body was rejected.
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, wire.MaxBodyLength))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(c, http.StatusRequestEntityTooLarge, "Payload too large")
			return nil, false
		}
		logging.Error("Failed to read request body: %v", err)
		respondError(c, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}
	return body, true
}
