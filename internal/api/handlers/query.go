package handlers

import (
	"net/http"

	"github.com/concave-dev/sqlbatch/internal/journal"
	"github.com/concave-dev/sqlbatch/internal/wire"
	"github.com/gin-gonic/gin"
)

// HandleQuery returns the journaled statements containing the raw body text.
// An empty body returns every statement.
func HandleQuery(j *journal.Journal) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := readBody(c)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, wire.QueryResponse{ReturnData: j.Query(string(body))})
	}
}
