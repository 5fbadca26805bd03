package handlers

import (
	"net/http"
	"time"

	"github.com/concave-dev/sqlbatch/internal/journal"
	"github.com/gin-gonic/gin"
)

// Represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Nonce     uint64    `json:"nonce"`
}

// HandleHealth returns the health status of the execute endpoint along with
// the nonce the next submission must carry
func HandleHealth(version string, startTime time.Time, j *journal.Journal) gin.HandlerFunc {
	return func(c *gin.Context) {
		uptime := time.Since(startTime)

		response := HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    uptime.Round(time.Second).String(),
			Nonce:     j.Nonce(),
		}

		c.JSON(http.StatusOK, response)
	}
}
