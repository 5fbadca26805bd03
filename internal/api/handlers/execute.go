package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/concave-dev/sqlbatch/internal/journal"
	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/concave-dev/sqlbatch/internal/wire"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// executeBody mirrors wire.ExecuteRequest with an optional sequence so a JSON
// body without one is accepted under the current nonce
type executeBody struct {
	Stmts    string  `json:"stmts"`
	Sequence *uint64 `json:"sequence"`
	GasLimit uint64  `json:"gas_limit"`
}

// HandleExecute accepts one submission. JSON bodies are decoded as
// {"stmts","sequence","gas_limit"} and their sequence is checked against the
// journal nonce; any other content type is taken as the raw statement text.
func HandleExecute(j *journal.Journal) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := readBody(c)
		if !ok {
			return
		}

		var req executeBody
		if strings.HasPrefix(c.ContentType(), "application/json") {
			if err := json.Unmarshal(body, &req); err != nil {
				respondError(c, http.StatusBadRequest, fmt.Sprintf("execute error: invalid JSON body: %v", err))
				return
			}
		} else {
			req.Stmts = string(body)
		}

		nonce, stmts, err := j.Execute(req.Stmts, req.Sequence)
		if err != nil {
			var seqErr *journal.SequenceError
			switch {
			case errors.As(err, &seqErr):
				logging.Warn("Rejected submission: %v", seqErr)
			case errors.Is(err, journal.ErrEmptySubmission):
				logging.Warn("Rejected empty submission")
			default:
				logging.Error("Execute failed: %v", err)
			}
			respondError(c, http.StatusBadRequest, fmt.Sprintf("execute error: %v", err))
			return
		}

		logging.Info("nonce: %d (%d statements, %s)", nonce, len(stmts), humanize.Bytes(uint64(len(req.Stmts))))

		c.JSON(http.StatusOK, wire.ExecuteResponse{
			Response: wire.ExecuteReceipt{
				Nonce:      nonce,
				Statements: len(stmts),
				GasLimit:   req.GasLimit,
			},
			ReturnData: wire.ExecuteEffects{Effects: stmts},
		})
	}
}
