// Package utils provides common utility functions for sqlbatch.
//
// This file implements request ID generation. The execute endpoint tags every
// request with an ID, echoes it in the X-Request-ID response header, and logs
// it with the request line, so a submitter's debug log can be matched to the
// endpoint's log for the same batch.
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateID creates a unique 12-character hex identifier using crypto/rand.
//
// Returns format: "a1b2c3d4e5f6" (12 hex characters, similar to Docker short IDs)
func GenerateID() (string, error) {
	// Generate 6 bytes of random data (12 hex characters)
	bytes := make([]byte, 6)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
