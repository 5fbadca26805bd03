// Package config provides configuration management for the sqlbatch CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/concave-dev/sqlbatch/internal/logging"
	"github.com/concave-dev/sqlbatch/internal/validate"
	"github.com/concave-dev/sqlbatch/internal/wire"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all flags before the script file is opened
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateURL(); err != nil {
		return err
	}

	if err := ValidateBatchSize(); err != nil {
		return err
	}

	if err := ValidateMode(); err != nil {
		return err
	}

	if err := validate.ValidateNonNegativeInt(Global.Timeout, "timeout"); err != nil {
		logging.Error("Invalid timeout %d: %v", Global.Timeout, err)
		return err
	}

	Global.LogLevel = strings.ToUpper(Global.LogLevel)
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	return nil
}

// ValidateURL validates the --url flag and normalizes it
func ValidateURL() error {
	endpoint, err := validate.ParseEndpointURL(Global.URL)
	if err != nil {
		logging.Error("Invalid URL '%s': %v", Global.URL, err)
		return fmt.Errorf("invalid url - expected format: http://host:port (e.g., %s)", DefaultURL)
	}

	Global.URL = endpoint.Raw
	return nil
}

// ValidateBatchSize validates the --batch-size flag
func ValidateBatchSize() error {
	if err := validate.ValidatePositiveInt(Global.BatchSize, "batch size"); err != nil {
		logging.Error("Invalid batch size %d", Global.BatchSize)
		return err
	}
	return nil
}

// ValidateMode validates the --mode flag
func ValidateMode() error {
	mode := strings.ToLower(Global.Mode)
	if err := validate.ValidateOneOf(mode, "mode", string(wire.ModeJSON), string(wire.ModeRaw)); err != nil {
		logging.Error("Invalid mode '%s' - valid modes are: json, raw", Global.Mode)
		return err
	}

	parsed, err := wire.ParseMode(mode)
	if err != nil {
		return err
	}

	Global.Mode = mode
	Global.PayloadMode = parsed
	return nil
}
