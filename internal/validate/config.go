// Package validate provides configuration validation utilities for sqlbatch.
//
// This file implements the range checks shared by the submitter and endpoint
// flag validators. All functions go through the go-playground/validator
// library for consistent behaviour and error messages.
package validate

import (
	"fmt"
	"strings"
)

// ValidatePortRange validates that a port number is within the valid range (1-65535).
// Port 0 is rejected because the submitter needs a predictable address to target.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidatePositiveInt validates that an integer flag is at least one.
// Used for batch sizes, where zero would produce no progress.
func ValidatePositiveInt(value int, name string) error {
	if err := ValidateField(value, "min=1"); err != nil {
		return fmt.Errorf("%s must be at least 1, got: %d", name, value)
	}
	return nil
}

// ValidateNonNegativeInt validates that an integer flag is zero or greater.
// Used for timeouts, where zero means "no timeout".
func ValidateNonNegativeInt(value int, name string) error {
	if err := ValidateField(value, "min=0"); err != nil {
		return fmt.Errorf("%s cannot be negative, got: %d", name, value)
	}
	return nil
}

// ValidateOneOf validates that value is one of the allowed choices.
// Matching is exact; callers normalize case before calling.
func ValidateOneOf(value, name string, choices ...string) error {
	tag := "required,oneof=" + strings.Join(choices, " ")
	if err := ValidateField(value, tag); err != nil {
		return fmt.Errorf("invalid %s '%s' - valid: %s", name, value, strings.Join(choices, ", "))
	}
	return nil
}

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}
