// Package handlers provides command handler functions for sqlbatch.
//
// The handlers coordinate between the script loader, the execute client, the
// submission loop, and the display package while keeping flag parsing in the
// commands package and presentation in display.
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Logging setup first, using the logging package for everything on stderr
// - Failures logged in detail and returned as short errors for cobra to print
package handlers
