// Package main implements the sqlbatch execute endpoint daemon (sqlbatchd).
//
// sqlbatchd serves /health, /v1/execute and /v1/query on a loopback address,
// journaling every accepted submission under a per-process nonce. It lets
// operators rehearse a script against the same wire contract the submitter
// uses before pointing it at a real endpoint.
package main

import (
	"os"

	"github.com/concave-dev/sqlbatch/cmd/sqlbatchd/commands"
)

// Main entry point
func main() {
	commands.SetupCommands()

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
