// Package version provides centralized version information for the sqlbatch
// binaries. The submitter CLI (sqlbatch) and the local execute endpoint
// (sqlbatchd) are versioned independently so either can ship on its own.
// All versions follow semantic versioning (semver) conventions.

package version

// SqlbatchVersion holds the current sqlbatch CLI version.
// Sent as part of the User-Agent header on every execute request.
// Format: major.minor.patch[-prerelease][+build]
const SqlbatchVersion = "0.1.0-dev"

// SqlbatchdVersion holds the current sqlbatchd endpoint version.
// Reported by the /health route.
// Format: major.minor.patch[-prerelease][+build]
const SqlbatchdVersion = "0.1.0-dev"
