package oasmeta

import (
	"fmt"
	"runtime"
)

// Build metadata, set via ldflags for release builds.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version, or "dev" when built from source.
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the identifier used when oasmeta reports itself, such as in
// generated document metadata.
func UserAgent() string {
	return fmt.Sprintf("oasmeta/%s", version)
}

// BuildInfo returns a multi-line summary of the build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
