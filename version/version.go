// Package version holds build metadata for the server binary.
package version

import (
	"fmt"
	"runtime"
)

// BinaryName is the canonical name of the server binary.
const BinaryName = "mcp-nautobot"

// Build metadata. Version, GitCommit, and BuildDate are overridden at
// build time via -ldflags.
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
	Platform  = runtime.GOOS + "/" + runtime.GOARCH
)

// GetVersionInfo returns a multi-line human-readable version report.
func GetVersionInfo() string {
	return fmt.Sprintf(`%s
Version:    %s
Git commit: %s
Built:      %s
Go version: %s
Platform:   %s`,
		BinaryName, Version, GitCommit, BuildDate, GoVersion, Platform)
}
