// Package version holds build metadata injected via ldflags.
package version

// Build metadata (set via ldflags during build).
var (
	// Version is the release version.
	Version = "dev"
	// GitCommit is the commit the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
