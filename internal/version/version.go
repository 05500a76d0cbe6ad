// Package version provides build and version information.
package version

// Build information set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
