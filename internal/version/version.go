// Package version exposes build metadata stamped in at link time.
package version

import "fmt"

//nolint:gochecknoglobals // Overridden via -ldflags at build time.
var (
	// Version is the application version.
	Version = "1.0.0"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"
)

// Short returns just the version number.
func Short() string {
	return Version
}

// Full returns the version together with the commit and the build timestamp.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
