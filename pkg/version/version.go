// Package version exposes build metadata injected at link time.
package version

import "fmt"

// These are set via -ldflags "-X github.com/rshade/rowpick/pkg/version.version=...".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit the binary was built from.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return date
}

// String returns a one-line summary suitable for `rowpick version`.
func String() string {
	return fmt.Sprintf("rowpick %s (commit: %s, built: %s)", GetVersion(), GetCommit(), GetBuildDate())
}
