// Package build exposes build-time metadata injected via ldflags.
package build

import "fmt"

// Set at link time:
//
//	-ldflags "-X github.com/joestump/content-genius/internal/build.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Branch  = "unknown"
)

// String renders the build metadata for the version command and startup log.
func String() string {
	return fmt.Sprintf("content-genius %s (commit %s, branch %s)", Version, Commit, Branch)
}
