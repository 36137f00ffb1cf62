// Package version holds build metadata injected via ldflags.
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
)

func String() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
