package buildinfo

import "fmt"

// Overridden at release time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("vuer-split %s (commit=%s, date=%s)", Version, Commit, Date)
}
