// Package version provides build-time version information.
package version

import "fmt"

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version
	Version = "0.1.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String formats the version for window titles and -version output.
func String() string {
	if GitCommit == "unknown" {
		return "tf-editor " + Version
	}
	return fmt.Sprintf("tf-editor %s (%s, built %s)", Version, shortCommit(GitCommit), BuildTime)
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
