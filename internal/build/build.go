// Package build holds version information injected at build time via ldflags.
package build

var (
	// Version is the semantic version of this build.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
