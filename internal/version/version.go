// Package version provides build version information for the application.
// Kept separate so both the host and logging can read it without import cycles.
package version

// Version is the build version string, set by ldflags during build.
var Version = "v0.3.0"

// BuildTime is the build timestamp, set by ldflags during build.
var BuildTime = "unknown"
