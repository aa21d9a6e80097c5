// Package version exposes the build version, overridable at link time with
// -ldflags "-X github.com/wattwise/wattwise/pkg/version.Version=...".
package version

// Version is the semantic version of the build.
var Version = "0.1.0" //nolint:gochecknoglobals // set via ldflags at build time

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
