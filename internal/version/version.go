// Package version holds the nexttag build version.
package version

import "runtime/debug"

// Version is set at build time via
//
//	-ldflags "-X github.com/indaco/nexttag/internal/version.Version=1.2.3"
var Version = ""

// GetVersion returns the build version, falling back to the module version
// recorded by `go install` and finally to "dev".
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}
