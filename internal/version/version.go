// Package version provides version information for the hook dispatchers.
// The Version variable is set at build time via ldflags.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version is the current release.
// Set at build time via: -ldflags "-X github.com/xdg/githooks/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"

// String returns the version shown by --version: the release, plus the VCS
// revision for development builds when the toolchain recorded one, plus the
// Go runtime version.
func String() string {
	v := Version
	if v == "dev" {
		if rev := revision(); rev != "" {
			v += "+" + rev
		}
	}
	return v + " (" + runtime.Version() + ")"
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return s.Value[:12]
		}
	}
	return ""
}
