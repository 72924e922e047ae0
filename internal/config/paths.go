package config

import (
	"os"

	"github.com/xdg/githooks/internal/pathutil"
)

// PathEnv overrides the configuration file location.
const PathEnv = "GIT_HOOKS_CONFIG"

// Dir returns the configuration directory, ~/.config/git-hooks/ or
// $XDG_CONFIG_HOME/git-hooks/ when XDG_CONFIG_HOME is set. The returned
// path always has a trailing slash.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return pathutil.ExpandHome(base) + "/git-hooks/"
}

// Path returns the configuration file path: $GIT_HOOKS_CONFIG if set,
// otherwise Dir() + "config.yaml".
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return pathutil.ExpandHome(p)
	}
	return Dir() + "config.yaml"
}
