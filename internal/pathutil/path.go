// Package pathutil builds the file names the dispatchers hand to the
// filesystem and to child processes.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading ~ in path with the user's home directory.
// If the home directory cannot be determined, the path is returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// JoinPath joins base and elems with "/" after trimming trailing slashes
// from each intermediate result. Unlike filepath.Join it does not clean
// the path, so "./hooks" stays "./hooks/<name>" and a lone "/" survives.
func JoinPath(base string, elems ...string) string {
	path := trimTrailingSlashes(base)
	for _, e := range elems {
		if path != "/" {
			path += "/"
		}
		path = trimTrailingSlashes(path + e)
	}
	return path
}

// trimTrailingSlashes strips trailing slashes but never shortens s below
// one byte.
func trimTrailingSlashes(s string) string {
	for len(s) > 1 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
