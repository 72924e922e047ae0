// Package hookdir discovers the hooks installed in a base directory and
// orders them for dispatch.
package hookdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/xdg/githooks/internal/pathutil"
)

// Hook is a qualifying entry of a base directory.
type Hook struct {
	Name string // directory entry name, passed to the hook as argv[0]
	Path string // base directory joined with Name
}

// Discover lists baseDir and returns the entries that do not start with a
// dot and that the current user may execute, sorted by byte-wise name.
//
// A missing baseDir means no hooks are installed and yields an empty result
// with a nil error. Any other failure to read baseDir is returned.
// Permissions are checked once, here; later changes are not observed.
func Discover(baseDir string) ([]Hook, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open directory %s: %w", baseDir, err)
	}

	hooks := make([]Hook, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := pathutil.JoinPath(baseDir, name)
		if !Executable(path) {
			continue
		}
		hooks = append(hooks, Hook{Name: name, Path: path})
	}

	slices.SortFunc(hooks, func(a, b Hook) int {
		return strings.Compare(a.Name, b.Name)
	})
	return hooks, nil
}

// Executable reports whether the current user may execute path, using the
// real user and group IDs as access(2) does.
func Executable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}

// Names returns the names of hooks in order.
func Names(hooks []Hook) []string {
	names := make([]string, len(hooks))
	for i, h := range hooks {
		names[i] = h.Name
	}
	return names
}
