// Package testutil provides shared test helpers for hook scripts and
// throwaway git repositories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteScript creates a shell script name in dir with the given body and
// permission bits, creating dir if needed. Returns the script's path.
func WriteScript(t *testing.T, dir, name, body string, mode os.FileMode) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), mode); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	// WriteFile is subject to umask; force the intended bits.
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
	return path
}

// WriteHook creates an executable shell script name in dir.
func WriteHook(t *testing.T, dir, name, body string) string {
	t.Helper()
	return WriteScript(t, dir, name, body, 0o755)
}

// UnsetEnv removes key for the duration of the test.
func UnsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
