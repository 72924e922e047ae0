package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteScript(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "update.d")

	path := WriteScript(t, dir, "check", "exit 0", 0o644)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "#!/bin/sh\nexit 0\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteHook_Runs(t *testing.T) {
	path := WriteHook(t, t.TempDir(), "hello", "echo hello")

	out, err := exec.Command(path).Output()
	if err != nil {
		t.Fatalf("run hook: %v", err)
	}
	if string(out) != "hello\n" {
		t.Errorf("output = %q", out)
	}
}

func TestUnsetEnv(t *testing.T) {
	t.Setenv("TESTUTIL_PROBE", "set")
	UnsetEnv(t, "TESTUTIL_PROBE")

	if _, ok := os.LookupEnv("TESTUTIL_PROBE"); ok {
		t.Error("TESTUTIL_PROBE still set")
	}
}

func TestInitBareRepo(t *testing.T) {
	IsolateGit(t)
	dir := InitBareRepo(t)

	out := Git(t, dir, "rev-parse", "--is-bare-repository")
	if strings.TrimSpace(out) != "true" {
		t.Errorf("rev-parse --is-bare-repository = %q", out)
	}
}
