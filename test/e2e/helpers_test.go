//go:build e2e

package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xdg/githooks/internal/testutil"
)

// isolate keeps the user's git and hook configuration out of a test.
func isolate(t *testing.T) {
	t.Helper()
	testutil.IsolateGit(t)
	home := os.Getenv("HOME")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("GIT_HOOKS_CONFIG", "")
	t.Setenv("GIT_HOOKS_DEBUG", "")
	testutil.UnsetEnv(t, "GIT_DIR")
}

// output is what one process run produced.
type output struct {
	stdout string
	stderr string
	code   int
}

// runBinary runs bin with argv[0] set to name, feeding it stdin.
func runBinary(t *testing.T, bin, name, stdin string, env []string, args ...string) output {
	t.Helper()

	cmd := exec.Command(bin, args...)
	cmd.Args[0] = name
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := output{stdout: stdout.String(), stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		out.code = exitErr.ExitCode()
	default:
		t.Fatalf("run %s: %v", name, err)
	}
	return out
}

func gitErr(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}
