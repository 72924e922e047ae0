package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/xdg/githooks/internal/config"
)

// isolate keeps user configuration and debug settings out of a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.PathEnv, filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv(DebugEnv, "")
	t.Setenv("XDG_STATE_HOME", t.TempDir())
}

// result is what one command execution produced.
type result struct {
	stdout string
	stderr string
	code   int
}

func run(t *testing.T, c *cobra.Command, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	c.SetIn(strings.NewReader(stdin))
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetArgs(args)

	err := c.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), code: exitCode(t, err)}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var exitErr *ExitCodeError
	if !errors.As(err, &exitErr) {
		t.Fatalf("command returned %T (%v), want *ExitCodeError", err, err)
	}
	return exitErr.Code
}
