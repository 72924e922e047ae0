// Package cmd implements the git-run-hooks and git-generic-hook commands.
package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xdg/githooks/internal/dispatch"
)

// ExecuteRunHooks runs git-run-hooks with the process argument vector argv.
func ExecuteRunHooks(argv []string) error {
	return execute(NewRunHooksCommand(progName(argv, "git-run-hooks")), argv)
}

// ExecuteGenericHook runs git-generic-hook with the process argument
// vector argv. The hook name is the base name of argv[0].
func ExecuteGenericHook(argv []string) error {
	return execute(NewGenericHookCommand(progName(argv, "git-generic-hook")), argv)
}

func execute(c *cobra.Command, argv []string) error {
	args := []string{}
	if len(argv) > 1 {
		args = argv[1:]
	}
	c.SetArgs(args)

	err := c.Execute()
	if err == nil {
		return nil
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	fmt.Fprintf(c.ErrOrStderr(), "%s: %v\n", c.Name(), err)
	return NewExitCodeError(dispatch.FatalExitCode)
}

// progName returns the base name of argv[0], or fallback if argv is empty.
func progName(argv []string, fallback string) string {
	if len(argv) == 0 || argv[0] == "" {
		return fallback
	}
	return filepath.Base(argv[0])
}
