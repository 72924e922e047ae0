package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/githooks/internal/clog"
	"github.com/xdg/githooks/internal/dispatch"
	"github.com/xdg/githooks/internal/executor"
	"github.com/xdg/githooks/internal/gitrepo"
)

// ExitCodeError carries the process exit status from a command to main.
// Its diagnostic, if any, has already been printed.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError returns an ExitCodeError for code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ErrInvalidHook indicates git-generic-hook was invoked under a name that
// is not a hook it serves.
var ErrInvalidHook = errors.New("invalid hook")

// exitCoder is implemented by errors that choose their own exit status.
type exitCoder interface {
	ExitCode() int
}

// exitError reports err on stderr, unless it has been reported already,
// and converts it to an ExitCodeError. A hook's own non-zero exit status is
// adopted silently.
func exitError(log *clog.Logger, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var hookErr *dispatch.HookFailedError
	if errors.As(err, &hookErr) {
		// Spawn failures were reported by the dispatcher.
		return NewExitCodeError(hookErr.ExitCode())
	}

	if errors.Is(err, gitrepo.ErrGitNotInstalled) {
		log.Error("%v", err)
		return NewExitCodeError(executor.SpawnFailureCode)
	}

	log.Error("%v", err)

	var coder exitCoder
	if errors.As(err, &coder) {
		return NewExitCodeError(coder.ExitCode())
	}
	return NewExitCodeError(dispatch.FatalExitCode)
}

// usageError reports a command line error followed by the usage text.
func usageError(c *cobra.Command, err error) error {
	w := c.ErrOrStderr()
	fmt.Fprintf(w, "%s: %v\n", c.Name(), err)
	fmt.Fprint(w, c.UsageString())
	return NewExitCodeError(dispatch.FatalExitCode)
}
