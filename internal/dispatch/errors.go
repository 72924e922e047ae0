package dispatch

import (
	"fmt"
	"syscall"

	"github.com/xdg/githooks/internal/hookdir"
)

// FatalExitCode is the exit status for failures that are not a hook's own
// exit code.
const FatalExitCode = 1

// HookFailedError reports a hook that exited with a non-zero status or
// could not be spawned.
type HookFailedError struct {
	Hook  hookdir.Hook
	Code  int
	Spawn bool // the hook never started
}

func (e *HookFailedError) Error() string {
	if e.Spawn {
		return fmt.Sprintf("hook %s could not be executed", e.Hook.Path)
	}
	return fmt.Sprintf("hook %s exited with status %d", e.Hook.Path, e.Code)
}

// ExitCode returns the hook's exit status, which the dispatcher adopts.
func (e *HookFailedError) ExitCode() int {
	return e.Code
}

// HookSignaledError reports a hook terminated by a signal.
type HookSignaledError struct {
	Hook   hookdir.Hook
	Signal syscall.Signal
}

func (e *HookSignaledError) Error() string {
	return fmt.Sprintf("hook %s terminated abnormally (%v)", e.Hook.Path, e.Signal)
}

// ExitCode returns FatalExitCode; a signal is never mapped to a code.
func (e *HookSignaledError) ExitCode() int {
	return FatalExitCode
}
