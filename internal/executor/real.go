package executor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// RealExecutor spawns hooks using os/exec and blocks until each exits.
// There is no timeout: a hook that never exits blocks Execute forever.
type RealExecutor struct{}

// NewRealExecutor creates a new RealExecutor.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

// Execute spawns req.Path with req.Argv() and waits for that child only.
func (e *RealExecutor) Execute(ctx context.Context, req Request) Result {
	cmd := exec.CommandContext(ctx, req.Path)
	cmd.Args = req.Argv()

	if req.Stdin != nil {
		cmd.Stdin = req.Stdin
	}
	cmd.Stdout = req.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = req.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return Result{
			Status:   StatusSpawnFailed,
			ExitCode: SpawnFailureCode,
			Err:      err,
		}
	}

	err := cmd.Wait()
	if err == nil {
		return Result{Status: StatusCompleted}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return Result{
				Status:   StatusSignaled,
				ExitCode: -1,
				Signal:   ws.Signal(),
			}
		}
		return Result{
			Status:   StatusCompleted,
			ExitCode: exitErr.ExitCode(),
		}
	}

	// The child ran but copying its output failed.
	return Result{
		Status:   StatusError,
		ExitCode: -1,
		Err:      err,
	}
}
