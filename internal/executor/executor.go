// Package executor runs one hook as a child process and classifies how it
// terminated.
package executor

import (
	"context"
	"io"
	"os"
	"syscall"
)

// SpawnFailureCode is the exit status reported for a hook that could not be
// started at all, matching the shell's "command not executable" convention.
const SpawnFailureCode = 127

// Executor runs hooks on the host system.
type Executor interface {
	Execute(ctx context.Context, req Request) Result
}

// Request describes a single hook invocation.
type Request struct {
	Path   string    // executable to spawn
	Name   string    // argv[0] seen by the hook
	Args   []string  // argv[1:]
	Stdin  *os.File  // nil means /dev/null
	Stdout io.Writer // nil means the dispatcher's own stdout
	Stderr io.Writer // nil means the dispatcher's own stderr
}

// Argv returns the full argument vector for req.
func (req Request) Argv() []string {
	argv := make([]string, 0, len(req.Args)+1)
	argv = append(argv, req.Name)
	return append(argv, req.Args...)
}

// Result is the outcome of one hook invocation.
type Result struct {
	Status   string         // one of the Status constants
	ExitCode int            // valid for StatusCompleted and StatusSpawnFailed
	Signal   syscall.Signal // valid for StatusSignaled
	Err      error          // cause for StatusSpawnFailed and StatusError
}

// Status constants for Result.Status.
const (
	// StatusCompleted means the hook exited normally with ExitCode.
	StatusCompleted = "completed"
	// StatusSignaled means the hook was terminated by Signal.
	StatusSignaled = "signaled"
	// StatusSpawnFailed means the hook could not be started.
	StatusSpawnFailed = "spawn_failed"
	// StatusError means the hook was started but waiting for it failed.
	StatusError = "error"
)

// Succeeded reports whether the hook exited cleanly with status 0.
func (r Result) Succeeded() bool {
	return r.Status == StatusCompleted && r.ExitCode == 0
}
