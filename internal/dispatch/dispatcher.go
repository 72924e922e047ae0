package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/xdg/githooks/internal/clog"
	"github.com/xdg/githooks/internal/executor"
	"github.com/xdg/githooks/internal/hookdir"
)

// Input is the replayable standard input shared by all hooks.
type Input interface {
	Rewind() error
	File() *os.File
}

// Dispatcher runs discovered hooks sequentially.
type Dispatcher struct {
	executor executor.Executor
	logger   *clog.Logger

	// Stdout and Stderr are handed to every hook; nil inherits the
	// dispatcher's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Dispatcher that spawns hooks with exec and reports through
// logger.
func New(exec executor.Executor, logger *clog.Logger) *Dispatcher {
	return &Dispatcher{
		executor: exec,
		logger:   logger,
	}
}

// RunDir discovers the hooks in baseDir and runs them. A missing baseDir
// runs nothing and succeeds.
func (d *Dispatcher) RunDir(ctx context.Context, baseDir string, in Input, args []string) error {
	hooks, err := hookdir.Discover(baseDir)
	if err != nil {
		return err
	}
	if len(hooks) == 0 {
		d.logger.Debug("no hooks to run in %s", baseDir)
		return nil
	}
	d.logger.Info("dispatching %d hook(s) from %s", len(hooks), baseDir)
	d.logger.Debug("hook order: %q", hookdir.Names(hooks))
	return d.Run(ctx, hooks, in, args)
}

// Run executes hooks in the given order with argv = [name] ++ args. It
// returns nil only if every hook exited with status 0.
func (d *Dispatcher) Run(ctx context.Context, hooks []hookdir.Hook, in Input, args []string) error {
	for _, h := range hooks {
		if err := in.Rewind(); err != nil {
			return err
		}

		d.logger.Debug("running hook %s %q", h.Path, args)
		res := d.executor.Execute(ctx, executor.Request{
			Path:   h.Path,
			Name:   h.Name,
			Args:   args,
			Stdin:  in.File(),
			Stdout: d.Stdout,
			Stderr: d.Stderr,
		})

		if err := d.classify(h, res); err != nil {
			return err
		}
		d.logger.Debug("hook %s succeeded", h.Name)
	}
	return nil
}

// classify maps one hook's result to continue (nil) or abort.
func (d *Dispatcher) classify(h hookdir.Hook, res executor.Result) error {
	if res.Succeeded() {
		return nil
	}

	switch res.Status {
	case executor.StatusCompleted:
		d.logger.Info("hook %s exited with status %d", h.Name, res.ExitCode)
		return &HookFailedError{Hook: h, Code: res.ExitCode}

	case executor.StatusSpawnFailed:
		d.logger.Error("failed to execute hook %s: %v", h.Path, causeOf(res.Err))
		return &HookFailedError{Hook: h, Code: executor.SpawnFailureCode, Spawn: true}

	case executor.StatusSignaled:
		return &HookSignaledError{Hook: h, Signal: res.Signal}

	default:
		return fmt.Errorf("wait for %s to terminate: %w", h.Path, res.Err)
	}
}

// causeOf strips the fork/exec path wrapper so the diagnostic names the
// hook once.
func causeOf(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
