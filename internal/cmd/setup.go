package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg/githooks/internal/capture"
	"github.com/xdg/githooks/internal/clog"
	"github.com/xdg/githooks/internal/config"
	"github.com/xdg/githooks/internal/dispatch"
	"github.com/xdg/githooks/internal/executor"
	"github.com/xdg/githooks/internal/sigs"
)

// DebugEnv enables debug logging when set to "1".
const DebugEnv = "GIT_HOOKS_DEBUG"

// setup prepares the process for a dispatch run: signal dispositions, the
// configuration and a logger built from it. Diagnostics go to the command's
// stderr. The caller must Close the logger.
func setup(c *cobra.Command, prog string) (*clog.Logger, *config.Config, error) {
	sigs.Disregard()

	log := clog.New(prog)
	log.SetErrOutput(c.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, exitError(log, err)
	}

	// Validated by config.Load.
	level, _ := clog.ParseLevel(cfg.Log.Level)
	logFile := cfg.Log.File
	if os.Getenv(DebugEnv) == "1" {
		level = clog.LevelDebug
		if logFile == "" {
			logFile = clog.DefaultLogPath()
		}
	}
	log.SetLevel(level)

	if logFile != "" {
		f, err := clog.OpenLogFile(logFile)
		if err != nil {
			log.Warn("logging disabled: %v", err)
		} else {
			log.SetFileOutput(f)
		}
	}
	return log, cfg, nil
}

// captureInput spools the command's standard input. When that is the
// process's own stdin, the captured file replaces it.
func captureInput(c *cobra.Command, log *clog.Logger) (*capture.Input, error) {
	if r := c.InOrStdin(); r != os.Stdin {
		return capture.Capture(r)
	}
	return capture.CaptureStdin(log)
}

// newDispatcher returns a dispatcher whose hooks write to the command's
// output streams.
func newDispatcher(c *cobra.Command, log *clog.Logger) *dispatch.Dispatcher {
	d := dispatch.New(executor.NewRealExecutor(), log)
	d.Stdout = c.OutOrStdout()
	d.Stderr = c.ErrOrStderr()
	return d
}
