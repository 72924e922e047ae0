package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/xdg/githooks/internal/config"
	"github.com/xdg/githooks/internal/gitrepo"
	"github.com/xdg/githooks/internal/pathutil"
)

// NewGenericHookCommand returns the git-generic-hook command for the hook
// named hook. Every argument is forwarded to the hooks.
func NewGenericHookCommand(hook string) *cobra.Command {
	return &cobra.Command{
		Use:   hook + " [ARGS]",
		Short: "Run the hooks configured for " + hook,
		Long: `Installed in a repository's hooks directory under the name of a git
hook. Runs every hook in <hooks.basedir>/` + hook + `.d, passing them all
arguments and all data from stdin. Does nothing if hooks.basedir is
not set in the git configuration.`,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(c *cobra.Command, args []string) error {
			return runGenericHook(c, hook, args)
		},
	}
}

func runGenericHook(c *cobra.Command, hook string, args []string) error {
	log, cfg, err := setup(c, hook)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	if !acceptsHook(cfg, hook) {
		return exitError(log, fmt.Errorf("%w %s", ErrInvalidHook, hook))
	}

	gitDir, err := gitrepo.GitDir()
	if err != nil {
		return exitError(log, err)
	}
	if err := gitrepo.Validate(gitDir); err != nil {
		return exitError(log, err)
	}

	// Capture before running git so the query cannot consume stdin.
	in, err := captureInput(c, log)
	if err != nil {
		return exitError(log, err)
	}
	defer func() { _ = in.Close() }()

	baseDir, ok, err := gitrepo.ConfigValue(c.Context(), gitrepo.BaseDirKey)
	if err != nil {
		return exitError(log, err)
	}
	if !ok {
		log.Debug("%s is not set; nothing to run", gitrepo.BaseDirKey)
		return nil
	}

	if err := checkDir(baseDir); err != nil {
		return exitError(log, err)
	}

	hookDir := pathutil.JoinPath(baseDir, hook+".d")
	return exitError(log, newDispatcher(c, log).RunDir(c.Context(), hookDir, in, args))
}

// acceptsHook reports whether hook is a standard hook name or one listed
// in hooks.extra_names.
func acceptsHook(cfg *config.Config, hook string) bool {
	return gitrepo.IsStandardHook(hook) || slices.Contains(cfg.Hooks.ExtraNames, hook)
}

// checkDir fails unless dir can be opened as a directory.
func checkDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open directory %s: %w", dir, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.ReadDir(1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("open directory %s: %w", dir, err)
	}
	return nil
}
