package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/xdg/githooks/internal/gitrepo"
	"github.com/xdg/githooks/internal/version"
)

// NewRunHooksCommand returns the git-run-hooks command, named prog.
func NewRunHooksCommand(prog string) *cobra.Command {
	var baseDir string

	c := &cobra.Command{
		Use:   prog + " -b BASEDIR -- [ARGS]",
		Short: "Run every hook in a directory, in name order",
		Long: `Runs all hooks from the specified BASEDIR, passing them the
remaining ARGS and all data from stdin. If BASEDIR does not
exist, this program terminates immediately with an exit code
of 0.

Hooks run one at a time, sorted by name. The first hook that fails
stops the run, and its exit status becomes the exit status of ` + prog + `.`,
		Version:       version.String(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(c *cobra.Command, args []string) error {
			if baseDir == "" {
				return usageError(c, errors.New("BASEDIR must be given with -b"))
			}
			return runHooks(c, prog, baseDir, args)
		},
	}

	flags := c.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&baseDir, "basedir", "b", "", "the `BASEDIR` of the hooks to execute (i.e. /path/to/update.d for the update hook)")
	c.SetFlagErrorFunc(usageError)
	return c
}

func runHooks(c *cobra.Command, prog, baseDir string, args []string) error {
	log, _, err := setup(c, prog)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	if _, err := gitrepo.GitDir(); err != nil {
		return exitError(log, err)
	}

	in, err := captureInput(c, log)
	if err != nil {
		return exitError(log, err)
	}
	defer func() { _ = in.Close() }()

	return exitError(log, newDispatcher(c, log).RunDir(c.Context(), baseDir, in, args))
}
