// Package gitrepo answers the questions the dispatchers ask about the
// repository a hook runs in: where it is, whether it looks like a git
// directory, and what a configuration key is set to.
package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/xdg/githooks/internal/pathutil"
)

// GitDirEnv is the environment variable git sets for every hook.
const GitDirEnv = "GIT_DIR"

// BaseDirKey is the git configuration key naming the directory that holds
// the <hook>.d directories.
const BaseDirKey = "hooks.basedir"

// ErrGitDirUnset indicates GIT_DIR is not present in the environment.
var ErrGitDirUnset = errors.New(GitDirEnv + " is unset")

// ErrGitNotInstalled indicates git is not installed or not in PATH.
var ErrGitNotInstalled = errors.New("git is not installed or not in PATH")

// StandardHooks are the hook names git-generic-hook accepts without extra
// configuration.
var StandardHooks = []string{
	"applypatch-msg",
	"commit-msg",
	"post-commit",
	"post-receive",
	"post-update",
	"pre-applypatch",
	"pre-commit",
	"pre-rebase",
	"prepare-commit-msg",
	"update",
}

// requiredItems must be readable inside GIT_DIR.
var requiredItems = []string{"HEAD", "hooks", "info", "objects", "refs"}

// IsStandardHook reports whether name is one of StandardHooks.
func IsStandardHook(name string) bool {
	return slices.Contains(StandardHooks, name)
}

// GitDir returns $GIT_DIR. Set-but-empty counts as set.
func GitDir() (string, error) {
	dir, ok := os.LookupEnv(GitDirEnv)
	if !ok {
		return "", ErrGitDirUnset
	}
	return dir, nil
}

// Validate checks that gitDir contains the items every git directory has
// and that the current user can read them.
func Validate(gitDir string) error {
	for _, item := range requiredItems {
		path := pathutil.JoinPath(gitDir, item)
		if err := unix.Access(path, unix.R_OK); err != nil {
			return fmt.Errorf("access %s: %w", path, err)
		}
	}
	return nil
}

// GitError represents a git command that ran and failed.
type GitError struct {
	Command string
	Args    []string
	Code    int            // exit status, or -1 if signaled
	Signal  syscall.Signal // valid when Code is -1
	Stderr  string
}

func (e *GitError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("git %s terminated abnormally (%v)", e.Command, e.Signal)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed with status %d: %s", e.Command, e.Code, e.Stderr)
	}
	return fmt.Sprintf("git %s failed with status %d", e.Command, e.Code)
}

// ExitCode returns the status a caller should exit with: git's own code,
// or 1 when git was killed by a signal.
func (e *GitError) ExitCode() int {
	if e.Code < 0 {
		return 1
	}
	return e.Code
}

// runGit executes git with args in the current directory and returns
// stdout. Standard input is /dev/null so git never reads captured input.
func runGit(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return nil, ErrGitNotInstalled
	}

	cmdName := ""
	if len(args) > 0 {
		cmdName = args[0]
	}
	gitErr := &GitError{
		Command: cmdName,
		Args:    args,
		Stderr:  strings.TrimSpace(stderr.String()),
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("git %s: %w", cmdName, err)
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		gitErr.Code = -1
		gitErr.Signal = ws.Signal()
	} else {
		gitErr.Code = exitErr.ExitCode()
	}
	return nil, gitErr
}

// ConfigValue returns the value of key as reported by "git config -z".
// The value ends at the first NUL and is trimmed of surrounding
// whitespace. ok is false when the key is unset (git exits 1) or the
// trimmed value is empty.
func ConfigValue(ctx context.Context, key string) (value string, ok bool, err error) {
	out, err := runGit(ctx, "config", "-z", key)
	if err != nil {
		var gitErr *GitError
		if errors.As(err, &gitErr) && gitErr.Code == 1 {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query git config value %s: %w", key, err)
	}

	if i := bytes.IndexByte(out, 0); i >= 0 {
		out = out[:i]
	}
	value = strings.TrimSpace(string(out))
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}
