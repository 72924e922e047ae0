// Package main is the entry point for git-run-hooks.
package main

import (
	"errors"
	"os"

	"github.com/xdg/githooks/internal/cmd"
)

func main() {
	if err := cmd.ExecuteRunHooks(os.Args); err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
