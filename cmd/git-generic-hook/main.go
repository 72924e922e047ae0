// Package main is the entry point for git-generic-hook. Install it in a
// repository's hooks directory under the name of each hook it should serve.
package main

import (
	"errors"
	"os"

	"github.com/xdg/githooks/internal/cmd"
)

func main() {
	if err := cmd.ExecuteGenericHook(os.Args); err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
