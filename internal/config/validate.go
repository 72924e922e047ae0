package config

import (
	"fmt"
	"strings"

	"github.com/xdg/githooks/internal/clog"
)

// Validate checks that cfg holds usable values:
//   - log.level is one of debug, info, warn, error (if non-empty)
//   - hooks.extra_names entries are non-empty, contain no "/" and do not
//     start with "."
func Validate(cfg *Config) error {
	if _, err := clog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	for i, name := range cfg.Hooks.ExtraNames {
		field := fmt.Sprintf("hooks.extra_names[%d]", i)
		switch {
		case name == "":
			return fmt.Errorf("%s: must not be empty", field)
		case strings.Contains(name, "/"):
			return fmt.Errorf("%s: %q must not contain '/'", field, name)
		case strings.HasPrefix(name, "."):
			return fmt.Errorf("%s: %q must not start with '.'", field, name)
		}
	}
	return nil
}
