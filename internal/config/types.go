// Package config provides the optional YAML configuration shared by the
// hook dispatchers. It is typically stored at
// ~/.config/git-hooks/config.yaml.
package config

// Config is the top-level configuration.
type Config struct {
	Log   LogConfig   `yaml:"log,omitempty"`
	Hooks HooksConfig `yaml:"hooks,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`  // empty disables file logging
	Level string `yaml:"level,omitempty"` // debug, info, warn or error
}

// HooksConfig contains settings for git-generic-hook.
type HooksConfig struct {
	// ExtraNames are hook names accepted in addition to the standard set,
	// e.g. pre-push or post-merge.
	ExtraNames []string `yaml:"extra_names,omitempty"`
}
