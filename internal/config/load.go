package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xdg/githooks/internal/pathutil"
)

// Load reads the configuration from Path(). A missing file yields
// DefaultConfig(); nothing is ever written, since a hook must not create
// files as a side effect. A file that exists but cannot be read, parsed or
// validated is an error. Paths containing ~ are expanded.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg.Log.File = pathutil.ExpandHome(cfg.Log.File)
	return cfg, nil
}
