package config

// DefaultConfig returns the configuration used when no file exists: no
// log file, info level, standard hook names only.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
	}
}
