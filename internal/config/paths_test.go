package config

import (
	"os"
	"testing"
)

func TestDir_Default(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("os.UserHomeDir() error = %v", err)
	}

	want := home + "/.config/git-hooks/"
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	if got := Dir(); got != "/custom/config/git-hooks/" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/config/git-hooks/")
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	t.Run("default", func(t *testing.T) {
		t.Setenv(PathEnv, "")
		if got := Path(); got != "/custom/config/git-hooks/config.yaml" {
			t.Errorf("Path() = %q", got)
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv(PathEnv, "/etc/git-hooks.yaml")
		if got := Path(); got != "/etc/git-hooks.yaml" {
			t.Errorf("Path() = %q", got)
		}
	})
}
