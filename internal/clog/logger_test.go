package clog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_FileLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New("git-run-hooks")
	l.SetFileOutput(&buf)
	l.SetErrOutput(nil)
	l.SetLevel(LevelDebug)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	output := buf.String()
	for _, want := range []string{
		"[DEBUG] git-run-hooks[",
		"]: debug message",
		"[INFO] git-run-hooks[",
		"]: warn message",
		"[ERROR] git-run-hooks[",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New("prog")
	l.SetFileOutput(&buf)
	l.SetErrOutput(nil)
	l.SetLevel(LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("debug/info should be filtered, got: %s", output)
	}
	if !strings.Contains(output, "warn message") {
		t.Errorf("expected warn message, got: %s", output)
	}
}

func TestLogger_StderrDiagnostics(t *testing.T) {
	var stderr bytes.Buffer
	l := New("update")
	l.SetErrOutput(&stderr)
	l.SetLevel(LevelError)

	l.Info("not shown")
	l.Warn("careful")
	l.Error("Failed to open directory %s (%s)", "/hooks", "permission denied")

	want := "update: careful\nupdate: Failed to open directory /hooks (permission denied)\n"
	if got := stderr.String(); got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestLogger_Prog(t *testing.T) {
	if got := New("pre-commit").Prog(); got != "pre-commit" {
		t.Errorf("Prog() = %q, want %q", got, "pre-commit")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard("prog")
	l.Debug("test")
	l.Error("test")
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestOpenLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "hooks.log")

	f, err := OpenLogFile(logPath)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}

	l := New("prog")
	l.SetFileOutput(f)
	l.SetErrOutput(nil)
	l.Info("written to file")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(content), "written to file") {
		t.Errorf("expected message in log file, got: %s", content)
	}
}

func TestDefaultLogPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	want := filepath.Join("/tmp/state", "git-hooks", "hooks.log")
	if got := DefaultLogPath(); got != want {
		t.Errorf("DefaultLogPath() = %q, want %q", got, want)
	}
}
