package clog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes leveled messages to an optional log file and reports
// warnings and errors on stderr, prefixed with the program name.
type Logger struct {
	mu         sync.Mutex
	prog       string
	level      Level
	fileWriter io.Writer // receives every message at or above level
	errWriter  io.Writer // receives warn/error only
}

// New creates a logger for prog. By default nothing is written to a file
// and warnings and errors go to os.Stderr.
func New(prog string) *Logger {
	return &Logger{
		prog:      prog,
		level:     LevelInfo,
		errWriter: os.Stderr,
	}
}

// Discard returns a logger that drops all output.
func Discard(prog string) *Logger {
	l := New(prog)
	l.SetErrOutput(nil)
	return l
}

// TestLogger returns a debug-level logger writing file and stderr output
// to w.
func TestLogger(prog string, w io.Writer) *Logger {
	l := New(prog)
	l.SetFileOutput(w)
	l.SetErrOutput(w)
	l.SetLevel(LevelDebug)
	return l
}

// Prog returns the program name used as the diagnostic prefix.
func (l *Logger) Prog() string {
	return l.prog
}

// SetLevel sets the minimum level written to the log file.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetFileOutput sets the log file writer. Pass nil to disable file logging.
func (l *Logger) SetFileOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fileWriter = w
}

// SetErrOutput sets the writer for warn/error diagnostics. Pass nil to
// disable them.
func (l *Logger) SetErrOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errWriter = w
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Close closes the file writer if it implements io.Closer.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if closer, ok := l.fileWriter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.fileWriter != nil && level >= l.level {
		timestamp := time.Now().UTC().Format(time.RFC3339)
		line := fmt.Sprintf("%s [%s] %s[%d]: %s\n", timestamp, level, l.prog, os.Getpid(), msg)
		_, _ = l.fileWriter.Write([]byte(line))
	}

	// Stderr diagnostics ignore the file level.
	if l.errWriter != nil && level >= LevelWarn {
		_, _ = fmt.Fprintf(l.errWriter, "%s: %s\n", l.prog, msg)
	}
}

// OpenLogFile opens a log file for appending, creating parent directories
// if needed.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// DefaultLogPath returns ~/.local/state/git-hooks/hooks.log, honoring
// XDG_STATE_HOME.
func DefaultLogPath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "git-hooks", "hooks.log")
}
