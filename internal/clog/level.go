// Package clog provides leveled operational logging for the hook
// dispatchers.
//
// Every logger carries the program name it was created with; diagnostics
// written to stderr take the form "<prog>: <message>" so a failing
// invocation reads the same whether one hook or many are installed.
//
// Output destinations:
//   - File: all levels at or above the configured level, timestamped
//   - Stderr: Warn and Error only, without timestamp or level tag
package clog

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug traces discovery and per-hook execution.
	LevelDebug Level = iota
	// LevelInfo is for normal operational events.
	LevelInfo
	// LevelWarn is for unexpected conditions that don't stop a dispatch.
	LevelWarn
	// LevelError is for failures that terminate the invocation.
	LevelError
)

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name (case-insensitive). The empty string
// means LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
