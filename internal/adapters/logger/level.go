package logger

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/baditaflorin/l"
)

// Level is a minimum severity accepted by StdLogger.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelCritical silences every message emitted through ports.Logger.
	LevelCritical
)

var levelNames = map[string]Level{
	"DEBUG":    LevelDebug,
	"INFO":     LevelInfo,
	"WARN":     LevelWarn,
	"WARNING":  LevelWarn,
	"ERROR":    LevelError,
	"CRITICAL": LevelCritical,
}

// ParseLevel accepts the names DEBUG, INFO, WARNING (or WARN), ERROR and
// CRITICAL in any case.
func ParseLevel(name string) (Level, error) {
	lvl, ok := levelNames[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q (want DEBUG, INFO, WARNING, ERROR or CRITICAL)", name)
	}
	return lvl, nil
}

func (lvl Level) String() string {
	switch lvl {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	}
	return fmt.Sprintf("Level(%d)", int(lvl))
}

// slogLevel maps lvl onto the minimum level handed to l.
func (lvl Level) slogLevel() slog.Level {
	switch lvl {
	case LevelDebug:
		return l.LevelDebug
	case LevelWarn:
		return l.LevelWarn
	case LevelError, LevelCritical:
		return l.LevelError
	}
	return l.LevelInfo
}
