// File: level.go
// Title: Log Levels
// Description: Log levels with their long and short names, parsing and
//              filtering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Names kept in one table, parse errors are standard
//                      INVALID_INPUT errors

package log

import (
	"slices"
	"strings"

	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelAudit is always written regardless of the minimum level
	LevelAudit
)

// levelNames holds the name, the short console tag and accepted aliases,
// indexed by level
var levelNames = [...]struct {
	name    string
	short   string
	aliases []string
}{
	LevelTrace: {"trace", "TRC", nil},
	LevelDebug: {"debug", "DBG", nil},
	LevelInfo:  {"info", "INF", []string{"information"}},
	LevelWarn:  {"warn", "WRN", []string{"warning"}},
	LevelError: {"error", "ERR", nil},
	LevelFatal: {"fatal", "FTL", nil},
	LevelAudit: {"audit", "AUD", nil},
}

func (l Level) valid() bool {
	return l >= 0 && int(l) < len(levelNames)
}

func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].name
}

// ShortString returns the three letter tag used by the console format
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel accepts a level name, its short tag or an alias, ignoring case
// and surrounding space. Unknown input yields LevelInfo and INVALID_INPUT.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for i, n := range levelNames {
		if s == n.name || s == strings.ToLower(n.short) || slices.Contains(n.aliases, s) {
			return Level(i), nil
		}
	}
	return LevelInfo, mdwerrors.InvalidInput(mdwerrors.ModuleLog, "parse_level", level, "trace, debug, info, warn, error, fatal or audit")
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
