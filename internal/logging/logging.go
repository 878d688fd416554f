// ABOUTME: Structured logging setup built on slog with an extra SUCCESS level
// ABOUTME: Level and format come from LOG_LEVEL / LOG_FORMAT environment knobs
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelSuccess sits between Info and Warn so completed outcomes are visible
// at the default level without reading as warnings.
const LevelSuccess = slog.Level(2)

// levelNames maps custom levels to display names
var levelNames = map[slog.Level]string{
	LevelSuccess: "SUCCESS",
}

// Setup installs the process-wide default logger.
// Format is "text" or "json"; level is one of debug, info, success, warning, error.
func Setup(level, format string) {
	slog.SetDefault(slog.New(newHandler(os.Stderr, level, format)))
}

// newHandler builds a handler writing to w, renaming custom levels
func newHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lv, ok := a.Value.Any().(slog.Level); ok {
					if name, ok := levelNames[lv]; ok {
						a.Value = slog.StringValue(name)
					}
				}
			}
			return a
		},
	}

	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Success logs msg at the SUCCESS level on the default logger
func Success(msg string, args ...any) {
	slog.Default().Log(context.Background(), LevelSuccess, msg, args...)
}

// ParseLevel maps a level name to its slog level, defaulting to Info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "success":
		return LevelSuccess
	case "warning", "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
