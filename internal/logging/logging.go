// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the process-wide slog logger used for
// diagnostics. Console reports are not logged; they go to stdout directly.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pdiddy/logstrip/pkg/types"
)

// ParseLevel maps a config level name to a slog level. Unknown or empty
// names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds a text logger writing to w at the configured level and
// installs it as the slog default.
func Setup(cfg types.LogConfig, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339))
			}
			return a
		},
	})

	l := slog.New(h)
	slog.SetDefault(l)
	return l
}
