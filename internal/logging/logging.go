// Package logging builds the CLI's slog.Logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Options selects the level and handler format of a logger.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // text or json
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return slog.LevelWarn, true
	case types.LogLevelDebug:
		return slog.LevelDebug, true
	case types.LogLevelInfo:
		return slog.LevelInfo, true
	case types.LogLevelWarn:
		return slog.LevelWarn, true
	case types.LogLevelError:
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New returns a logger writing to w. An unrecognized level or format falls
// back to the default and the fallback is logged as a warning.
func New(w io.Writer, options Options) *slog.Logger {
	lvl, ok := level(options.Level)
	if !ok {
		bad := options.Level
		options.Level = ""
		logger := New(w, options)
		logger.Warn("could not parse logger level", "level", bad)
		return logger
	}
	opts := slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(options.Format) {
	case types.FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &opts))
	case "", types.FormatText:
		return slog.New(slog.NewTextHandler(w, &opts))
	default:
		bad := options.Format
		options.Format = types.FormatText
		logger := New(w, options)
		logger.Warn("could not parse logger format", "format", bad)
		return logger
	}
}
