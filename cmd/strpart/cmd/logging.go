package cmd

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// newLogger builds the CLI logger: Info level by default, Debug when verbose.
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch format {
	case logFormatText:
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case logFormatJSON:
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s|%s)", format, logFormatText, logFormatJSON)
	}
}
