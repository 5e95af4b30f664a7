// Package logger builds the slog loggers used across the lineage system: the
// pretty CLI logger, the JSON run log and the tee between them.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

type config struct {
	level  slog.Level
	format Format
	source bool
	writer io.Writer
}

// New creates a *slog.Logger. By default it writes slog's text format at Info
// level to os.Stdout.
func New(opts ...Option) *slog.Logger {
	c := &config{
		level:  slog.LevelInfo,
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.writer == nil {
		c.writer = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     c.level,
		AddSource: c.source,
	}

	switch c.format {
	case FormatPretty:
		return slog.New(newPrettyHandler(c))
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(c.writer, handlerOpts))
	default:
		return slog.New(slog.NewTextHandler(c.writer, handlerOpts))
	}
}

// OpenRunLog opens path for appending and returns a JSON logger writing to
// it. The returned closer closes the file. Earlier runs are never truncated.
func OpenRunLog(path string, opts ...Option) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening run log: %w", err)
	}

	opts = append(opts, WithFormat(FormatJSON), WithWriter(f))
	return New(opts...), f, nil
}

// Nop returns a logger that discards everything. Components default to it when
// no logger is configured.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newPrettyHandler(c *config) *charmlog.Logger {
	level := charmlog.InfoLevel
	if c.level <= slog.LevelDebug {
		level = charmlog.DebugLevel
	}

	return charmlog.NewWithOptions(c.writer, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    c.source,
		TimeFormat:      "15:04:05",
	})
}
