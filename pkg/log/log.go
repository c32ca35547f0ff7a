// Package log builds [slog.Handler]s for the command line.
//
// Three formats are supported: "text" renders with charmbracelet/log for
// humans, while "json" and "logfmt" use the standard slog handlers.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.opentelemetry.io/otel/trace"

	charmlog "github.com/charmbracelet/log"
)

// Format is a log output format.
type Format string

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
	FormatText   Format = "text"
)

type contextKey struct{}

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// Formats lists the accepted format names, for flag help.
var Formats = []string{string(FormatText), string(FormatJSON), string(FormatLogfmt)}

// Levels lists the accepted level names, for flag help.
var Levels = []string{"error", "warn", "info", "debug"}

// Options configures [NewHandler].
type Options struct {
	Format Format
	Level  slog.Level
	// Source adds the calling file and line to each record.
	Source bool
}

// ParseOptions parses level and format names into [Options].
func ParseOptions(level, format string) (Options, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	f, err := ParseFormat(format)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return Options{Level: lvl, Format: f, Source: lvl <= slog.LevelDebug}, nil
}

// ParseLevel parses a level name. "warning" is accepted for "warn".
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// ParseFormat parses a format name.
func ParseFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(format)); f {
	case FormatJSON, FormatLogfmt, FormatText:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// NewHandler returns a handler writing to w.
func NewHandler(w io.Writer, opts Options) slog.Handler {
	ho := &slog.HandlerOptions{
		AddSource: opts.Source,
		Level:     opts.Level,
	}

	switch opts.Format {
	case FormatJSON:
		return slog.NewJSONHandler(w, ho)
	case FormatLogfmt:
		return slog.NewTextHandler(w, ho)
	default:
		return newCharmHandler(w, opts)
	}
}

func newCharmHandler(w io.Writer, opts Options) *charmlog.Logger {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(opts.Level), //nolint:gosec // G115: from ParseLevel.
		Formatter:       charmlog.TextFormatter,
		ReportTimestamp: true,
		ReportCaller:    opts.Source,
		TimeFormat:      time.TimeOnly,
	})
	logger.SetColorProfile(termenv.NewOutput(w).Profile)

	return logger
}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// WithContext returns the logger stored in ctx by [NewContext]. Otherwise it
// returns the default logger, annotated with the trace ID of the span in ctx
// when there is one.
func WithContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return slog.Default()
	}

	traceID := sc.TraceID().String()
	if len(traceID) > 8 {
		traceID = traceID[:8]
	}

	return slog.With(slog.String("trace_id", traceID))
}
