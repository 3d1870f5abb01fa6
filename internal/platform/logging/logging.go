// Package logging builds the service's slog loggers and carries the
// request-scoped logger through contexts.
//
//	logger := logging.New("info", "json", os.Stderr, logging.WithRedactFields("ssn"))
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "refreshed", slog.String("resource", name))
//
// Error logs name the operation and the resource and attach the full chain
// with slog.Any("error", err). Inside a request the context logger already
// carries request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

type options struct {
	redactFields []string
}

// Option customizes New.
type Option func(*options)

// WithRedactFields filters additional attribute keys, for example entity
// fields that hold personal data.
func WithRedactFields(names ...string) Option {
	return func(o *options) { o.redactFields = append(o.redactFields, names...) }
}

// New returns a logger writing to w. format "text" selects the text handler
// and anything else JSON. level accepts slog level names in any case,
// including offsets like "warn+2"; unparsable levels mean info. Debug loggers
// also record the source location.
func New(level, format string, w io.Writer, opts ...Option) *slog.Logger {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	lvl := ParseLevel(level)
	hopts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(o.redactFields),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, hopts))
	}
	return slog.New(slog.NewJSONHandler(w, hopts))
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
