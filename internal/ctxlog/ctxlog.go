// Package ctxlog carries a slog.Logger through a context.Context so library
// code can log without depending on a package-level logger.
package ctxlog

import (
	"context"
	"log/slog"
)

// ctxKey is unexported to keep this package's context entries collision-free.
type ctxKey struct{}

// WithLogger returns a child context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, falling back to the process
// default logger when none was stored.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
