package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or zerolog's disabled
// logger when none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent attaches a child logger tagged with a component name.
func WithComponent(ctx context.Context, name string) context.Context {
	child := FromContext(ctx).With().Str("component", name).Logger()
	return child.WithContext(ctx)
}
