package log

import (
	"context"

	"github.com/go-logr/logr"
)

func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}

func WithLogger(ctx context.Context, logger logr.Logger) context.Context {
	return logr.NewContext(ctx, logger)
}

// Named returns the context logger with name appended to its name.
func Named(ctx context.Context, name string) logr.Logger {
	return FromContext(ctx).WithName(name)
}
