package logger

import (
	"context"
	"log/slog"
)

type runIDContextKey struct{}

// WithRunID stores the compilation run identifier in ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDContextKey{}, id)
}

// RunIDFromContext returns the run identifier stored in ctx, or "".
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDContextKey{}).(string)
	return id
}

// RunIDExtractor returns a ContextExtractor that adds "run_id" to every
// record logged with a context carrying one.
func RunIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := RunIDFromContext(ctx); id != "" {
			return slog.String("run_id", id), true
		}
		return slog.Attr{}, false
	}
}
