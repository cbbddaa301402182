// Package logging defines the structured-logging interface used by the blog
// client. The production implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "posts fetched", "count", len(posts), "source", "api")
type Logger interface {
	// Debug logs diagnostics such as swallowed recovery attempts.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs recoverable conditions: fallback content served, cache not persisted.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures surfaced to the user.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
