// Package logging is the logger the engine, CLI and HTTP server share.
// Commands log to stderr so stdout stays clean for command output.
package logging

import "context"

// Logger takes a message plus alternating key/value args:
//
//	log.Info(ctx, "badge unlocked", "badge", id, "xp", xp)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With binds args to every later record, e.g. "component", "api".
	With(args ...any) Logger
}
