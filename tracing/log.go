// Package tracing provides ambient observability for a mafic
// simulation: structured per-primitive trace logging and a
// human-readable dump of the current signal state. Nothing in this
// package affects scheduling outcomes; it only observes.
package tracing

import (
	"context"
	"log/slog"
)

// LevelTrace sits just below slog.LevelInfo and carries the per-primitive
// sample/drive/assign/commit lines that are too noisy for normal
// operation but invaluable when a cycle stalls.
const LevelTrace slog.Level = slog.LevelInfo - 1

// Trace logs msg at LevelTrace using the default slog logger. It is a
// no-op unless the configured handler's level is at or below
// LevelTrace.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
