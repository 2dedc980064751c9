//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package log provides Paradux's structured logger and audit trail.
package log

import (
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/paradux/paradux/internal/env"
)

var logger *slog.Logger
var loggerMutex sync.Mutex

// Log returns a thread-safe singleton slog.Logger configured for JSON
// output on stderr, so the CLI's user-facing stdout stays uncluttered.
// If the logger hasn't been initialized, it creates a new instance at
// the level reported by env.LogLevel. Subsequent calls return the same
// instance.
func Log() *slog.Logger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if logger != nil {
		return logger
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: env.LogLevel(),
	})
	logger = slog.New(handler)
	return logger
}

// Fatal logs a message and then calls os.Exit(1).
func Fatal(msg string) {
	log.Fatal(msg)
}

// FatalF logs a formatted message and then calls os.Exit(1).
func FatalF(format string, args ...any) {
	log.Fatalf(format, args...)
}

// FatalLn logs a message with a line feed and then calls os.Exit(1).
func FatalLn(args ...any) {
	log.Fatalln(args...)
}
