//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package env provides utilities for reading Paradux's environment
// variable configuration.
package env

import (
	"log/slog"
	"os"
	"strings"
)

// LogLevel returns the logging level for Paradux.
//
// It reads PARADUX_LOG_LEVEL and converts it to the corresponding
// slog.Level. Valid values (case-insensitive) are "DEBUG", "INFO",
// "WARN" and "ERROR". An unset or invalid value defaults to
// slog.LevelWarn.
func LogLevel() slog.Level {
	level := strings.ToUpper(os.Getenv("PARADUX_LOG_LEVEL"))

	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Editor returns the external editor Paradux should invoke for the
// edit-* commands, reading $VISUAL then $EDITOR. An empty string means
// no editor is configured.
func Editor() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	return os.Getenv("EDITOR")
}

// BannerEnabled returns whether the startup banner should be printed,
// reading PARADUX_BANNER_ENABLED. Defaults to true.
func BannerEnabled() bool {
	v := os.Getenv("PARADUX_BANNER_ENABLED")
	if v == "" {
		return true
	}
	return strings.EqualFold(v, "true") || v == "1"
}
