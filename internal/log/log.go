// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for uplift using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the default slog logger writing to stderr.
//
//   - quiet:   WARN and ERROR only
//   - normal:  INFO and above
//   - verbose: DEBUG and above
//
// Quiet wins when both flags are set, so piped output stays clean.
func Setup(verbose, quiet bool) {
	SetupWriter(os.Stderr, verbose, quiet)
}

// SetupWriter is Setup with an explicit destination, for tests.
func SetupWriter(w io.Writer, verbose, quiet bool) {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}
