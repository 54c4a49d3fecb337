// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name           string
		verbose, quiet bool
		debug, info    bool
	}{
		{"default", false, false, false, true},
		{"verbose", true, false, true, true},
		{"quiet", false, true, false, false},
		{"quiet wins over verbose", true, true, false, false},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupWriter(&buf, tt.verbose, tt.quiet)
			h := slog.Default().Handler()

			if got := h.Enabled(ctx, slog.LevelDebug); got != tt.debug {
				t.Errorf("DEBUG enabled = %v, want %v", got, tt.debug)
			}
			if got := h.Enabled(ctx, slog.LevelInfo); got != tt.info {
				t.Errorf("INFO enabled = %v, want %v", got, tt.info)
			}
			if !h.Enabled(ctx, slog.LevelWarn) {
				t.Error("WARN should always be enabled")
			}
		})
	}
}

func TestSetupWriterDestination(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, false, false)

	slog.Info("scan complete", "files", 3)
	if !strings.Contains(buf.String(), "scan complete") {
		t.Errorf("log output missing message: %q", buf.String())
	}
}
