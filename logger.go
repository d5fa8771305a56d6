// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"log/slog"

	"github.com/gogpu/viewport/hal"
)

// SetLogger configures the logger for viewport and all backend packages.
// By default viewport produces no log output. Pass nil to restore the
// default silent behavior.
//
// SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: per-frame diagnostics (acquire, submit, present)
//   - [slog.LevelInfo]: lifecycle events (adapter selected, surface configured)
//   - [slog.LevelWarn]: recoverable faults (surface lost, acquire timeout)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	viewport.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) { hal.SetLogger(l) }

// Logger returns the current logger shared with the backend packages.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger { return hal.Logger() }
