// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all backends.
var (
	// ErrNoAdapter is returned when no adapter satisfies the minimum
	// requirements (presentation support).
	ErrNoAdapter = errors.New("hal: no suitable adapter")

	// ErrSurfaceLost is returned by Acquire when the swap-chain is no
	// longer usable and must be reconfigured.
	ErrSurfaceLost = errors.New("hal: surface lost")

	// ErrAcquireTimeout is returned by Acquire when no presentable frame
	// became available within the timeout.
	ErrAcquireTimeout = errors.New("hal: frame acquisition timed out")

	// ErrSurfaceNotConfigured is returned by Acquire before the first
	// successful Configure.
	ErrSurfaceNotConfigured = errors.New("hal: surface not configured")

	// ErrDeviceLost is returned when the logical device is gone.
	// Unlike ErrSurfaceLost this is not recoverable per surface; the whole
	// context must be reinitialized.
	ErrDeviceLost = errors.New("hal: device lost")

	// ErrFrameOutstanding is returned by Acquire while a previous frame of
	// the same surface is still unresolved.
	ErrFrameOutstanding = errors.New("hal: previous frame not yet resolved")
)

// ShaderCompileError reports a shader stage that failed to compile.
// The pipeline it belonged to is not created.
type ShaderCompileError struct {
	// Stage is "vertex" or "fragment".
	Stage string

	// Err is the backend compiler diagnostic.
	Err error
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("hal: %s shader compilation failed: %v", e.Stage, e.Err)
}

func (e *ShaderCompileError) Unwrap() error { return e.Err }
