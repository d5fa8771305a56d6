// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/hal"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Best available backend, vsync presentation:
//	ctx, err := viewport.NewContext()
//
//	// Headless backend for CI:
//	ctx, err := viewport.NewContext(viewport.WithBackend("headless"))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	backend          string
	powerPreference  hal.PowerPreference
	presentMode      hal.PresentMode
	preferredFormats []gputypes.TextureFormat
	acquireTimeout   time.Duration
}

// defaultContextOptions returns the default context options.
func defaultContextOptions() contextOptions {
	return contextOptions{
		presentMode: hal.PresentModeFifo,
		preferredFormats: []gputypes.TextureFormat{
			gputypes.TextureFormatBGRA8Unorm,
			gputypes.TextureFormatRGBA8Unorm,
		},
		acquireTimeout: 100 * time.Millisecond,
	}
}

// WithBackend selects a specific backend by name instead of the best
// available one. The named backend must be registered (imported).
func WithBackend(name string) ContextOption {
	return func(o *contextOptions) {
		o.backend = name
	}
}

// WithPowerPreference selects between integrated and discrete adapters.
func WithPowerPreference(p hal.PowerPreference) ContextOption {
	return func(o *contextOptions) {
		o.powerPreference = p
	}
}

// WithPresentMode sets the present mode used when configuring surfaces.
// Surfaces that do not support the requested mode fall back to FIFO, which
// every surface supports.
func WithPresentMode(m hal.PresentMode) ContextOption {
	return func(o *contextOptions) {
		o.presentMode = m
	}
}

// WithPreferredFormats sets the color format preference order used when
// configuring surfaces. The first format a surface supports wins.
func WithPreferredFormats(formats ...gputypes.TextureFormat) ContextOption {
	return func(o *contextOptions) {
		if len(formats) > 0 {
			o.preferredFormats = formats
		}
	}
}

// WithAcquireTimeout bounds the per-surface wait for a presentable frame.
// A surface that misses the deadline is skipped for that tick rather than
// stalling the others. Zero or negative restores the default of 100ms.
func WithAcquireTimeout(d time.Duration) ContextOption {
	return func(o *contextOptions) {
		if d > 0 {
			o.acquireTimeout = d
		}
	}
}
