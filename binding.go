// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/hal"
)

// SurfaceBinding ties one window to its presentable surface and swap-chain
// configuration. Bindings are created by SurfaceRegistry.Register and
// destroyed by Unregister; applications observe them but never construct
// them directly.
//
// A binding holds a context reference for its lifetime, so a bound surface
// always outlives the frames drawn into it.
type SurfaceBinding struct {
	ctx     *Context
	window  Window
	id      WindowID
	surface hal.Surface
	cfg     hal.SurfaceConfig

	// configured is false until the first successful Configure and after
	// the swap-chain is lost.
	configured bool

	// configureCount counts successful swap-chain configurations.
	// Idempotent resizes do not increment it.
	configureCount int

	// lostRetried marks that the previous tick already spent this
	// surface's one reconfigure-and-retry for a lost swap-chain. A second
	// consecutive loss makes the binding unusable.
	lostRetried bool

	// unusable marks a surface that lost its swap-chain twice in a row.
	// The binding stays registered but produces Failed outcomes until the
	// window is closed or re-registered.
	unusable bool

	// closing marks a binding unregistered mid-tick. Its ticket is
	// discarded and the binding is removed once the tick completes.
	closing bool

	// state is the frame lifecycle position for the current tick.
	state FrameState

	// ticket is the outstanding frame, if any. At most one per binding.
	ticket *FrameTicket

	// pipeline overrides the renderer's default pipeline for this surface,
	// or nil to use the default.
	pipeline *PipelineState
}

// Window returns the bound window's identity.
func (b *SurfaceBinding) Window() WindowID { return b.id }

// Format returns the negotiated surface color format.
func (b *SurfaceBinding) Format() gputypes.TextureFormat { return b.cfg.Format }

// Size returns the current swap-chain extent in pixels. Zero until the
// first configuration.
func (b *SurfaceBinding) Size() (width, height int) {
	return b.cfg.Width, b.cfg.Height
}

// State returns the binding's frame state for the current tick.
func (b *SurfaceBinding) State() FrameState { return b.state }

// Usable reports whether the surface can still produce frames. It becomes
// false after two consecutive swap-chain losses.
func (b *SurfaceBinding) Usable() bool { return !b.unusable }

// ConfigureCount returns how many times the swap-chain has been
// (re)configured. Idempotent resizes do not count.
func (b *SurfaceBinding) ConfigureCount() int { return b.configureCount }

// configure (re)creates the swap-chain at the given size. Zero-area sizes
// leave the binding unconfigured without error; such surfaces are skipped
// each tick until they regain area.
func (b *SurfaceBinding) configure(width, height int) error {
	if width <= 0 || height <= 0 {
		b.configured = false
		return nil
	}
	b.cfg.Width = width
	b.cfg.Height = height
	if err := b.surface.Configure(b.ctx.adapter, b.ctx.device, &b.cfg); err != nil {
		b.configured = false
		return err
	}
	b.configured = true
	b.configureCount++
	hal.Logger().Info("viewport: surface configured",
		slog.Uint64("window", uint64(b.id)),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Any("format", b.cfg.Format))
	return nil
}

// resize reconfigures the swap-chain for a new window size. Same-size calls
// on a configured surface are no-ops: resize storms from the windowing layer
// cost nothing.
func (b *SurfaceBinding) resize(width, height int) error {
	if b.configured && width == b.cfg.Width && height == b.cfg.Height {
		return nil
	}
	return b.configure(width, height)
}

// release discards any outstanding ticket, destroys the surface, and drops
// the binding's context reference.
func (b *SurfaceBinding) release() {
	if b.ticket != nil {
		b.ticket.discard()
		b.ticket = nil
	}
	b.surface.Release()
	b.ctx.release()
}
