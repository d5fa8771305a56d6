// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"github.com/gogpu/viewport/hal"
)

// FrameState is the per-surface frame lifecycle. Each tick every surface
// advances Idle -> Acquiring -> Recording -> Submitted -> Presented, or
// terminates early in Skipped or Failed. The state resets to Idle at the
// start of the next tick.
type FrameState uint8

const (
	// FrameIdle means no frame work is in progress.
	FrameIdle FrameState = iota

	// FrameAcquiring means the surface is waiting for a presentable image.
	FrameAcquiring

	// FrameRecording means commands are being recorded for the acquired
	// image.
	FrameRecording

	// FrameSubmitted means the recorded commands have been handed to the
	// queue.
	FrameSubmitted

	// FramePresented means the frame was handed to the presentation
	// engine. Terminal for the tick.
	FramePresented

	// FrameSkipped means the surface produced no frame this tick and this
	// is not an error: minimized, unconfigured, or acquire timed out.
	// Terminal for the tick.
	FrameSkipped

	// FrameFailed means a surface-scoped error stopped the frame. Other
	// surfaces are unaffected. Terminal for the tick.
	FrameFailed
)

// String returns the state name.
func (s FrameState) String() string {
	switch s {
	case FrameIdle:
		return "idle"
	case FrameAcquiring:
		return "acquiring"
	case FrameRecording:
		return "recording"
	case FrameSubmitted:
		return "submitted"
	case FramePresented:
		return "presented"
	case FrameSkipped:
		return "skipped"
	case FrameFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the surface's work for the tick.
func (s FrameState) Terminal() bool {
	return s == FramePresented || s == FrameSkipped || s == FrameFailed
}

// FrameTicket is the right to draw into one acquired swap-chain image. A
// surface has at most one outstanding ticket; it must be resolved (presented
// or discarded) before the surface can acquire again.
type FrameTicket struct {
	window   WindowID
	frame    hal.Frame
	resolved bool
}

// Window returns the window the ticket draws to.
func (t *FrameTicket) Window() WindowID { return t.window }

// view returns the color attachment for this frame.
func (t *FrameTicket) view() hal.TextureView { return t.frame.View() }

// present hands the frame to the presentation engine and resolves the
// ticket. No-op if already resolved.
func (t *FrameTicket) present() {
	if t.resolved {
		return
	}
	t.resolved = true
	t.frame.Present()
}

// discard releases the frame without presenting and resolves the ticket.
// No-op if already resolved.
func (t *FrameTicket) discard() {
	if t.resolved {
		return
	}
	t.resolved = true
	t.frame.Discard()
}
