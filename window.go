// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

// WindowID is a stable window identity supplied by the windowing layer.
type WindowID uint64

// Window is the collaborator contract for one open window. The windowing
// layer (GLFW, SDL, a test harness) implements it; viewport never creates
// windows itself.
//
// Implementations must keep ID stable for the window's lifetime and report
// the current framebuffer size in pixels. Size may return (0, 0) while the
// window is minimized; such windows are skipped, not failed.
type Window interface {
	// ID returns the stable window identity.
	ID() WindowID

	// Size returns the current framebuffer size in pixels.
	Size() (width, height int)

	// NativeSurface returns the handle the active backend wraps into a
	// presentable surface. The concrete type is backend-specific: the wgpu
	// backend wants a *wgpu.SurfaceDescriptor; the headless backend
	// accepts anything, including nil.
	NativeSurface() any
}
