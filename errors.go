// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/hal"
)

// Errors shared across the package. The hal sentinels are re-exported so
// callers only need to import viewport.
var (
	// ErrAdapterUnavailable is returned by NewContext when no adapter
	// supports surface presentation. Fatal at startup.
	ErrAdapterUnavailable = hal.ErrNoAdapter

	// ErrSurfaceLost reports a swap-chain that must be reconfigured.
	// The renderer handles one reconfigure-and-retry per surface before
	// escalating to a surface-level failure.
	ErrSurfaceLost = hal.ErrSurfaceLost

	// ErrAcquireTimeout reports that no presentable frame became available
	// within the acquire timeout. Treated as Skipped, not a failure.
	ErrAcquireTimeout = hal.ErrAcquireTimeout

	// ErrContextLost reports loss of the logical device. Unlike a lost
	// surface this is not recoverable per surface; the whole context must
	// be rebuilt and every binding re-registered.
	ErrContextLost = hal.ErrDeviceLost

	// ErrContextClosed is returned by operations on a closed Context.
	ErrContextClosed = errors.New("viewport: context closed")

	// ErrFrameInFlight is returned when a frame is requested while the
	// previous FrameTicket for the same surface is unresolved.
	ErrFrameInFlight = hal.ErrFrameOutstanding

	// ErrSurfaceUnusable marks a surface that reported SurfaceLost twice
	// in a row. The binding stays registered but is no longer rendered;
	// the application should close the window or re-register it.
	ErrSurfaceUnusable = errors.New("viewport: surface unusable")

	// ErrWindowNotRegistered is returned for operations on an unknown
	// window identity.
	ErrWindowNotRegistered = errors.New("viewport: window not registered")

	// ErrWindowAlreadyRegistered is returned when registering a window
	// identity twice.
	ErrWindowAlreadyRegistered = errors.New("viewport: window already registered")
)

// ShaderCompileError is re-exported from hal; pipeline creation returns it
// when a shader stage fails to compile.
type ShaderCompileError = hal.ShaderCompileError

// UnsupportedSurfaceFormatError reports a window whose native surface cannot
// present any format the context supports. The window is refused; other
// windows are unaffected.
type UnsupportedSurfaceFormatError struct {
	// Window is the refused window's identity.
	Window WindowID

	// Supported lists the formats the surface can present, which may be
	// empty if the surface cannot present at all.
	Supported []gputypes.TextureFormat
}

func (e *UnsupportedSurfaceFormatError) Error() string {
	return fmt.Sprintf("viewport: window %d: no usable surface format (surface supports %v)",
		e.Window, e.Supported)
}

// IncompatibleLayoutError reports a pipeline descriptor whose vertex layout
// is structurally invalid. No pipeline is produced.
type IncompatibleLayoutError struct {
	Reason string
}

func (e *IncompatibleLayoutError) Error() string {
	return "viewport: incompatible vertex layout: " + e.Reason
}
