// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceProvider exposes the context's device to renderer libraries built on
// the gpucontext ecosystem. A GraphicsContext implements it so canvas and
// scene renderers can share the device instead of creating their own.
//
// DeviceProvider is an alias for gpucontext.DeviceProvider, keeping full
// compatibility with code written against gpucontext.
type DeviceProvider = gpucontext.DeviceProvider

// NullProvider is a DeviceProvider with no device behind it. Useful as a
// placeholder before a context is initialized, and in tests.
type NullProvider struct{}

// Device returns nil.
func (NullProvider) Device() gpucontext.Device { return nil }

// Queue returns nil.
func (NullProvider) Queue() gpucontext.Queue { return nil }

// Adapter returns nil.
func (NullProvider) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the undefined format.
func (NullProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns a zero adapter description.
func (NullProvider) AdapterInfo() gpucontext.AdapterInfo {
	var info gpucontext.AdapterInfo
	return info
}

var _ DeviceProvider = NullProvider{}
