//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/hal"
)

func toWGPUFormat(f gputypes.TextureFormat) (wgpu.TextureFormat, bool) {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return wgpu.TextureFormatRGBA8Unorm, true
	case gputypes.TextureFormatBGRA8Unorm:
		return wgpu.TextureFormatBGRA8Unorm, true
	default:
		return wgpu.TextureFormatUndefined, false
	}
}

func fromWGPUFormat(f wgpu.TextureFormat) (gputypes.TextureFormat, bool) {
	switch f {
	case wgpu.TextureFormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm, true
	case wgpu.TextureFormatBGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

func toWGPUPresentMode(m hal.PresentMode) wgpu.PresentMode {
	switch m {
	case hal.PresentModeImmediate:
		return wgpu.PresentModeImmediate
	case hal.PresentModeMailbox:
		return wgpu.PresentModeMailbox
	default:
		return wgpu.PresentModeFifo
	}
}

func fromWGPUPresentMode(m wgpu.PresentMode) (hal.PresentMode, bool) {
	switch m {
	case wgpu.PresentModeFifo:
		return hal.PresentModeFifo, true
	case wgpu.PresentModeImmediate:
		return hal.PresentModeImmediate, true
	case wgpu.PresentModeMailbox:
		return hal.PresentModeMailbox, true
	default:
		return hal.PresentModeFifo, false
	}
}

func toWGPUTopology(t hal.PrimitiveTopology) wgpu.PrimitiveTopology {
	switch t {
	case hal.TopologyTriangleStrip:
		return wgpu.PrimitiveTopologyTriangleStrip
	case hal.TopologyLineList:
		return wgpu.PrimitiveTopologyLineList
	default:
		return wgpu.PrimitiveTopologyTriangleList
	}
}

func toWGPUVertexFormat(f hal.VertexFormat) wgpu.VertexFormat {
	switch f {
	case hal.VertexFormatFloat32x3:
		return wgpu.VertexFormatFloat32x3
	case hal.VertexFormatFloat32x4:
		return wgpu.VertexFormatFloat32x4
	default:
		return wgpu.VertexFormatFloat32x2
	}
}
