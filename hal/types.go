// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"github.com/gogpu/gputypes"
)

// PowerPreference selects between adapters when several are available.
type PowerPreference uint8

const (
	// PowerPreferenceNone lets the backend pick.
	PowerPreferenceNone PowerPreference = iota

	// PowerPreferenceLowPower prefers an integrated adapter.
	PowerPreferenceLowPower

	// PowerPreferenceHighPerformance prefers a discrete adapter.
	PowerPreferenceHighPerformance
)

// AdapterOptions constrains adapter selection.
type AdapterOptions struct {
	// PowerPreference selects between integrated and discrete adapters.
	PowerPreference PowerPreference

	// ForceFallback requests a software rasterizer adapter if the backend
	// has one. Mostly useful in CI.
	ForceFallback bool
}

// AdapterInfo describes a selected adapter.
type AdapterInfo struct {
	// Name is the adapter name (e.g. "NVIDIA GeForce RTX 3080").
	Name string

	// Vendor is the adapter vendor.
	Vendor string

	// Driver is the driver version string, if known.
	Driver string

	// Backend is the graphics API behind the adapter
	// (e.g. "vulkan", "metal", "dx12", "cpu").
	Backend string
}

// DeviceDescriptor configures logical device creation.
type DeviceDescriptor struct {
	// Label is an optional debug label for the device.
	Label string
}

// PresentMode controls how presented frames are scheduled onto the display.
type PresentMode uint8

const (
	// PresentModeFifo queues frames for the next vertical blank (vsync).
	// Always supported.
	PresentModeFifo PresentMode = iota

	// PresentModeImmediate presents without waiting for vertical blank.
	PresentModeImmediate

	// PresentModeMailbox replaces the queued frame with the newest one.
	PresentModeMailbox
)

// String returns the present mode name.
func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "fifo"
	case PresentModeImmediate:
		return "immediate"
	case PresentModeMailbox:
		return "mailbox"
	default:
		return "unknown"
	}
}

// SurfaceCapabilities reports what a surface supports on a given adapter.
type SurfaceCapabilities struct {
	// Formats lists the color formats the surface can present, in the
	// backend's preference order. Empty means presentation is impossible.
	Formats []gputypes.TextureFormat

	// PresentModes lists the supported present modes.
	// PresentModeFifo is always included.
	PresentModes []PresentMode
}

// SurfaceConfig describes one swap-chain configuration.
type SurfaceConfig struct {
	// Width and Height are the swap-chain extent in pixels.
	// Both must be positive.
	Width  int
	Height int

	// Format is the color format of the presentable images.
	Format gputypes.TextureFormat

	// PresentMode schedules presentation; see PresentMode.
	PresentMode PresentMode
}

// Color is a normalized RGBA clear color.
type Color struct {
	R, G, B, A float64
}

// PrimitiveTopology selects how vertices are assembled into primitives.
type PrimitiveTopology uint8

const (
	// TopologyTriangleList assembles independent triangles.
	TopologyTriangleList PrimitiveTopology = iota

	// TopologyTriangleStrip assembles a connected triangle strip.
	TopologyTriangleStrip

	// TopologyLineList assembles independent line segments.
	TopologyLineList
)

// String returns the topology name.
func (t PrimitiveTopology) String() string {
	switch t {
	case TopologyTriangleList:
		return "triangle-list"
	case TopologyTriangleStrip:
		return "triangle-strip"
	case TopologyLineList:
		return "line-list"
	default:
		return "unknown"
	}
}

// BlendMode selects the fixed-function blend state.
type BlendMode uint8

const (
	// BlendOpaque writes source color, ignoring destination.
	BlendOpaque BlendMode = iota

	// BlendAlpha blends source over destination by source alpha.
	BlendAlpha
)

// VertexFormat is the data type of one vertex attribute.
type VertexFormat uint8

const (
	// VertexFormatFloat32x2 is two 32-bit floats.
	VertexFormatFloat32x2 VertexFormat = iota

	// VertexFormatFloat32x3 is three 32-bit floats.
	VertexFormatFloat32x3

	// VertexFormatFloat32x4 is four 32-bit floats.
	VertexFormatFloat32x4
)

// Size returns the attribute size in bytes.
func (f VertexFormat) Size() uint64 {
	switch f {
	case VertexFormatFloat32x2:
		return 8
	case VertexFormatFloat32x3:
		return 12
	case VertexFormatFloat32x4:
		return 16
	default:
		return 0
	}
}

// VertexAttribute describes one attribute within a vertex buffer layout.
type VertexAttribute struct {
	// Format is the attribute data type.
	Format VertexFormat

	// Offset is the byte offset within one vertex.
	Offset uint64

	// Location is the shader input location.
	Location uint32
}

// PipelineDescriptor enumerates everything a render pipeline compiles from:
// shader stages, vertex layout, and fixed-function state.
type PipelineDescriptor struct {
	// Label is an optional debug label.
	Label string

	// VertexWGSL and FragmentWGSL are WGSL shader sources. They may hold
	// the same source with two entry points.
	VertexWGSL   string
	FragmentWGSL string

	// VSEntry and FSEntry are the shader entry points.
	// Empty defaults to "vs_main" and "fs_main".
	VSEntry string
	FSEntry string

	// VertexStride is the byte stride of one vertex. Zero is only valid
	// when VertexAttributes is empty (vertex-pulling shaders).
	VertexStride uint64

	// VertexAttributes lays out the vertex buffer.
	VertexAttributes []VertexAttribute

	// Topology assembles primitives; see PrimitiveTopology.
	Topology PrimitiveTopology

	// Blend selects the blend state; see BlendMode.
	Blend BlendMode

	// DepthTest enables depth testing against the surface's depth buffer.
	DepthTest bool

	// TargetFormat is the color format of the render target the pipeline
	// will draw to. Must match the surface configuration.
	TargetFormat gputypes.TextureFormat
}
