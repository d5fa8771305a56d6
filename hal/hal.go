// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hal

import "time"

// GPU is the entry point of a backend: an instance that can enumerate
// adapters and wrap native window handles in presentable surfaces.
//
// A GPU must outlive every Adapter, Device, and Surface created from it.
type GPU interface {
	// Name returns the backend identifier (e.g. "wgpu", "gogpu", "headless").
	Name() string

	// RequestAdapter selects a physical adapter matching the given options.
	// Returns ErrNoAdapter if no adapter satisfies the minimum requirements
	// (surface presentation support).
	RequestAdapter(opts *AdapterOptions) (Adapter, error)

	// CreateSurface wraps a native window handle in a presentable surface.
	// The accepted handle type is backend-specific; see the backend's
	// package documentation. The surface is unconfigured until
	// Surface.Configure is called.
	CreateSurface(native any) (Surface, error)

	// Close releases the instance. All adapters, devices, and surfaces
	// derived from it must be released first.
	Close()
}

// Adapter is a physical or logical GPU handle exposed by the backend.
type Adapter interface {
	// Info describes the selected adapter.
	Info() AdapterInfo

	// RequestDevice opens a logical device and its command queue.
	// The device and queue share one lifetime; closing the device
	// invalidates the queue.
	RequestDevice(desc *DeviceDescriptor) (Device, Queue, error)
}

// Device is a logical GPU device. It creates the long-lived resources the
// render loop binds per frame.
type Device interface {
	// CreateRenderPipeline compiles the shader stages and fixed-function
	// state in desc into an immutable pipeline. Shader failures are
	// reported as *ShaderCompileError; no partial pipeline is produced.
	CreateRenderPipeline(desc *PipelineDescriptor) (Pipeline, error)

	// CreateCommandEncoder begins recording a command sequence.
	CreateCommandEncoder(label string) (CommandEncoder, error)

	// Close releases the device and its queue.
	Close()
}

// Queue accepts finished command buffers for asynchronous execution.
// Submissions from a single goroutine execute in submission order; the
// backend serializes concurrent submissions internally.
type Queue interface {
	Submit(buffers ...CommandBuffer)
}

// Surface is a presentable target backed by a swap-chain. A Surface yields
// at most one outstanding Frame at a time; callers must resolve (present or
// discard) the current Frame before acquiring the next.
type Surface interface {
	// Capabilities reports the formats and present modes the surface can
	// present with on the given adapter. An empty Formats slice means the
	// surface cannot present at all for this adapter.
	Capabilities(adapter Adapter) SurfaceCapabilities

	// Configure (re)creates the swap-chain for the given size, format, and
	// present mode. Safe to call repeatedly; each call replaces the
	// previous swap-chain.
	Configure(adapter Adapter, device Device, cfg *SurfaceConfig) error

	// Acquire obtains the next presentable frame, waiting at most timeout.
	// Returns ErrAcquireTimeout if no frame became available in time,
	// ErrSurfaceLost if the swap-chain must be reconfigured, and
	// ErrSurfaceNotConfigured before the first Configure.
	Acquire(timeout time.Duration) (Frame, error)

	// DepthView returns the depth attachment matching the current
	// configuration, or nil if the backend does not allocate one.
	DepthView() TextureView

	// Release destroys the swap-chain and the surface. Any outstanding
	// Frame must be resolved first.
	Release()
}

// Frame is an acquired, not-yet-presented swap-chain image. Its lifetime is
// exactly one frame: acquired, written, then presented or discarded.
type Frame interface {
	// View returns the texture view to use as the color attachment.
	View() TextureView

	// Present hands the frame to the platform presentation engine and
	// releases it. Present returns immediately; the display swap is
	// scheduled by the platform.
	Present()

	// Discard releases the frame without presenting it.
	Discard()
}

// TextureView is an attachment handle for render passes.
type TextureView interface {
	Release()
}

// CommandEncoder records a command sequence for one submission.
type CommandEncoder interface {
	// BeginRenderPass starts a pass targeting view, cleared to clear.
	// depth may be nil for pipelines without depth testing.
	BeginRenderPass(view, depth TextureView, clear Color) RenderPass

	// Finish ends recording and returns the buffer to submit.
	// The encoder must not be reused afterwards.
	Finish() (CommandBuffer, error)
}

// RenderPass records draw commands targeting one attachment set.
type RenderPass interface {
	// SetPipeline binds the pipeline for subsequent draws.
	SetPipeline(p Pipeline)

	// Draw issues a non-indexed draw call.
	Draw(vertexCount, instanceCount uint32)

	// End closes the pass. No commands may be recorded afterwards.
	End()
}

// CommandBuffer is a finished, submittable command sequence.
type CommandBuffer interface {
	Release()
}

// Pipeline is a compiled render pipeline: shader stages plus fixed-function
// state. Immutable and safe for concurrent use once created.
type Pipeline interface {
	Release()
}
