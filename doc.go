// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewport manages GPU presentation across a variable number of
// windows: one shared graphics context, one surface binding per window, and
// a frame renderer that fans a single render tick out over every live
// surface.
//
// The core types map onto the WebGPU object model:
//
//   - [Context] owns the adapter, logical device, and command queue.
//     Process-wide, created once.
//   - [SurfaceBinding] owns one window's presentable surface and swap-chain
//     configuration (format, size, present mode).
//   - [PipelineState] is a compiled render pipeline, immutable and shared by
//     reference across any number of surfaces.
//   - [FrameRenderer] drives the per-tick loop: acquire, record, submit,
//     present for each registered surface, with per-surface fault isolation.
//   - [SurfaceRegistry] maps window identity to SurfaceBinding and handles
//     open, close, and resize notifications.
//
// A minimal multi-window program:
//
//	ctx, err := viewport.NewContext()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	pipeline, err := ctx.BuildPipeline(&viewport.PipelineDescriptor{
//		VertexWGSL:   shaderSrc,
//		FragmentWGSL: shaderSrc,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pipeline.Release()
//
//	renderer, err := viewport.NewFrameRenderer(ctx, viewport.WithPipeline(pipeline))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer renderer.Close()
//
//	renderer.OnWindowOpened(windowA)
//	renderer.OnWindowOpened(windowB)
//
//	for running {
//		outcomes := renderer.RenderTick()
//		// inspect outcomes, poll events...
//	}
//
// The event loop, window creation, and input handling are external; the
// renderer only needs a [Window] per surface and a tick call per frame.
//
// GPU access goes through the hal interfaces; concrete backends register
// themselves on import:
//
//	import _ "github.com/gogpu/viewport/backend/wgpu"     // wgpu-native
//	import _ "github.com/gogpu/viewport/backend/headless" // CPU fallback
package viewport
