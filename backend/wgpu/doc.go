// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu implements the viewport backend on wgpu-native through
// cogentcore/webgpu.
//
// This is the backend that presents to real windows. CreateSurface accepts a
// *wgpu.SurfaceDescriptor; for GLFW windows, obtain one with
// wgpuglfw.GetSurfaceDescriptor:
//
//	import "github.com/cogentcore/webgpu/wgpuglfw"
//
//	s, err := gpu.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
//
// The backend registers itself as "wgpu" at priority 100. Build with the
// nogpu tag to exclude it.
package wgpu
