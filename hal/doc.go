// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hal defines the hardware abstraction layer that viewport renders
// through.
//
// The interfaces here mirror the WebGPU object model at the granularity the
// surface-presentation loop needs: an instance (GPU) hands out adapters and
// window surfaces, an adapter opens a logical device with its submission
// queue, and a configured surface yields one presentable Frame at a time.
//
// Implementations live under backend/ and register themselves with the
// backend registry:
//
//	import _ "github.com/gogpu/viewport/backend/wgpu"     // wgpu-native, presents to windows
//	import _ "github.com/gogpu/viewport/backend/gogpu"    // Pure Go device, offscreen frames
//	import _ "github.com/gogpu/viewport/backend/headless" // CPU emulation, always available
//
// The core package never imports a concrete backend; applications choose one
// by importing it for side effects.
package hal
