// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gogpu implements the viewport backend on the pure Go gogpu/wgpu
// core.
//
// Adapter and device lifecycle run on the real gogpu/wgpu implementation;
// shaders are compiled to SPIR-V with naga at pipeline creation. gogpu/wgpu
// does not yet expose window surfaces, so presentation is emulated offscreen:
// a configured surface hands out in-memory frames and Present is a no-op
// beyond bookkeeping. When surface support lands in gogpu/wgpu the emulation
// path will be replaced.
//
// The backend registers itself as "gogpu" at priority 50. Build with the
// nogpu tag to exclude it.
package gogpu
