// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless implements a CPU-only viewport backend.
//
// The backend emulates the full surface lifecycle in memory: a configured
// surface owns a small ring of RGBA images standing in for swap-chain
// textures, Acquire hands them out one at a time, and Present copies the
// written frame into a snapshot readable with Surface.Snapshot.
//
// Shaders are validated with the naga compiler, so pipeline creation fails
// on malformed WGSL exactly as on a GPU backend, but nothing is executed;
// render passes resolve to their clear color.
//
// The backend registers itself as "headless" at priority 10 and is always
// available, which makes it the fallback on machines without a GPU and the
// default in CI.
//
//	import _ "github.com/gogpu/viewport/backend/headless"
package headless
