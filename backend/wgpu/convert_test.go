//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gputypes"
)

func TestFormatConversionRoundTrip(t *testing.T) {
	formats := []gputypes.TextureFormat{
		gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureFormatBGRA8Unorm,
	}
	for _, f := range formats {
		w, ok := toWGPUFormat(f)
		if !ok {
			t.Fatalf("toWGPUFormat(%v) not supported", f)
		}
		back, ok := fromWGPUFormat(w)
		if !ok || back != f {
			t.Errorf("fromWGPUFormat(toWGPUFormat(%v)) = %v, %v", f, back, ok)
		}
	}
}

// Pipeline creation must reject an unmappable target format before any
// shader modules are compiled, so the conversion has to report failure
// rather than fall back silently.
func TestFormatConversionUnsupported(t *testing.T) {
	if _, ok := toWGPUFormat(gputypes.TextureFormatUndefined); ok {
		t.Error("toWGPUFormat(Undefined) = ok, want rejection")
	}
	if _, ok := toWGPUFormat(gputypes.TextureFormatDepth24PlusStencil8); ok {
		t.Error("toWGPUFormat(Depth24PlusStencil8) = ok, want rejection")
	}
	if _, ok := fromWGPUFormat(wgpu.TextureFormatUndefined); ok {
		t.Error("fromWGPUFormat(Undefined) = ok, want rejection")
	}
}
