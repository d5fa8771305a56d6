//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gogpu

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/backend"
	"github.com/gogpu/viewport/hal"
)

func TestRegistered(t *testing.T) {
	entry, ok := backend.Get("gogpu")
	if !ok {
		t.Fatal("gogpu backend not registered")
	}
	if entry.Priority != 50 {
		t.Errorf("priority = %d, want 50", entry.Priority)
	}
}

func TestSurfaceLifecycle(t *testing.T) {
	gpu := NewGPU()
	defer gpu.Close()

	s, err := gpu.CreateSurface(nil)
	if err != nil {
		t.Fatalf("CreateSurface() error = %v", err)
	}

	if _, err := s.Acquire(time.Second); !errors.Is(err, hal.ErrSurfaceNotConfigured) {
		t.Fatalf("Acquire() before Configure error = %v, want ErrSurfaceNotConfigured", err)
	}

	cfg := &hal.SurfaceConfig{Width: 32, Height: 32, Format: gputypes.TextureFormatRGBA8Unorm}
	if err := s.Configure(nil, nil, cfg); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	f, err := s.Acquire(time.Second)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if _, err := s.Acquire(time.Second); !errors.Is(err, hal.ErrFrameOutstanding) {
		t.Errorf("second Acquire() error = %v, want ErrFrameOutstanding", err)
	}
	f.Present()

	if _, err := s.Acquire(time.Second); err != nil {
		t.Errorf("Acquire() after Present error = %v", err)
	}
}

func TestCompileToSPIRV(t *testing.T) {
	const src = `
@vertex
fn vs_main() -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`
	words, err := compileToSPIRV(src)
	if err != nil {
		t.Fatalf("compileToSPIRV() error = %v", err)
	}
	if len(words) == 0 {
		t.Fatal("compileToSPIRV() returned no words")
	}
	// SPIR-V magic number.
	if words[0] != 0x07230203 {
		t.Errorf("words[0] = %#x, want SPIR-V magic 0x07230203", words[0])
	}
}

func TestCompileToSPIRVInvalid(t *testing.T) {
	if _, err := compileToSPIRV("not a shader"); err == nil {
		t.Error("compileToSPIRV(invalid) should fail")
	}
}
