// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport_test

import (
	"testing"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/hal"
)

func TestWithPreferredFormats(t *testing.T) {
	ctx, err := viewport.NewContext(
		viewport.WithBackend("fake"),
		viewport.WithPreferredFormats(gputypes.TextureFormatRGBA8Unorm))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	defer ctx.Close()

	r, err := viewport.NewFrameRenderer(ctx)
	if err != nil {
		t.Fatalf("NewFrameRenderer() error = %v", err)
	}
	defer r.Close()

	b, err := r.OnWindowOpened(&fakeWindow{id: 1, width: 8, height: 8})
	if err != nil {
		t.Fatalf("OnWindowOpened() error = %v", err)
	}
	if got := b.Format(); got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", got)
	}
	if got := currentFake.surfaces[0].lastConfig.Format; got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("configured format = %v, want RGBA8Unorm", got)
	}
}

func TestDefaultFormatNegotiation(t *testing.T) {
	_, r := newTestRenderer(t)

	// The fake surface supports BGRA8 and RGBA8; the default preference
	// order picks BGRA8.
	b, err := r.OnWindowOpened(&fakeWindow{id: 1, width: 8, height: 8})
	if err != nil {
		t.Fatalf("OnWindowOpened() error = %v", err)
	}
	if got := b.Format(); got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format() = %v, want BGRA8Unorm", got)
	}
}

func TestWithAcquireTimeout(t *testing.T) {
	ctx, err := viewport.NewContext(
		viewport.WithBackend("fake"),
		viewport.WithAcquireTimeout(250*time.Millisecond))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	defer ctx.Close()

	r, err := viewport.NewFrameRenderer(ctx)
	if err != nil {
		t.Fatalf("NewFrameRenderer() error = %v", err)
	}
	defer r.Close()

	if _, err := r.OnWindowOpened(&fakeWindow{id: 1, width: 8, height: 8}); err != nil {
		t.Fatalf("OnWindowOpened() error = %v", err)
	}
	r.RenderTick()

	if got := currentFake.surfaces[0].lastTimeout; got != 250*time.Millisecond {
		t.Errorf("acquire timeout = %v, want 250ms", got)
	}
}

func TestWithPresentModeFallback(t *testing.T) {
	// The fake surface only supports FIFO; a mailbox request falls back.
	ctx, err := viewport.NewContext(
		viewport.WithBackend("fake"),
		viewport.WithPresentMode(hal.PresentModeMailbox))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	defer ctx.Close()

	r, err := viewport.NewFrameRenderer(ctx)
	if err != nil {
		t.Fatalf("NewFrameRenderer() error = %v", err)
	}
	defer r.Close()

	if _, err := r.OnWindowOpened(&fakeWindow{id: 1, width: 8, height: 8}); err != nil {
		t.Fatalf("OnWindowOpened() error = %v", err)
	}
	if got := currentFake.surfaces[0].lastConfig.PresentMode; got != hal.PresentModeFifo {
		t.Errorf("configured present mode = %v, want fifo", got)
	}
}

func TestFrameStateString(t *testing.T) {
	states := map[viewport.FrameState]string{
		viewport.FrameIdle:      "idle",
		viewport.FrameAcquiring: "acquiring",
		viewport.FrameRecording: "recording",
		viewport.FrameSubmitted: "submitted",
		viewport.FramePresented: "presented",
		viewport.FrameSkipped:   "skipped",
		viewport.FrameFailed:    "failed",
	}
	for s, want := range states {
		if got := s.String(); got != want {
			t.Errorf("FrameState(%d).String() = %q, want %q", s, got, want)
		}
	}
	for _, s := range []viewport.FrameState{viewport.FramePresented, viewport.FrameSkipped, viewport.FrameFailed} {
		if !s.Terminal() {
			t.Errorf("%v.Terminal() = false, want true", s)
		}
	}
	if viewport.FrameRecording.Terminal() {
		t.Error("recording.Terminal() = true, want false")
	}
}
