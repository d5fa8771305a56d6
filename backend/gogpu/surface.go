//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gogpu

import (
	"sync"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/hal"
)

// surface is the offscreen presentation target. It tracks the swap-chain
// state machine faithfully (configure, acquire, present) without a real
// window behind it.
type surface struct {
	mu sync.Mutex

	cfg         hal.SurfaceConfig
	configured  bool
	outstanding bool
	presented   uint64
}

func newSurface() *surface {
	return &surface{}
}

func (s *surface) Capabilities(adapter hal.Adapter) hal.SurfaceCapabilities {
	return hal.SurfaceCapabilities{
		Formats: []gputypes.TextureFormat{
			gputypes.TextureFormatRGBA8Unorm,
			gputypes.TextureFormatBGRA8Unorm,
		},
		PresentModes: []hal.PresentMode{hal.PresentModeFifo},
	}
}

func (s *surface) Configure(adapter hal.Adapter, device hal.Device, cfg *hal.SurfaceConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = *cfg
	s.configured = true
	return nil
}

func (s *surface) Acquire(timeout time.Duration) (hal.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.configured {
		return nil, hal.ErrSurfaceNotConfigured
	}
	if s.outstanding {
		return nil, hal.ErrFrameOutstanding
	}
	s.outstanding = true
	return &frame{surface: s}, nil
}

func (s *surface) DepthView() hal.TextureView { return nil }

func (s *surface) Release() {
	s.mu.Lock()
	s.configured = false
	s.mu.Unlock()
}

type frame struct {
	surface *surface
	done    bool
}

func (f *frame) View() hal.TextureView { return nopView{} }

func (f *frame) Present() {
	f.resolve(true)
}

func (f *frame) Discard() {
	f.resolve(false)
}

func (f *frame) resolve(presented bool) {
	s := f.surface
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.done {
		return
	}
	f.done = true
	s.outstanding = false
	if presented {
		s.presented++
	}
}

type nopView struct{}

func (nopView) Release() {}

var (
	_ hal.Surface     = (*surface)(nil)
	_ hal.Frame       = (*frame)(nil)
	_ hal.TextureView = nopView{}
)
