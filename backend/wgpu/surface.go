//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/viewport/hal"
)

// surface wraps a wgpu.Surface plus the depth texture matching its current
// configuration.
type surface struct {
	surface    *wgpu.Surface
	device     *wgpu.Device
	configured bool

	depthTexture *wgpu.Texture
	depthView    *wgpu.TextureView
}

func (s *surface) Capabilities(ad hal.Adapter) hal.SurfaceCapabilities {
	a, ok := ad.(*adapter)
	if !ok {
		return hal.SurfaceCapabilities{}
	}
	caps := s.surface.GetCapabilities(a.adapter)

	out := hal.SurfaceCapabilities{}
	for _, f := range caps.Formats {
		if gf, ok := fromWGPUFormat(f); ok {
			out.Formats = append(out.Formats, gf)
		}
	}
	for _, m := range caps.PresentModes {
		if pm, ok := fromWGPUPresentMode(m); ok {
			out.PresentModes = append(out.PresentModes, pm)
		}
	}
	return out
}

func (s *surface) Configure(a hal.Adapter, d hal.Device, cfg *hal.SurfaceConfig) error {
	ad, ok := a.(*adapter)
	if !ok {
		return fmt.Errorf("wgpu: foreign adapter %T", a)
	}
	dev, ok := d.(*device)
	if !ok {
		return fmt.Errorf("wgpu: foreign device %T", d)
	}

	caps := s.surface.GetCapabilities(ad.adapter)
	if len(caps.Formats) == 0 {
		return fmt.Errorf("wgpu: surface has no presentable formats")
	}

	format, ok := toWGPUFormat(cfg.Format)
	if !ok {
		format = caps.Formats[0]
	}

	conf := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(cfg.Width),
		Height:      uint32(cfg.Height),
		PresentMode: toWGPUPresentMode(cfg.PresentMode),
	}
	// Some drivers report no alpha modes; the zero value asks the
	// implementation to pick one.
	if len(caps.AlphaModes) > 0 {
		conf.AlphaMode = caps.AlphaModes[0]
	}
	s.surface.Configure(ad.adapter, dev.device, &conf)
	s.device = dev.device
	s.configured = true

	if err := s.recreateDepth(cfg.Width, cfg.Height); err != nil {
		return err
	}

	hal.Logger().Info("wgpu: surface configured",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.String("present_mode", cfg.PresentMode.String()))
	return nil
}

func (s *surface) recreateDepth(width, height int) error {
	s.releaseDepth()

	tex, err := s.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "viewport depth",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create depth texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return fmt.Errorf("wgpu: create depth view: %w", err)
	}
	s.depthTexture = tex
	s.depthView = view
	return nil
}

func (s *surface) releaseDepth() {
	if s.depthView != nil {
		s.depthView.Release()
		s.depthView = nil
	}
	if s.depthTexture != nil {
		s.depthTexture.Release()
		s.depthTexture = nil
	}
}

// Acquire obtains the next swap-chain texture. wgpu-native blocks internally
// up to its own deadline; the timeout parameter is advisory here.
func (s *surface) Acquire(timeout time.Duration) (hal.Frame, error) {
	if !s.configured {
		return nil, hal.ErrSurfaceNotConfigured
	}

	tex, err := s.surface.GetCurrentTexture()
	if err != nil {
		return nil, classifyAcquireError(err)
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("wgpu: create frame view: %w", err)
	}

	return &frame{surface: s, texture: tex, view: &textureView{view: view}}, nil
}

func (s *surface) DepthView() hal.TextureView {
	if s.depthView == nil {
		return nil
	}
	return &textureView{view: s.depthView, shared: true}
}

func (s *surface) Release() {
	s.releaseDepth()
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
	s.configured = false
}

// classifyAcquireError maps wgpu-native surface errors to the hal taxonomy.
// wgpu-native reports the surface status in the error text.
func classifyAcquireError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %w", hal.ErrAcquireTimeout, err)
	case strings.Contains(msg, "device"):
		return fmt.Errorf("%w: %w", hal.ErrDeviceLost, err)
	case strings.Contains(msg, "outdated") || strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %w", hal.ErrSurfaceLost, err)
	default:
		return err
	}
}

// frame is one acquired swap-chain texture.
type frame struct {
	surface *surface
	texture *wgpu.Texture
	view    *textureView
	done    bool
}

func (f *frame) View() hal.TextureView { return f.view }

func (f *frame) Present() {
	if f.done {
		return
	}
	f.done = true
	f.surface.surface.Present()
	f.release()
}

func (f *frame) Discard() {
	if f.done {
		return
	}
	f.done = true
	f.release()
}

func (f *frame) release() {
	if f.view != nil && f.view.view != nil {
		f.view.view.Release()
		f.view.view = nil
	}
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

// textureView wraps a wgpu.TextureView. Shared views (the surface depth
// attachment) are owned by the surface and ignore Release.
type textureView struct {
	view   *wgpu.TextureView
	shared bool
}

func (v *textureView) Release() {
	if v.shared || v.view == nil {
		return
	}
	v.view.Release()
	v.view = nil
}

var (
	_ hal.Surface     = (*surface)(nil)
	_ hal.Frame       = (*frame)(nil)
	_ hal.TextureView = (*textureView)(nil)
)
