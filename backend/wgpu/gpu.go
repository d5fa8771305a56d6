//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/viewport/backend"
	"github.com/gogpu/viewport/hal"
)

func init() {
	backend.Register("wgpu", 100, func() (hal.GPU, error) {
		return NewGPU()
	}, nil)
}

// GPU wraps a wgpu.Instance.
type GPU struct {
	instance *wgpu.Instance
}

// NewGPU creates a wgpu instance.
func NewGPU() (*GPU, error) {
	inst := wgpu.CreateInstance(nil)
	if inst == nil {
		return nil, errors.New("wgpu: failed to create instance")
	}
	return &GPU{instance: inst}, nil
}

// Name returns "wgpu".
func (g *GPU) Name() string { return "wgpu" }

// RequestAdapter selects a physical adapter. When a surface has already been
// created from this instance, pass it via CompatibleSurface by creating the
// surface first; adapter selection here uses the instance defaults plus the
// requested power preference.
func (g *GPU) RequestAdapter(opts *hal.AdapterOptions) (hal.Adapter, error) {
	wopts := &wgpu.RequestAdapterOptions{}
	if opts != nil {
		wopts.ForceFallbackAdapter = opts.ForceFallback
		switch opts.PowerPreference {
		case hal.PowerPreferenceLowPower:
			wopts.PowerPreference = wgpu.PowerPreferenceLowPower
		case hal.PowerPreferenceHighPerformance:
			wopts.PowerPreference = wgpu.PowerPreferenceHighPerformance
		}
	}

	a, err := g.instance.RequestAdapter(wopts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hal.ErrNoAdapter, err)
	}

	ad := &adapter{adapter: a}
	hal.Logger().Info("wgpu: adapter selected",
		slog.Bool("fallback", wopts.ForceFallbackAdapter))
	return ad, nil
}

// CreateSurface wraps a native window handle. The handle must be a
// *wgpu.SurfaceDescriptor, typically from wgpuglfw.GetSurfaceDescriptor.
func (g *GPU) CreateSurface(native any) (hal.Surface, error) {
	desc, ok := native.(*wgpu.SurfaceDescriptor)
	if !ok {
		return nil, fmt.Errorf("wgpu: CreateSurface wants *wgpu.SurfaceDescriptor, got %T", native)
	}
	s := g.instance.CreateSurface(desc)
	if s == nil {
		return nil, errors.New("wgpu: failed to create surface")
	}
	return &surface{surface: s}, nil
}

// Close releases the instance.
func (g *GPU) Close() {
	if g.instance != nil {
		g.instance.Release()
		g.instance = nil
	}
}

type adapter struct {
	adapter *wgpu.Adapter
}

func (a *adapter) Info() hal.AdapterInfo {
	// wgpu-native picks the platform API (Vulkan, Metal, D3D12) behind one
	// adapter handle; the binding does not expose the selection.
	return hal.AdapterInfo{
		Name:    "wgpu-native adapter",
		Vendor:  "wgpu",
		Backend: "wgpu",
	}
}

func (a *adapter) RequestDevice(desc *hal.DeviceDescriptor) (hal.Device, hal.Queue, error) {
	label := ""
	if desc != nil {
		label = desc.Label
	}
	d, err := a.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: label,
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("wgpu: request device: %w", err)
	}
	return &device{device: d}, &queue{queue: d.GetQueue()}, nil
}

// device wraps a wgpu.Device.
type device struct {
	device *wgpu.Device
}

func (d *device) CreateCommandEncoder(label string) (hal.CommandEncoder, error) {
	var desc *wgpu.CommandEncoderDescriptor
	if label != "" {
		desc = &wgpu.CommandEncoderDescriptor{Label: label}
	}
	enc, err := d.device.CreateCommandEncoder(desc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	return &encoder{encoder: enc}, nil
}

func (d *device) Close() {
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
}

// queue wraps a wgpu.Queue.
type queue struct {
	queue *wgpu.Queue
}

func (q *queue) Submit(buffers ...hal.CommandBuffer) {
	bufs := make([]*wgpu.CommandBuffer, 0, len(buffers))
	for _, b := range buffers {
		if cb, ok := b.(*commandBuffer); ok && cb.buffer != nil {
			bufs = append(bufs, cb.buffer)
		}
	}
	if len(bufs) == 0 {
		return
	}
	q.queue.Submit(bufs...)
}

var (
	_ hal.GPU     = (*GPU)(nil)
	_ hal.Adapter = (*adapter)(nil)
	_ hal.Device  = (*device)(nil)
	_ hal.Queue   = (*queue)(nil)
)
