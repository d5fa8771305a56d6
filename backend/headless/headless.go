// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/viewport/backend"
	"github.com/gogpu/viewport/hal"
)

func init() {
	backend.Register("headless", 10, func() (hal.GPU, error) {
		return NewGPU(), nil
	}, nil)
}

// GPU is the headless instance. It always yields exactly one CPU adapter.
type GPU struct {
	mu     sync.Mutex
	closed bool
}

// NewGPU creates a headless GPU instance.
func NewGPU() *GPU {
	return &GPU{}
}

// Name returns "headless".
func (g *GPU) Name() string { return "headless" }

// RequestAdapter returns the CPU adapter. All options are accepted; there is
// only one adapter to pick.
func (g *GPU) RequestAdapter(opts *hal.AdapterOptions) (hal.Adapter, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil, hal.ErrNoAdapter
	}
	hal.Logger().Debug("headless: adapter selected", slog.String("backend", "cpu"))
	return &adapter{}, nil
}

// CreateSurface creates an in-memory surface. The native handle is ignored;
// any value (including nil) is accepted.
func (g *GPU) CreateSurface(native any) (hal.Surface, error) {
	return newSurface(), nil
}

// Close releases the instance.
func (g *GPU) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}

type adapter struct{}

func (a *adapter) Info() hal.AdapterInfo {
	return hal.AdapterInfo{
		Name:    "headless software rasterizer",
		Vendor:  "gogpu",
		Backend: "cpu",
	}
}

func (a *adapter) RequestDevice(desc *hal.DeviceDescriptor) (hal.Device, hal.Queue, error) {
	d := &device{}
	return d, &queue{}, nil
}

// device is the headless logical device. Pipelines are validated, never
// executed.
type device struct {
	mu     sync.Mutex
	closed bool

	// pipelinesAlive counts created-but-unreleased pipelines; tests use it
	// to check for leaks.
	pipelinesAlive int
}

// CreateRenderPipeline validates both shader stages with naga and returns an
// inert pipeline handle.
func (d *device) CreateRenderPipeline(desc *hal.PipelineDescriptor) (hal.Pipeline, error) {
	if _, err := naga.Compile(desc.VertexWGSL); err != nil {
		return nil, &hal.ShaderCompileError{Stage: "vertex", Err: err}
	}
	if desc.FragmentWGSL != desc.VertexWGSL {
		if _, err := naga.Compile(desc.FragmentWGSL); err != nil {
			return nil, &hal.ShaderCompileError{Stage: "fragment", Err: err}
		}
	}

	d.mu.Lock()
	d.pipelinesAlive++
	d.mu.Unlock()

	hal.Logger().Debug("headless: pipeline created", slog.String("label", desc.Label))
	return &pipeline{device: d, label: desc.Label}, nil
}

func (d *device) CreateCommandEncoder(label string) (hal.CommandEncoder, error) {
	return &encoder{label: label}, nil
}

func (d *device) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
}

// PipelinesAlive reports the number of pipelines created on this device and
// not yet released.
func (d *device) PipelinesAlive() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pipelinesAlive
}

type pipeline struct {
	device *device
	label  string

	once sync.Once
}

func (p *pipeline) Release() {
	p.once.Do(func() {
		p.device.mu.Lock()
		p.device.pipelinesAlive--
		p.device.mu.Unlock()
	})
}

// queue executes submitted command buffers immediately on the calling
// goroutine. Execution means applying each recorded pass's clear color to
// its target image.
type queue struct {
	mu sync.Mutex
}

func (q *queue) Submit(buffers ...hal.CommandBuffer) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, b := range buffers {
		cb, ok := b.(*commandBuffer)
		if !ok {
			continue
		}
		cb.execute()
	}
}

// preferredFormats lists the formats headless surfaces report, in order.
var preferredFormats = []gputypes.TextureFormat{
	gputypes.TextureFormatRGBA8Unorm,
	gputypes.TextureFormatBGRA8Unorm,
}

var (
	_ hal.GPU      = (*GPU)(nil)
	_ hal.Adapter  = (*adapter)(nil)
	_ hal.Device   = (*device)(nil)
	_ hal.Queue    = (*queue)(nil)
	_ hal.Pipeline = (*pipeline)(nil)
)
