// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport_test

import (
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/backend"
	"github.com/gogpu/viewport/hal"
)

// The fake backend is a fully scripted hal implementation. Surface behavior
// is driven by the fakeScript passed through Window.NativeSurface, so tests
// can stage acquire errors and format restrictions per window.

func init() {
	backend.Register("fake", 1, func() (hal.GPU, error) {
		currentFake = newFakeGPU()
		return currentFake, nil
	}, nil)
}

// currentFake is the instance behind the most recent NewContext call.
// Root tests run sequentially, so a package variable is sufficient.
var currentFake *fakeGPU

// fakeScript stages per-surface behavior.
type fakeScript struct {
	// acquireErrs is a queue of errors returned by successive Acquire
	// calls before frames start succeeding.
	acquireErrs []error

	// formats overrides the surface's supported formats when non-nil.
	formats []gputypes.TextureFormat
}

type fakeGPU struct {
	closed bool

	// surfaces lists every surface created, in creation order, released
	// ones included. Tests index into it to inspect per-surface counters.
	surfaces []*fakeSurface

	surfacesAlive  int
	buffersAlive   int
	pipelinesAlive int
	submitCalls    int
	submittedTotal int

	// boundPipelines records every SetPipeline call in recording order.
	boundPipelines []hal.Pipeline
}

func newFakeGPU() *fakeGPU { return &fakeGPU{} }

func (g *fakeGPU) Name() string { return "fake" }

func (g *fakeGPU) RequestAdapter(opts *hal.AdapterOptions) (hal.Adapter, error) {
	return &fakeAdapter{gpu: g}, nil
}

func (g *fakeGPU) CreateSurface(native any) (hal.Surface, error) {
	script, _ := native.(*fakeScript)
	if script == nil {
		script = &fakeScript{}
	}
	g.surfacesAlive++
	s := &fakeSurface{gpu: g, script: script}
	g.surfaces = append(g.surfaces, s)
	return s, nil
}

func (g *fakeGPU) Close() { g.closed = true }

type fakeAdapter struct {
	gpu *fakeGPU
}

func (a *fakeAdapter) Info() hal.AdapterInfo {
	return hal.AdapterInfo{Name: "fake adapter", Vendor: "test", Backend: "none"}
}

func (a *fakeAdapter) RequestDevice(desc *hal.DeviceDescriptor) (hal.Device, hal.Queue, error) {
	return &fakeDevice{gpu: a.gpu}, &fakeQueue{gpu: a.gpu}, nil
}

type fakeDevice struct {
	gpu *fakeGPU
}

func (d *fakeDevice) CreateRenderPipeline(desc *hal.PipelineDescriptor) (hal.Pipeline, error) {
	d.gpu.pipelinesAlive++
	return &fakePipeline{gpu: d.gpu}, nil
}

func (d *fakeDevice) CreateCommandEncoder(label string) (hal.CommandEncoder, error) {
	return &fakeEncoder{gpu: d.gpu}, nil
}

func (d *fakeDevice) Close() {}

type fakeQueue struct {
	gpu *fakeGPU
}

func (q *fakeQueue) Submit(buffers ...hal.CommandBuffer) {
	q.gpu.submitCalls++
	q.gpu.submittedTotal += len(buffers)
}

type fakePipeline struct {
	gpu      *fakeGPU
	released bool
}

func (p *fakePipeline) Release() {
	if !p.released {
		p.released = true
		p.gpu.pipelinesAlive--
	}
}

type fakeSurface struct {
	gpu    *fakeGPU
	script *fakeScript

	configured     bool
	configureCount int
	lastConfig     hal.SurfaceConfig
	lastTimeout    time.Duration
	outstanding    bool
	presented      int
	discarded      int
	released       bool
}

func (s *fakeSurface) Capabilities(adapter hal.Adapter) hal.SurfaceCapabilities {
	formats := s.script.formats
	if formats == nil {
		formats = []gputypes.TextureFormat{
			gputypes.TextureFormatBGRA8Unorm,
			gputypes.TextureFormatRGBA8Unorm,
		}
	}
	return hal.SurfaceCapabilities{
		Formats:      formats,
		PresentModes: []hal.PresentMode{hal.PresentModeFifo},
	}
}

func (s *fakeSurface) Configure(adapter hal.Adapter, device hal.Device, cfg *hal.SurfaceConfig) error {
	s.configured = true
	s.configureCount++
	s.lastConfig = *cfg
	return nil
}

func (s *fakeSurface) Acquire(timeout time.Duration) (hal.Frame, error) {
	s.lastTimeout = timeout
	if !s.configured {
		return nil, hal.ErrSurfaceNotConfigured
	}
	if s.outstanding {
		return nil, hal.ErrFrameOutstanding
	}
	if len(s.script.acquireErrs) > 0 {
		err := s.script.acquireErrs[0]
		s.script.acquireErrs = s.script.acquireErrs[1:]
		if err == hal.ErrSurfaceLost {
			s.configured = false
		}
		return nil, err
	}
	s.outstanding = true
	return &fakeFrame{surface: s}, nil
}

func (s *fakeSurface) DepthView() hal.TextureView { return nil }

func (s *fakeSurface) Release() {
	if !s.released {
		s.released = true
		s.gpu.surfacesAlive--
	}
}

type fakeFrame struct {
	surface  *fakeSurface
	resolved bool
}

func (f *fakeFrame) View() hal.TextureView { return fakeView{} }

func (f *fakeFrame) Present() {
	if !f.resolved {
		f.resolved = true
		f.surface.outstanding = false
		f.surface.presented++
	}
}

func (f *fakeFrame) Discard() {
	if !f.resolved {
		f.resolved = true
		f.surface.outstanding = false
		f.surface.discarded++
	}
}

type fakeView struct{}

func (fakeView) Release() {}

type fakeEncoder struct {
	gpu *fakeGPU
}

func (e *fakeEncoder) BeginRenderPass(view, depth hal.TextureView, clear hal.Color) hal.RenderPass {
	return &fakePass{gpu: e.gpu}
}

func (e *fakeEncoder) Finish() (hal.CommandBuffer, error) {
	e.gpu.buffersAlive++
	return &fakeBuffer{gpu: e.gpu}, nil
}

type fakePass struct {
	gpu *fakeGPU
}

func (p *fakePass) SetPipeline(pipeline hal.Pipeline) {
	p.gpu.boundPipelines = append(p.gpu.boundPipelines, pipeline)
}

func (p *fakePass) Draw(vertexCount, instanceCount uint32) {}

func (p *fakePass) End() {}

type fakeBuffer struct {
	gpu      *fakeGPU
	released bool
}

func (b *fakeBuffer) Release() {
	if !b.released {
		b.released = true
		b.gpu.buffersAlive--
	}
}

// fakeWindow implements viewport.Window for tests.
type fakeWindow struct {
	id     viewport.WindowID
	width  int
	height int
	script *fakeScript
}

func (w *fakeWindow) ID() viewport.WindowID { return w.id }
func (w *fakeWindow) Size() (int, int)      { return w.width, w.height }
func (w *fakeWindow) NativeSurface() any    { return w.script }

// newFakeContext opens a context on the fake backend.
func newFakeContext() (*viewport.Context, error) {
	return viewport.NewContext(viewport.WithBackend("fake"))
}
