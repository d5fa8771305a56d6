//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gogpu

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/viewport/backend"
	"github.com/gogpu/viewport/hal"
)

func init() {
	backend.Register("gogpu", 50, func() (hal.GPU, error) {
		return NewGPU(), nil
	}, nil)
}

// GPU wraps a gogpu/wgpu core.Instance.
type GPU struct {
	instance *core.Instance
}

// NewGPU creates a gogpu instance.
func NewGPU() *GPU {
	return &GPU{
		instance: core.NewInstance(&gputypes.InstanceDescriptor{
			Backends: gputypes.BackendsPrimary,
			Flags:    0,
		}),
	}
}

// Name returns "gogpu".
func (g *GPU) Name() string { return "gogpu" }

// RequestAdapter selects an adapter from the pure Go core.
func (g *GPU) RequestAdapter(opts *hal.AdapterOptions) (hal.Adapter, error) {
	ropts := &gputypes.RequestAdapterOptions{}
	if opts != nil {
		switch opts.PowerPreference {
		case hal.PowerPreferenceLowPower:
			ropts.PowerPreference = gputypes.PowerPreferenceLowPower
		case hal.PowerPreferenceHighPerformance:
			ropts.PowerPreference = gputypes.PowerPreferenceHighPerformance
		}
	}

	id, err := g.instance.RequestAdapter(ropts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hal.ErrNoAdapter, err)
	}

	a := &adapter{id: id}
	info := a.Info()
	hal.Logger().Info("gogpu: adapter selected",
		slog.String("name", info.Name),
		slog.String("backend", info.Backend))
	return a, nil
}

// CreateSurface creates an offscreen surface. gogpu/wgpu has no window
// surface support yet, so the native handle is ignored.
func (g *GPU) CreateSurface(native any) (hal.Surface, error) {
	return newSurface(), nil
}

// Close releases the instance. Adapters and devices are dropped
// individually; the core instance itself holds no OS resources.
func (g *GPU) Close() {
	g.instance = nil
}

type adapter struct {
	id core.AdapterID
}

func (a *adapter) Info() hal.AdapterInfo {
	info, err := core.GetAdapterInfo(a.id)
	if err != nil {
		return hal.AdapterInfo{Name: "gogpu adapter", Backend: "gogpu"}
	}
	return hal.AdapterInfo{
		Name:    info.Name,
		Vendor:  info.Vendor,
		Driver:  info.Driver,
		Backend: fmt.Sprint(info.Backend),
	}
}

func (a *adapter) RequestDevice(desc *hal.DeviceDescriptor) (hal.Device, hal.Queue, error) {
	label := "viewport-device"
	if desc != nil && desc.Label != "" {
		label = desc.Label
	}

	deviceID, err := core.RequestDevice(a.id, &gputypes.DeviceDescriptor{
		Label:            label,
		RequiredFeatures: nil,
		RequiredLimits:   gputypes.DefaultLimits(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("gogpu: request device: %w", err)
	}

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		_ = core.DeviceDrop(deviceID)
		return nil, nil, fmt.Errorf("gogpu: get device queue: %w", err)
	}

	return &device{id: deviceID}, &queue{id: queueID}, nil
}

// device wraps a core.DeviceID.
type device struct {
	mu sync.Mutex
	id core.DeviceID
}

// CreateRenderPipeline compiles both WGSL stages to SPIR-V with naga and
// returns a pipeline holding the compiled words. Command recording against
// the pure Go core is not wired up yet, so the pipeline is validated but
// inert.
func (d *device) CreateRenderPipeline(desc *hal.PipelineDescriptor) (hal.Pipeline, error) {
	vertexSPIRV, err := compileToSPIRV(desc.VertexWGSL)
	if err != nil {
		return nil, &hal.ShaderCompileError{Stage: "vertex", Err: err}
	}
	fragmentSPIRV := vertexSPIRV
	if desc.FragmentWGSL != desc.VertexWGSL {
		fragmentSPIRV, err = compileToSPIRV(desc.FragmentWGSL)
		if err != nil {
			return nil, &hal.ShaderCompileError{Stage: "fragment", Err: err}
		}
	}

	hal.Logger().Debug("gogpu: pipeline compiled",
		slog.String("label", desc.Label),
		slog.Int("vertex_words", len(vertexSPIRV)),
		slog.Int("fragment_words", len(fragmentSPIRV)))

	return &pipeline{
		label:         desc.Label,
		vertexSPIRV:   vertexSPIRV,
		fragmentSPIRV: fragmentSPIRV,
	}, nil
}

func (d *device) CreateCommandEncoder(label string) (hal.CommandEncoder, error) {
	return &encoder{label: label}, nil
}

func (d *device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.id.IsZero() {
		return
	}
	if err := core.DeviceDrop(d.id); err != nil {
		hal.Logger().Warn("gogpu: device drop failed", slog.Any("err", err))
	}
	d.id = core.DeviceID{}
}

// compileToSPIRV compiles WGSL source to SPIR-V uint32 words.
// SPIR-V is little-endian 32-bit words.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// pipeline holds compiled SPIR-V for both stages.
type pipeline struct {
	label         string
	vertexSPIRV   []uint32
	fragmentSPIRV []uint32
}

func (p *pipeline) Release() {
	p.vertexSPIRV = nil
	p.fragmentSPIRV = nil
}

// queue accepts submissions. Execution on the pure Go core is pending
// command buffer support; submitted buffers are acknowledged and dropped.
type queue struct {
	id core.QueueID
}

func (q *queue) Submit(buffers ...hal.CommandBuffer) {
	for _, b := range buffers {
		if b != nil {
			b.Release()
		}
	}
}

var (
	_ hal.GPU      = (*GPU)(nil)
	_ hal.Adapter  = (*adapter)(nil)
	_ hal.Device   = (*device)(nil)
	_ hal.Queue    = (*queue)(nil)
	_ hal.Pipeline = (*pipeline)(nil)
)
