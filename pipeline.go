// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/hal"
)

// Topology re-exports the hal primitive topologies.
const (
	TopologyTriangleList  = hal.TopologyTriangleList
	TopologyTriangleStrip = hal.TopologyTriangleStrip
	TopologyLineList      = hal.TopologyLineList
)

// Blend modes re-exported from hal.
const (
	BlendOpaque = hal.BlendOpaque
	BlendAlpha  = hal.BlendAlpha
)

// Vertex formats re-exported from hal.
const (
	VertexFormatFloat32x2 = hal.VertexFormatFloat32x2
	VertexFormatFloat32x3 = hal.VertexFormatFloat32x3
	VertexFormatFloat32x4 = hal.VertexFormatFloat32x4
)

// VertexAttribute re-exports the hal vertex attribute description.
type VertexAttribute = hal.VertexAttribute

// PipelineDescriptor enumerates everything a pipeline compiles from: shader
// stages, vertex layout, and fixed-function state. The render target format
// is not part of the descriptor; pipelines always target the context's
// surface format.
type PipelineDescriptor struct {
	// Label is an optional debug label.
	Label string

	// VertexWGSL and FragmentWGSL are WGSL shader sources. They may hold
	// the same source with two entry points.
	VertexWGSL   string
	FragmentWGSL string

	// VSEntry and FSEntry are the shader entry points.
	// Empty defaults to "vs_main" and "fs_main".
	VSEntry string
	FSEntry string

	// VertexStride is the byte stride of one vertex. Zero is only valid
	// when VertexAttributes is empty (vertex-pulling shaders).
	VertexStride uint64

	// VertexAttributes lays out the vertex buffer.
	VertexAttributes []VertexAttribute

	// Topology assembles primitives; see hal.PrimitiveTopology.
	Topology hal.PrimitiveTopology

	// Blend selects the blend state; see hal.BlendMode.
	Blend hal.BlendMode

	// DepthTest enables depth testing against the surface's depth buffer.
	DepthTest bool

	// TargetFormat is the color format of the render target. Zero
	// (TextureFormatUndefined) targets the context's surface format, which
	// is right for every surface that negotiated the default; surfaces on
	// another format need a pipeline built with theirs.
	TargetFormat gputypes.TextureFormat
}

// PipelineState is a compiled, immutable render pipeline. Safe for
// concurrent use; a single PipelineState may be bound by any number of
// surfaces simultaneously. It holds a context reference until Release.
type PipelineState struct {
	ctx      *Context
	pipeline hal.Pipeline
	label    string

	releaseOnce sync.Once
}

// BuildPipeline validates desc and compiles it into an immutable
// PipelineState targeting the context's surface format.
//
// Structural vertex-layout faults return *IncompatibleLayoutError; shader
// compilation faults return *ShaderCompileError. Either way no pipeline is
// produced and the context is unchanged: two pipelines built from the same
// descriptor are fully independent objects.
func (c *Context) BuildPipeline(desc *PipelineDescriptor) (*PipelineState, error) {
	if err := validateLayout(desc); err != nil {
		return nil, err
	}
	if err := c.retain(); err != nil {
		return nil, err
	}

	target := desc.TargetFormat
	if target == gputypes.TextureFormatUndefined {
		target = c.SurfaceFormat()
	}
	p, err := c.device.CreateRenderPipeline(&hal.PipelineDescriptor{
		Label:            desc.Label,
		VertexWGSL:       desc.VertexWGSL,
		FragmentWGSL:     desc.FragmentWGSL,
		VSEntry:          desc.VSEntry,
		FSEntry:          desc.FSEntry,
		VertexStride:     desc.VertexStride,
		VertexAttributes: desc.VertexAttributes,
		Topology:         desc.Topology,
		Blend:            desc.Blend,
		DepthTest:        desc.DepthTest,
		TargetFormat:     target,
	})
	if err != nil {
		c.release()
		return nil, err
	}

	return &PipelineState{ctx: c, pipeline: p, label: desc.Label}, nil
}

// validateLayout checks the vertex layout for structural faults the GPU
// driver would otherwise reject with an opaque error.
func validateLayout(desc *PipelineDescriptor) error {
	if desc.VertexWGSL == "" {
		return &IncompatibleLayoutError{Reason: "empty vertex shader source"}
	}
	if desc.FragmentWGSL == "" {
		return &IncompatibleLayoutError{Reason: "empty fragment shader source"}
	}
	if len(desc.VertexAttributes) == 0 {
		return nil
	}
	if desc.VertexStride == 0 {
		return &IncompatibleLayoutError{
			Reason: "zero stride with vertex attributes present",
		}
	}
	seen := make(map[uint32]bool, len(desc.VertexAttributes))
	for _, attr := range desc.VertexAttributes {
		if seen[attr.Location] {
			return &IncompatibleLayoutError{
				Reason: fmt.Sprintf("duplicate shader location %d", attr.Location),
			}
		}
		seen[attr.Location] = true
		if end := attr.Offset + attr.Format.Size(); end > desc.VertexStride {
			return &IncompatibleLayoutError{
				Reason: fmt.Sprintf("attribute at location %d ends at byte %d, past stride %d",
					attr.Location, end, desc.VertexStride),
			}
		}
	}
	return nil
}

// Label returns the descriptor's debug label.
func (p *PipelineState) Label() string { return p.label }

// Release destroys the pipeline and drops its context reference.
// Safe to call more than once.
func (p *PipelineState) Release() {
	p.releaseOnce.Do(func() {
		p.pipeline.Release()
		p.ctx.release()
	})
}
