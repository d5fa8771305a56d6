//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/viewport/hal"
)

// CreateRenderPipeline compiles the descriptor's shader stages and fixed
// function state into a wgpu render pipeline.
func (d *device) CreateRenderPipeline(desc *hal.PipelineDescriptor) (hal.Pipeline, error) {
	vsEntry := desc.VSEntry
	if vsEntry == "" {
		vsEntry = "vs_main"
	}
	fsEntry := desc.FSEntry
	if fsEntry == "" {
		fsEntry = "fs_main"
	}

	// Validate fixed-function state before compiling shaders, so error
	// paths never hold live shader modules.
	targetFormat, ok := toWGPUFormat(desc.TargetFormat)
	if !ok {
		return nil, fmt.Errorf("wgpu: unsupported target format %v", desc.TargetFormat)
	}

	vs, err := d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: desc.Label + " vs",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: desc.VertexWGSL,
		},
	})
	if err != nil {
		return nil, &hal.ShaderCompileError{Stage: "vertex", Err: err}
	}

	fs := vs
	if desc.FragmentWGSL != desc.VertexWGSL {
		fs, err = d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
			Label: desc.Label + " fs",
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
				Code: desc.FragmentWGSL,
			},
		})
		if err != nil {
			vs.Release()
			return nil, &hal.ShaderCompileError{Stage: "fragment", Err: err}
		}
	}

	var buffers []wgpu.VertexBufferLayout
	if len(desc.VertexAttributes) > 0 {
		attrs := make([]wgpu.VertexAttribute, len(desc.VertexAttributes))
		for i, a := range desc.VertexAttributes {
			attrs[i] = wgpu.VertexAttribute{
				Format:         toWGPUVertexFormat(a.Format),
				Offset:         a.Offset,
				ShaderLocation: a.Location,
			}
		}
		buffers = []wgpu.VertexBufferLayout{{
			ArrayStride: desc.VertexStride,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes:  attrs,
		}}
	}

	blend := &wgpu.BlendStateReplace
	if desc.Blend == hal.BlendAlpha {
		blend = &wgpu.BlendStateAlphaBlending
	}

	depthCompare := wgpu.CompareFunctionAlways
	if desc.DepthTest {
		depthCompare = wgpu.CompareFunctionLess
	}

	created, err := d.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: desc.Label,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: vsEntry,
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: fsEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    targetFormat,
				Blend:     blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  toWGPUTopology(desc.Topology),
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: desc.DepthTest,
			DepthCompare:      depthCompare,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create render pipeline: %w", err)
	}

	return &pipeline{pipeline: created}, nil
}

type pipeline struct {
	pipeline *wgpu.RenderPipeline
}

func (p *pipeline) Release() {
	if p.pipeline != nil {
		p.pipeline.Release()
		p.pipeline = nil
	}
}

var _ hal.Pipeline = (*pipeline)(nil)
