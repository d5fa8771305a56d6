//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/viewport/hal"
)

// encoder wraps a wgpu.CommandEncoder.
type encoder struct {
	encoder  *wgpu.CommandEncoder
	finished bool
}

func (e *encoder) BeginRenderPass(view, depth hal.TextureView, clear hal.Color) hal.RenderPass {
	desc := &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view.(*textureView).view,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: clear.R, G: clear.G, B: clear.B, A: clear.A,
			},
		}},
	}
	if depth != nil {
		desc.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            depth.(*textureView).view,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		}
	}
	return &renderPass{pass: e.encoder.BeginRenderPass(desc)}
}

func (e *encoder) Finish() (hal.CommandBuffer, error) {
	if e.finished {
		return nil, errors.New("wgpu: encoder already finished")
	}
	e.finished = true

	buf, err := e.encoder.Finish(nil)
	if err != nil {
		e.encoder.Release()
		e.encoder = nil
		return nil, fmt.Errorf("wgpu: finish encoder: %w", err)
	}
	e.encoder.Release()
	e.encoder = nil
	return &commandBuffer{buffer: buf}, nil
}

// renderPass wraps a wgpu.RenderPassEncoder.
type renderPass struct {
	pass  *wgpu.RenderPassEncoder
	ended bool
}

func (p *renderPass) SetPipeline(pl hal.Pipeline) {
	if wp, ok := pl.(*pipeline); ok && wp.pipeline != nil {
		p.pass.SetPipeline(wp.pipeline)
	}
}

func (p *renderPass) Draw(vertexCount, instanceCount uint32) {
	p.pass.Draw(vertexCount, instanceCount, 0, 0)
}

func (p *renderPass) End() {
	if p.ended {
		return
	}
	p.ended = true
	p.pass.End()
	p.pass.Release()
	p.pass = nil
}

// commandBuffer wraps a wgpu.CommandBuffer.
type commandBuffer struct {
	buffer *wgpu.CommandBuffer
}

func (b *commandBuffer) Release() {
	if b.buffer != nil {
		b.buffer.Release()
		b.buffer = nil
	}
}

var (
	_ hal.CommandEncoder = (*encoder)(nil)
	_ hal.RenderPass     = (*renderPass)(nil)
	_ hal.CommandBuffer  = (*commandBuffer)(nil)
)
