//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gogpu

import (
	"errors"

	"github.com/gogpu/viewport/hal"
)

// encoder records the pass structure without executing it; the pure Go core
// does not run render commands yet.
type encoder struct {
	label    string
	finished bool
}

func (e *encoder) BeginRenderPass(view, depth hal.TextureView, clear hal.Color) hal.RenderPass {
	return &renderPass{}
}

func (e *encoder) Finish() (hal.CommandBuffer, error) {
	if e.finished {
		return nil, errors.New("gogpu: encoder already finished")
	}
	e.finished = true
	return commandBuffer{}, nil
}

type renderPass struct {
	ended bool
}

func (p *renderPass) SetPipeline(pl hal.Pipeline) {}

func (p *renderPass) Draw(vertexCount, instanceCount uint32) {}

func (p *renderPass) End() { p.ended = true }

type commandBuffer struct{}

func (commandBuffer) Release() {}

var (
	_ hal.CommandEncoder = (*encoder)(nil)
	_ hal.RenderPass     = (*renderPass)(nil)
	_ hal.CommandBuffer  = commandBuffer{}
)
