// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/viewport/hal"
)

// errEncoderFinished is returned when an encoder is reused after Finish.
var errEncoderFinished = errors.New("headless: encoder already finished")

// clearOp is one recorded render pass, reduced to the work the CPU backend
// actually performs: clearing the target to the pass clear color.
type clearOp struct {
	target *image.RGBA
	clear  hal.Color
}

// encoder records render passes for one submission.
type encoder struct {
	label    string
	ops      []clearOp
	finished bool
}

func (e *encoder) BeginRenderPass(view, depth hal.TextureView, clear hal.Color) hal.RenderPass {
	p := &renderPass{}
	if tv, ok := view.(*textureView); ok {
		p.op = clearOp{target: tv.img, clear: clear}
		p.encoder = e
	}
	return p
}

func (e *encoder) Finish() (hal.CommandBuffer, error) {
	if e.finished {
		return nil, errEncoderFinished
	}
	e.finished = true
	return &commandBuffer{ops: e.ops}, nil
}

// renderPass counts draws; geometry is not rasterized on the CPU backend.
type renderPass struct {
	encoder *encoder
	op      clearOp
	draws   int
	ended   bool
}

func (p *renderPass) SetPipeline(pl hal.Pipeline) {}

func (p *renderPass) Draw(vertexCount, instanceCount uint32) {
	p.draws++
}

func (p *renderPass) End() {
	if p.ended || p.encoder == nil {
		return
	}
	p.ended = true
	p.encoder.ops = append(p.encoder.ops, p.op)
}

// commandBuffer is a finished recording. execute is called by the queue.
type commandBuffer struct {
	ops []clearOp
}

func (b *commandBuffer) Release() {
	b.ops = nil
}

func (b *commandBuffer) execute() {
	for _, op := range b.ops {
		if op.target == nil {
			continue
		}
		src := image.NewUniform(toNRGBA(op.clear))
		draw.Draw(op.target, op.target.Bounds(), src, image.Point{}, draw.Src)
	}
}

// toNRGBA converts a normalized clear color to 8-bit RGBA.
func toNRGBA(c hal.Color) color.NRGBA {
	clamp := func(v float64) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		default:
			return uint8(v*255 + 0.5)
		}
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

var (
	_ hal.CommandEncoder = (*encoder)(nil)
	_ hal.RenderPass     = (*renderPass)(nil)
	_ hal.CommandBuffer  = (*commandBuffer)(nil)
)
