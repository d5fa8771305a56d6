// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/viewport/hal"
)

// Color re-exports the hal clear color.
type Color = hal.Color

// RenderPass re-exports the hal render pass for draw callbacks.
type RenderPass = hal.RenderPass

// DrawFunc records the draw commands for one surface's frame. The pass is
// already targeting the surface's acquired image with the clear applied and
// the surface's pipeline bound (when one is set). The callback must not
// call End; the renderer closes the pass.
type DrawFunc func(pass RenderPass, binding *SurfaceBinding)

// RendererOption configures a FrameRenderer during creation.
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	pipeline *PipelineState
	clear    Color
	draw     DrawFunc
}

// WithPipeline sets the default pipeline bound for every surface. Individual
// surfaces can override it with SetSurfacePipeline.
func WithPipeline(p *PipelineState) RendererOption {
	return func(o *rendererOptions) {
		o.pipeline = p
	}
}

// WithClearColor sets the color every frame starts from.
// The default is opaque black.
func WithClearColor(c Color) RendererOption {
	return func(o *rendererOptions) {
		o.clear = c
	}
}

// WithDraw sets the per-surface draw callback. Without one, frames are
// cleared and, when a pipeline is bound, drawn with a single
// three-vertex call.
func WithDraw(fn DrawFunc) RendererOption {
	return func(o *rendererOptions) {
		o.draw = fn
	}
}

// Outcome reports what one surface did during a tick.
type Outcome struct {
	// Window identifies the surface.
	Window WindowID

	// State is the terminal frame state: Presented, Skipped, or Failed.
	State FrameState

	// Err is the surface-scoped error for Failed outcomes, or the
	// non-fatal reason for some Skipped outcomes (e.g. ErrAcquireTimeout).
	Err error
}

// FrameRenderer drives the per-tick frame lifecycle across every registered
// surface: acquire, record, one batched submit, then present in
// registration order.
//
// Surfaces fail independently. A lost swap-chain, an acquire timeout, or a
// window closed mid-tick affects only its own outcome; every other surface
// still presents. RenderTick always returns one Outcome per surface that
// entered the tick, in registration order.
//
// FrameRenderer follows a single-goroutine contract: RenderTick and the
// OnWindowOpened, OnWindowClosed, and OnWindowResized forwarders all run on
// one render goroutine, the way a glfw loop delivers window callbacks on
// the thread that polls events. Registry table queries (Get, Len, All) may
// run on other goroutines.
type FrameRenderer struct {
	ctx      *Context
	registry *SurfaceRegistry
	opts     rendererOptions
	closed   bool
}

// NewFrameRenderer returns a renderer with an empty surface registry.
// It holds a context reference until Close.
func NewFrameRenderer(ctx *Context, opts ...RendererOption) (*FrameRenderer, error) {
	o := rendererOptions{clear: Color{A: 1}}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ctx.retain(); err != nil {
		return nil, err
	}
	return &FrameRenderer{
		ctx:      ctx,
		registry: NewSurfaceRegistry(ctx),
		opts:     o,
	}, nil
}

// Registry returns the renderer's surface registry.
func (r *FrameRenderer) Registry() *SurfaceRegistry { return r.registry }

// OnWindowOpened registers a window; see SurfaceRegistry.Register.
func (r *FrameRenderer) OnWindowOpened(w Window) (*SurfaceBinding, error) {
	if r.closed {
		return nil, ErrContextClosed
	}
	return r.registry.Register(w)
}

// OnWindowClosed unregisters a window; see SurfaceRegistry.Unregister.
func (r *FrameRenderer) OnWindowClosed(id WindowID) error {
	return r.registry.Unregister(id)
}

// OnWindowResized reconfigures a window's swap-chain; see
// SurfaceRegistry.Resize.
func (r *FrameRenderer) OnWindowResized(id WindowID, width, height int) error {
	return r.registry.Resize(id, width, height)
}

// SetSurfacePipeline overrides the default pipeline for one surface.
// Pass nil to restore the default.
func (r *FrameRenderer) SetSurfacePipeline(id WindowID, p *PipelineState) error {
	b := r.registry.Get(id)
	if b == nil {
		return fmt.Errorf("%w: window %d", ErrWindowNotRegistered, id)
	}
	b.pipeline = p
	return nil
}

// pendingFrame is a surface that finished recording and awaits the batched
// submit and present.
type pendingFrame struct {
	binding *SurfaceBinding
	buffer  hal.CommandBuffer
	index   int
}

// RenderTick runs one frame across every registered surface and returns one
// Outcome per surface, in registration order.
//
// The tick has three phases: acquire-and-record per surface, a single
// batched queue submission covering every recorded frame, then presents in
// registration order. Surfaces that skip or fail in the first phase are
// excluded from the batch without disturbing the rest.
func (r *FrameRenderer) RenderTick() []Outcome {
	if r.closed {
		return nil
	}

	bindings := r.registry.beginTick()
	defer r.registry.endTick()

	outcomes := make([]Outcome, len(bindings))
	pending := make([]pendingFrame, 0, len(bindings))

	for i, b := range bindings {
		outcomes[i] = Outcome{Window: b.id}
		state, err := r.acquireAndRecord(b, &pending, i)
		b.state = state
		outcomes[i].State = state
		outcomes[i].Err = err
	}

	// One submission for the whole tick. Closed-mid-recording surfaces
	// already discarded their tickets; their buffers are dropped here.
	buffers := make([]hal.CommandBuffer, 0, len(pending))
	live := pending[:0]
	for _, p := range pending {
		if p.binding.closing {
			p.buffer.Release()
			outcomes[p.index].State = FrameSkipped
			p.binding.state = FrameSkipped
			continue
		}
		buffers = append(buffers, p.buffer)
		live = append(live, p)
	}
	if len(buffers) > 0 {
		r.ctx.queue.Submit(buffers...)
		for _, p := range live {
			p.binding.state = FrameSubmitted
		}
	}

	// Present in registration order.
	for _, p := range live {
		p.binding.ticket.present()
		p.binding.ticket = nil
		p.binding.state = FramePresented
		p.buffer.Release()
		outcomes[p.index].State = FramePresented
	}

	return outcomes
}

// acquireAndRecord runs the per-surface half of a tick: acquire a frame,
// record its commands, and queue it for the batched submit. Returns the
// surface's terminal state for skip/failure paths, or FrameRecording when
// the frame joined the batch.
func (r *FrameRenderer) acquireAndRecord(b *SurfaceBinding, pending *[]pendingFrame, index int) (FrameState, error) {
	if b.closing {
		return FrameSkipped, nil
	}
	if b.unusable {
		return FrameFailed, ErrSurfaceUnusable
	}
	if !b.configured {
		// The window may have regained area since registration.
		if err := b.configure(b.window.Size()); err != nil {
			return FrameFailed, err
		}
		if !b.configured {
			return FrameSkipped, nil
		}
	}

	b.state = FrameAcquiring
	frame, err := b.surface.Acquire(r.ctx.opts.acquireTimeout)
	switch {
	case err == nil:
		b.lostRetried = false
	case errors.Is(err, ErrAcquireTimeout):
		hal.Logger().Warn("viewport: acquire timed out, skipping frame",
			slog.Uint64("window", uint64(b.id)))
		return FrameSkipped, err
	case errors.Is(err, ErrSurfaceLost):
		return r.handleSurfaceLost(b, err)
	case errors.Is(err, ErrContextLost):
		return FrameFailed, err
	default:
		return FrameFailed, err
	}

	b.ticket = &FrameTicket{window: b.id, frame: frame}
	b.state = FrameRecording

	buf, err := r.record(b)
	if err != nil {
		b.ticket.discard()
		b.ticket = nil
		return FrameFailed, err
	}
	// Recording may have closed the window (event callbacks run on the
	// same goroutine); the ticket is already discarded then.
	if b.closing || b.ticket == nil {
		buf.Release()
		return FrameSkipped, nil
	}

	*pending = append(*pending, pendingFrame{binding: b, buffer: buf, index: index})
	return FrameRecording, nil
}

// handleSurfaceLost implements the one-retry policy for lost swap-chains.
// The first loss reconfigures immediately and fails only the current frame;
// the surface renders normally again next tick. A second consecutive loss
// marks the surface unusable.
func (r *FrameRenderer) handleSurfaceLost(b *SurfaceBinding, cause error) (FrameState, error) {
	if b.lostRetried {
		b.unusable = true
		b.configured = false
		hal.Logger().Warn("viewport: surface lost twice, marking unusable",
			slog.Uint64("window", uint64(b.id)))
		return FrameFailed, fmt.Errorf("%w: %w", ErrSurfaceUnusable, cause)
	}
	b.lostRetried = true
	b.configured = false
	if err := b.configure(b.window.Size()); err != nil {
		b.unusable = true
		return FrameFailed, err
	}
	hal.Logger().Warn("viewport: surface lost, reconfigured for next tick",
		slog.Uint64("window", uint64(b.id)))
	return FrameFailed, cause
}

// record encodes one surface's frame: clear, bind the surface's pipeline,
// and run the draw callback.
func (r *FrameRenderer) record(b *SurfaceBinding) (hal.CommandBuffer, error) {
	encoder, err := r.ctx.device.CreateCommandEncoder(
		fmt.Sprintf("window %d frame", b.id))
	if err != nil {
		return nil, err
	}

	pass := encoder.BeginRenderPass(b.ticket.view(), b.surface.DepthView(), r.opts.clear)
	pipeline := b.pipeline
	if pipeline == nil {
		pipeline = r.opts.pipeline
	}
	if pipeline != nil {
		pass.SetPipeline(pipeline.pipeline)
	}
	switch {
	case r.opts.draw != nil:
		r.opts.draw(pass, b)
	case pipeline != nil:
		pass.Draw(3, 1)
	}
	pass.End()

	return encoder.Finish()
}

// Close discards every outstanding frame, unregisters every window, and
// drops the renderer's context reference. The renderer must not be used
// afterwards.
func (r *FrameRenderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.registry.releaseAll()
	r.ctx.release()
}
