// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/hal"
)

// SurfaceRegistry tracks the set of windows currently bound to surfaces.
// Registration order is preserved: every tick renders and presents surfaces
// in the order their windows were registered, so multi-window frame output
// is deterministic.
//
// Register, Unregister, and Resize touch swap-chain state and must run on
// the goroutine that drives RenderTick, the same single-goroutine contract
// FrameRenderer documents (the glfw model, where PollEvents delivers window
// callbacks on the render thread). The read-only table queries Get, Len,
// and All are internally locked and safe from any goroutine.
type SurfaceRegistry struct {
	ctx *Context

	mu       sync.Mutex
	bindings map[WindowID]*SurfaceBinding
	order    []WindowID

	// inTick defers binding removal while a tick walks the registry.
	inTick bool
}

// NewSurfaceRegistry returns an empty registry bound to ctx. Most callers
// use the registry embedded in FrameRenderer instead of creating one.
func NewSurfaceRegistry(ctx *Context) *SurfaceRegistry {
	return &SurfaceRegistry{
		ctx:      ctx,
		bindings: make(map[WindowID]*SurfaceBinding),
	}
}

// Register wraps the window's native handle in a surface, negotiates a color
// format, and configures the swap-chain at the window's current size.
//
// Format negotiation walks the context's preferred formats and takes the
// first one the surface supports. If none match, Register returns
// *UnsupportedSurfaceFormatError and the window is refused; previously
// registered windows are unaffected.
//
// A window whose Size is zero (minimized at registration) is registered but
// left unconfigured; it is skipped each tick until a resize gives it area.
func (r *SurfaceRegistry) Register(w Window) (*SurfaceBinding, error) {
	id := w.ID()

	r.mu.Lock()
	if _, ok := r.bindings[id]; ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: window %d", ErrWindowAlreadyRegistered, id)
	}
	r.mu.Unlock()

	if err := r.ctx.retain(); err != nil {
		return nil, err
	}

	surface, err := r.ctx.gpu.CreateSurface(w.NativeSurface())
	if err != nil {
		r.ctx.release()
		return nil, fmt.Errorf("viewport: window %d: create surface: %w", id, err)
	}

	caps := surface.Capabilities(r.ctx.adapter)
	format, ok := negotiateFormat(r.ctx.opts.preferredFormats, caps.Formats)
	if !ok {
		surface.Release()
		r.ctx.release()
		return nil, &UnsupportedSurfaceFormatError{Window: id, Supported: caps.Formats}
	}

	mode := r.ctx.opts.presentMode
	if !slices.Contains(caps.PresentModes, mode) {
		mode = hal.PresentModeFifo
	}

	b := &SurfaceBinding{
		ctx:     r.ctx,
		window:  w,
		id:      id,
		surface: surface,
		cfg: hal.SurfaceConfig{
			Format:      format,
			PresentMode: mode,
		},
	}

	width, height := w.Size()
	if err := b.configure(width, height); err != nil {
		b.release()
		return nil, fmt.Errorf("viewport: window %d: configure: %w", id, err)
	}

	r.mu.Lock()
	if _, ok := r.bindings[id]; ok {
		r.mu.Unlock()
		b.release()
		return nil, fmt.Errorf("%w: window %d", ErrWindowAlreadyRegistered, id)
	}
	r.bindings[id] = b
	r.order = append(r.order, id)
	r.mu.Unlock()

	hal.Logger().Info("viewport: window registered",
		slog.Uint64("window", uint64(id)),
		slog.Any("format", format),
		slog.String("present_mode", mode.String()))
	return b, nil
}

// negotiateFormat returns the first preferred format the surface supports.
func negotiateFormat(preferred, supported []gputypes.TextureFormat) (gputypes.TextureFormat, bool) {
	for _, f := range preferred {
		if slices.Contains(supported, f) {
			return f, true
		}
	}
	return gputypes.TextureFormatUndefined, false
}

// Unregister removes a window's binding and destroys its surface. Any
// outstanding frame is discarded, never presented. Called mid-tick, the
// binding is marked for removal and destroyed when the tick completes, so
// the tick's remaining surfaces are undisturbed.
func (r *SurfaceRegistry) Unregister(id WindowID) error {
	r.mu.Lock()
	b, ok := r.bindings[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: window %d", ErrWindowNotRegistered, id)
	}
	if r.inTick {
		b.closing = true
		if b.ticket != nil {
			b.ticket.discard()
			b.ticket = nil
		}
		r.mu.Unlock()
		hal.Logger().Info("viewport: window unregister deferred to end of tick",
			slog.Uint64("window", uint64(id)))
		return nil
	}
	r.remove(id)
	r.mu.Unlock()

	b.release()
	hal.Logger().Info("viewport: window unregistered",
		slog.Uint64("window", uint64(id)))
	return nil
}

// remove deletes the binding entry and its order slot. Caller holds r.mu.
func (r *SurfaceRegistry) remove(id WindowID) {
	delete(r.bindings, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
}

// Resize reconfigures a window's swap-chain for a new size. Idempotent:
// resizing to the current size performs no GPU work. A resize also clears
// the unusable mark, giving a twice-lost surface a fresh swap-chain and a
// fresh chance.
func (r *SurfaceRegistry) Resize(id WindowID, width, height int) error {
	r.mu.Lock()
	b, ok := r.bindings[id]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: window %d", ErrWindowNotRegistered, id)
	}
	if err := b.resize(width, height); err != nil {
		return err
	}
	if b.configured {
		b.unusable = false
		b.lostRetried = false
	}
	return nil
}

// Get returns the binding for a window, or nil if not registered.
func (r *SurfaceRegistry) Get(id WindowID) *SurfaceBinding {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bindings[id]
}

// Len returns the number of registered windows, including any marked for
// end-of-tick removal.
func (r *SurfaceRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bindings)
}

// All iterates the bindings in registration order. The sequence is
// restartable and walks a snapshot, so registering or unregistering during
// iteration is safe.
func (r *SurfaceRegistry) All() iter.Seq[*SurfaceBinding] {
	return func(yield func(*SurfaceBinding) bool) {
		for _, b := range r.snapshot() {
			if !yield(b) {
				return
			}
		}
	}
}

// snapshot copies the bindings in registration order.
func (r *SurfaceRegistry) snapshot() []*SurfaceBinding {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*SurfaceBinding, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bindings[id])
	}
	return out
}

// beginTick snapshots the bindings for one tick and defers removals until
// endTick.
func (r *SurfaceRegistry) beginTick() []*SurfaceBinding {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inTick = true
	out := make([]*SurfaceBinding, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bindings[id])
	}
	return out
}

// endTick removes and releases every binding unregistered during the tick.
func (r *SurfaceRegistry) endTick() {
	r.mu.Lock()
	var closed []*SurfaceBinding
	for id, b := range r.bindings {
		if b.closing {
			closed = append(closed, b)
			r.remove(id)
		}
	}
	r.inTick = false
	r.mu.Unlock()

	for _, b := range closed {
		b.release()
		hal.Logger().Info("viewport: window unregistered",
			slog.Uint64("window", uint64(b.id)))
	}
}

// releaseAll unregisters everything. Used by FrameRenderer.Close.
func (r *SurfaceRegistry) releaseAll() {
	r.mu.Lock()
	all := make([]*SurfaceBinding, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.bindings[id])
	}
	r.bindings = make(map[WindowID]*SurfaceBinding)
	r.order = nil
	r.mu.Unlock()

	for _, b := range all {
		b.release()
	}
}
