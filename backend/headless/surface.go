// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"image"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/viewport/hal"
)

// frameRingSize is the number of emulated swap-chain images.
const frameRingSize = 3

// Surface is an in-memory presentable surface. It emulates a swap-chain
// with a ring of RGBA images and keeps the last presented frame readable
// via Snapshot.
type Surface struct {
	mu sync.Mutex

	cfg        hal.SurfaceConfig
	configured bool
	released   bool

	ring        [frameRingSize]*image.RGBA
	next        int
	outstanding bool

	// snapshot holds the last presented frame.
	snapshot *image.RGBA

	// loseNext forces the next Acquire to report a lost surface.
	loseNext bool

	configureCount int
	presentCount   int
}

func newSurface() *Surface {
	return &Surface{}
}

// Capabilities reports the formats the surface can present. The headless
// surface accepts any adapter.
func (s *Surface) Capabilities(adapter hal.Adapter) hal.SurfaceCapabilities {
	return hal.SurfaceCapabilities{
		Formats: preferredFormats,
		PresentModes: []hal.PresentMode{
			hal.PresentModeFifo,
			hal.PresentModeImmediate,
		},
	}
}

// Configure (re)creates the emulated swap-chain. The previous snapshot, if
// any, is rescaled to the new extent so resizes preserve content the way a
// compositor would stretch a window.
func (s *Surface) Configure(adapter hal.Adapter, device hal.Device, cfg *hal.SurfaceConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bounds := image.Rect(0, 0, cfg.Width, cfg.Height)
	for i := range s.ring {
		s.ring[i] = image.NewRGBA(bounds)
	}

	if s.snapshot != nil && s.snapshot.Bounds() != bounds {
		scaled := image.NewRGBA(bounds)
		draw.ApproxBiLinear.Scale(scaled, bounds, s.snapshot, s.snapshot.Bounds(), draw.Src, nil)
		s.snapshot = scaled
	}

	s.cfg = *cfg
	s.configured = true
	s.loseNext = false
	s.configureCount++

	hal.Logger().Info("headless: surface configured",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.String("present_mode", cfg.PresentMode.String()))
	return nil
}

// Acquire returns the next image in the ring. The timeout is not exercised;
// CPU images are always available immediately.
func (s *Surface) Acquire(timeout time.Duration) (hal.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.configured {
		return nil, hal.ErrSurfaceNotConfigured
	}
	if s.outstanding {
		return nil, hal.ErrFrameOutstanding
	}
	if s.loseNext {
		s.loseNext = false
		s.configured = false
		return nil, hal.ErrSurfaceLost
	}

	img := s.ring[s.next]
	s.next = (s.next + 1) % frameRingSize
	s.outstanding = true

	return &frame{surface: s, img: img}, nil
}

// DepthView returns nil; the headless backend does not allocate depth
// buffers since nothing is rasterized.
func (s *Surface) DepthView() hal.TextureView { return nil }

// Release destroys the emulated swap-chain.
func (s *Surface) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = true
	s.configured = false
	for i := range s.ring {
		s.ring[i] = nil
	}
}

// LoseNextAcquire makes the next Acquire fail with a lost surface, forcing
// the caller down its reconfigure path. Intended for recovery tests.
func (s *Surface) LoseNextAcquire() {
	s.mu.Lock()
	s.loseNext = true
	s.mu.Unlock()
}

// Snapshot returns a copy of the last presented frame, or nil if nothing
// has been presented yet.
func (s *Surface) Snapshot() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil
	}
	out := image.NewRGBA(s.snapshot.Bounds())
	draw.Copy(out, image.Point{}, s.snapshot, s.snapshot.Bounds(), draw.Src, nil)
	return out
}

// ConfigureCount reports how many times Configure has been called.
func (s *Surface) ConfigureCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.configureCount
}

// PresentCount reports how many frames have been presented.
func (s *Surface) PresentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presentCount
}

// frame is one acquired ring image.
type frame struct {
	surface *Surface
	img     *image.RGBA
	done    bool
}

func (f *frame) View() hal.TextureView {
	return &textureView{img: f.img}
}

func (f *frame) Present() {
	s := f.surface
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.done {
		return
	}
	f.done = true
	s.outstanding = false
	s.presentCount++

	if s.snapshot == nil || s.snapshot.Bounds() != f.img.Bounds() {
		s.snapshot = image.NewRGBA(f.img.Bounds())
	}
	draw.Copy(s.snapshot, image.Point{}, f.img, f.img.Bounds(), draw.Src, nil)
}

func (f *frame) Discard() {
	s := f.surface
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.done {
		return
	}
	f.done = true
	s.outstanding = false
}

// textureView wraps a ring image so render passes can write to it.
type textureView struct {
	img *image.RGBA
}

func (v *textureView) Release() {}

var (
	_ hal.Surface     = (*Surface)(nil)
	_ hal.Frame       = (*frame)(nil)
	_ hal.TextureView = (*textureView)(nil)
)
