// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport/backend"
	"github.com/gogpu/viewport/hal"
)

// Context owns the process-wide GPU state: adapter, logical device, and the
// command queue every surface submits to. Create one per process with
// NewContext and close it after all bindings and pipelines are released.
//
// Teardown ordering is enforced by reference counting rather than caller
// discipline: every SurfaceBinding and PipelineState holds a reference that
// keeps the device alive, so Close only destroys the device once the last
// dependent is released. Use-after-close returns ErrContextClosed instead of
// touching freed GPU handles.
type Context struct {
	mu      sync.Mutex
	gpu     hal.GPU
	adapter hal.Adapter
	device  hal.Device
	queue   hal.Queue
	opts    contextOptions

	// refs counts the owner plus every live child handle.
	refs   int
	closed bool
}

// NewContext opens the best available backend (or the one selected with
// WithBackend), picks an adapter, and creates the logical device and queue.
//
// Returns ErrAdapterUnavailable when no adapter supports presentation.
func NewContext(opts ...ContextOption) (*Context, error) {
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		gpu hal.GPU
		err error
	)
	if o.backend != "" {
		gpu, err = backend.New(o.backend)
	} else {
		gpu, err = backend.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("viewport: open backend: %w", err)
	}

	adapter, err := gpu.RequestAdapter(&hal.AdapterOptions{
		PowerPreference: o.powerPreference,
	})
	if err != nil {
		gpu.Close()
		return nil, err
	}

	device, queue, err := adapter.RequestDevice(&hal.DeviceDescriptor{
		Label: "viewport device",
	})
	if err != nil {
		gpu.Close()
		return nil, err
	}

	hal.Logger().Info("viewport: context created",
		slog.String("backend", gpu.Name()))

	return &Context{
		gpu:     gpu,
		adapter: adapter,
		device:  device,
		queue:   queue,
		opts:    o,
		refs:    1,
	}, nil
}

// Backend returns the name of the backend behind this context.
func (c *Context) Backend() string { return c.gpu.Name() }

// Info describes the selected adapter in backend-neutral form.
func (c *Context) Info() hal.AdapterInfo { return c.adapter.Info() }

// Close releases the owner's reference. The device and instance are
// destroyed once the last SurfaceBinding and PipelineState are released;
// until then the context is closed for new work but existing handles remain
// valid while they drain.
func (c *Context) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrContextClosed
	}
	c.closed = true
	c.mu.Unlock()

	c.release()
	return nil
}

// retain adds a child reference. Fails once the context is closed.
func (c *Context) retain() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrContextClosed
	}
	c.refs++
	return nil
}

// release drops one reference and destroys the device when it was the last.
func (c *Context) release() {
	c.mu.Lock()
	c.refs--
	last := c.refs == 0
	c.mu.Unlock()

	if !last {
		return
	}
	c.device.Close()
	c.gpu.Close()
	hal.Logger().Info("viewport: context destroyed")
}

// Device returns the underlying device as a gpucontext.Device when the
// active backend exposes one, or nil otherwise. Together with Queue,
// Adapter, and SurfaceFormat this makes Context a gpucontext.DeviceProvider,
// so renderer libraries built on the gpucontext ecosystem can share the
// device instead of creating their own.
func (c *Context) Device() gpucontext.Device {
	if d, ok := c.device.(gpucontext.Device); ok {
		return d
	}
	return nil
}

// Queue returns the underlying queue as a gpucontext.Queue when the active
// backend exposes one, or nil otherwise.
func (c *Context) Queue() gpucontext.Queue {
	if q, ok := c.queue.(gpucontext.Queue); ok {
		return q
	}
	return nil
}

// Adapter returns the underlying adapter as a gpucontext.Adapter when the
// active backend exposes one, or nil otherwise.
func (c *Context) Adapter() gpucontext.Adapter {
	if a, ok := c.adapter.(gpucontext.Adapter); ok {
		return a
	}
	return nil
}

// AdapterInfo returns the adapter description in gpucontext form when the
// active backend exposes one, or the zero value otherwise. Part of the
// DeviceProvider surface; use Info for the backend-neutral description.
func (c *Context) AdapterInfo() gpucontext.AdapterInfo {
	if a, ok := c.adapter.(interface {
		AdapterInfo() gpucontext.AdapterInfo
	}); ok {
		return a.AdapterInfo()
	}
	var info gpucontext.AdapterInfo
	return info
}

// SurfaceFormat returns the context's default surface color format.
func (c *Context) SurfaceFormat() gputypes.TextureFormat {
	return c.opts.preferredFormats[0]
}

var _ hal.DeviceProvider = (*Context)(nil)
