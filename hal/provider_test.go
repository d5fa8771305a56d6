// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hal

import (
	"reflect"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNullProvider(t *testing.T) {
	var p DeviceProvider = NullProvider{}

	if got := p.Device(); got != nil {
		t.Errorf("Device() = %v, want nil", got)
	}
	if got := p.Queue(); got != nil {
		t.Errorf("Queue() = %v, want nil", got)
	}
	if got := p.Adapter(); got != nil {
		t.Errorf("Adapter() = %v, want nil", got)
	}
	if got := p.SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want undefined", got)
	}
	var wantInfo gpucontext.AdapterInfo
	if got := p.AdapterInfo(); !reflect.DeepEqual(got, wantInfo) {
		t.Errorf("AdapterInfo() = %v, want zero value", got)
	}
}
