//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"testing"

	"github.com/gogpu/viewport/hal"
)

func TestClassifyAcquireError(t *testing.T) {
	tests := []struct {
		msg  string
		want error
	}{
		{"Surface timed out", hal.ErrAcquireTimeout},
		{"surface acquire timeout", hal.ErrAcquireTimeout},
		{"Surface is outdated", hal.ErrSurfaceLost},
		{"Surface was lost", hal.ErrSurfaceLost},
		{"Device lost", hal.ErrDeviceLost},
	}
	for _, tt := range tests {
		got := classifyAcquireError(errors.New(tt.msg))
		if !errors.Is(got, tt.want) {
			t.Errorf("classifyAcquireError(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

func TestClassifyAcquireErrorUnknown(t *testing.T) {
	orig := errors.New("validation failure")
	got := classifyAcquireError(orig)
	if got != orig {
		t.Errorf("classifyAcquireError should pass through unknown errors, got %v", got)
	}
	if errors.Is(got, hal.ErrSurfaceLost) || errors.Is(got, hal.ErrAcquireTimeout) {
		t.Error("unknown error misclassified")
	}
}
