// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/backend"
)

// ErrReadbackUnsupported is returned by ReadPixels when a backend cannot
// copy its target to CPU memory.
var ErrReadbackUnsupported = errors.New("gpu: readback not supported")

// Readback is implemented by backends that can copy their render target into
// CPU memory.
type Readback interface {
	// ReadPixels copies the current target into dst, converting to dst's
	// pixel format. dst must have the target's dimensions.
	ReadPixels(dst *ink.Pixmap) error
}

// NativeResource is implemented by backends that expose the API object
// behind their render target (a texture, a framebuffer). The value is opaque
// to ink.
type NativeResource interface {
	NativeHandle() any
}

// ReadPixels reads the target of b into a new pixmap of the given size and
// format. It returns ErrReadbackUnsupported when b does not implement
// Readback.
func ReadPixels(b backend.Backend, width, height int, f ink.PixelFormat) (*ink.Pixmap, error) {
	rb, ok := b.(Readback)
	if !ok {
		return nil, ErrReadbackUnsupported
	}
	pm := ink.Alloc(ink.MakeInfo(width, height, f))
	if err := rb.ReadPixels(pm); err != nil {
		return nil, err
	}
	return pm, nil
}

// NativeHandle returns the native handle of b, or nil when b exposes none.
func NativeHandle(b backend.Backend) any {
	if nr, ok := b.(NativeResource); ok {
		return nr.NativeHandle()
	}
	return nil
}
