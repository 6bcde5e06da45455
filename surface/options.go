// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/ink"

// Option configures a Surface during creation.
//
// Example:
//
//	s := surface.MakeRaster(800, 600, surface.WithFormat(ink.RGBA8888))
type Option func(*options)

// options holds optional configuration for Surface creation.
type options struct {
	format  ink.PixelFormat
	glyphs  ink.GlyphRenderer
	backend string
}

// defaultOptions returns the default surface options.
func defaultOptions() options {
	return options{
		format: ink.BGRA8888,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithFormat sets the pixel format of the surface's own pixel buffer.
// Surfaces wrapping caller memory use the format of that memory.
func WithFormat(f ink.PixelFormat) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithGlyphRenderer sets the renderer used for text.
func WithGlyphRenderer(g ink.GlyphRenderer) Option {
	return func(o *options) {
		o.glyphs = g
	}
}

// WithBackend requests a registered backend by name for MakeAuto. When the
// backend is unavailable, MakeAuto falls back to the default selection.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}
