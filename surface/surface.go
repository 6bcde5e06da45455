// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/backend"
	"github.com/gogpu/ink/recording"
)

// Surface ties a Canvas to a pixel buffer and the backend that renders into
// it. Recording surfaces have neither and only produce recordings.
//
// Surfaces are NOT thread-safe.
type Surface struct {
	device  *Device
	canvas  *Canvas
	backend backend.Backend
	pixmap  *ink.Pixmap
	glyphs  ink.GlyphRenderer
	format  ink.PixelFormat
}

func newSurface(width, height int, pm *ink.Pixmap, b backend.Backend, o options) *Surface {
	dev := NewDevice(width, height)
	s := &Surface{
		device:  dev,
		canvas:  NewCanvas(dev),
		backend: b,
		pixmap:  pm,
		format:  o.format,
	}
	if pm != nil {
		s.format = pm.Format()
	}
	s.SetGlyphRenderer(o.glyphs)
	return s
}

// MakeRaster creates a surface with its own width x height pixel buffer,
// BGRA8888 unless WithFormat says otherwise, rendered by the software
// backend. Non-positive dimensions produce an invalid surface.
func MakeRaster(width, height int, opts ...Option) *Surface {
	o := applyOptions(opts)
	pm := ink.Alloc(ink.MakeInfo(width, height, o.format))
	return newSurface(width, height, pm, backend.NewSoftwareBackend(pm), o)
}

// MakeRasterDirect creates a software-rendered surface drawing into pix,
// which the caller owns and must keep alive. Resize replaces the borrowed
// memory with an owned buffer.
func MakeRasterDirect(info ink.PixmapInfo, pix []byte, opts ...Option) *Surface {
	o := applyOptions(opts)
	pm := ink.Wrap(info, pix)
	return newSurface(info.Width, info.Height, pm, backend.NewSoftwareBackend(pm), o)
}

// MakeRecording creates a surface that only records. Use TakeRecording to
// collect what was drawn and Submit it to another surface.
func MakeRecording(width, height int, opts ...Option) *Surface {
	return newSurface(width, height, nil, nil, applyOptions(opts))
}

// MakeAuto creates a surface with its own pixel buffer rendered by the best
// registered backend: the one named by WithBackend if it is available,
// otherwise the highest-priority one, and the software backend as the last
// resort.
func MakeAuto(width, height int, opts ...Option) *Surface {
	o := applyOptions(opts)
	pm := ink.Alloc(ink.MakeInfo(width, height, o.format))

	var b backend.Backend
	if o.backend != "" {
		var err error
		b, err = backend.Get(o.backend, pm)
		if err != nil {
			ink.Logger().Warn("surface: requested backend unavailable, using default", "backend", o.backend, "err", err)
		}
	}
	if b == nil {
		b = backend.Default(pm)
	}
	if b == nil {
		b = backend.NewSoftwareBackend(pm)
	}
	ink.Logger().Debug("surface: created", "backend", b.Name(), "width", width, "height", height)
	return newSurface(width, height, pm, b, o)
}

// Valid reports whether the surface has positive dimensions and, if it
// owns pixels, a valid pixel buffer.
func (s *Surface) Valid() bool {
	if s == nil || s.device.Width() <= 0 || s.device.Height() <= 0 {
		return false
	}
	return s.pixmap == nil || s.pixmap.Valid()
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.device.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.device.Height() }

// Format returns the pixel format.
func (s *Surface) Format() ink.PixelFormat { return s.format }

// Canvas returns the surface's drawing API.
func (s *Surface) Canvas() *Canvas { return s.canvas }

// Backend returns the backend rendering the surface, or nil for recording
// surfaces.
func (s *Surface) Backend() backend.Backend { return s.backend }

// BeginFrame starts a new frame: the recorder and the canvas clip state are
// reset and the backend prepares its target.
func (s *Surface) BeginFrame() {
	s.device.BeginFrame()
	s.canvas.reset()
	if s.backend != nil {
		s.backend.BeginFrame()
	}
}

// EndFrame seals the operations drawn since BeginFrame.
func (s *Surface) EndFrame() {
	s.device.EndFrame()
}

// Flush executes the frame's recording on the backend. Recording surfaces
// keep the recording for TakeRecording.
func (s *Surface) Flush() {
	if s.backend == nil {
		return
	}
	rec := s.device.FinishRecording()
	backend.Submit(s.backend, rec)
	s.backend.EndFrame()
}

// Submit appends the operations of rec to the current frame. They are
// rendered at the next Flush, batched together with the frame's own
// operations.
func (s *Surface) Submit(rec *recording.Recording) {
	if rec == nil {
		return
	}
	rec.Accept(replayer{d: s.device})
}

// TakeRecording hands out the frame's recording. The surface holds none
// afterwards.
func (s *Surface) TakeRecording() *recording.Recording {
	return s.device.FinishRecording()
}

// MakeSnapshot returns an immutable copy of the rendered pixels, or nil for
// recording surfaces.
func (s *Surface) MakeSnapshot() *ink.Image {
	if s.backend == nil {
		return nil
	}
	return s.backend.MakeSnapshot()
}

// PeekPixels returns the surface's pixel buffer, or nil for recording
// surfaces. The pixels are only final after Flush.
func (s *Surface) PeekPixels() *ink.Pixmap { return s.pixmap }

// PixelData describes the pixel buffer for a host, or returns the zero
// PixelData when there is none.
func (s *Surface) PixelData() ink.PixelData {
	if !s.pixmap.Valid() {
		return ink.PixelData{}
	}
	return ink.PixelData{
		Data:     s.pixmap.Pix(),
		Width:    s.pixmap.Width(),
		Height:   s.pixmap.Height(),
		RowBytes: s.pixmap.Stride(),
		Format:   s.pixmap.Format(),
	}
}

// Resize changes the surface dimensions. The pixel buffer is reallocated
// and its previous contents are lost.
func (s *Surface) Resize(width, height int) {
	if s.pixmap != nil {
		s.pixmap.Reallocate(ink.MakeInfo(width, height, s.format))
	}
	s.device.Resize(width, height)
	if s.backend != nil {
		s.backend.Resize(width, height)
	}
}

// SetGlyphRenderer sets the renderer used for text.
func (s *Surface) SetGlyphRenderer(g ink.GlyphRenderer) {
	s.glyphs = g
	if s.backend != nil {
		s.backend.SetGlyphRenderer(g)
	}
}

// GlyphRenderer returns the renderer used for text.
func (s *Surface) GlyphRenderer() ink.GlyphRenderer { return s.glyphs }
