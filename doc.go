// Package ink is a deferred 2D drawing library.
//
// # Overview
//
// Drawing calls are not rasterized immediately. A [surface.Canvas] records
// them into an immutable [recording.Recording], a [recording.DrawPass]
// reorders the recorded operations so that operations sharing backend state
// sit next to each other, and a [backend.Backend] plays the reordered stream
// back into pixels.
//
//	s := surface.MakeRaster(800, 600)
//	s.BeginFrame()
//	c := s.Canvas()
//	c.FillRect(ink.Rect{X: 10, Y: 10, W: 100, H: 50}, ink.RGB(255, 0, 0))
//	c.Save()
//	c.ClipRect(ink.Rect{X: 0, Y: 0, W: 60, H: 60})
//	c.DrawLine(ink.Point{X: 0, Y: 0}, ink.Point{X: 200, Y: 200}, ink.RGB(0, 255, 0), 1)
//	c.Restore()
//	s.EndFrame()
//	s.Flush()
//	_ = s.PeekPixels().SavePNG("out.png")
//
// # Core types
//
// This package holds the value types shared by every stage of the pipeline:
// [Point], [Rect] and [Color], the [Pixmap] pixel buffer, the immutable
// [Image] snapshot and the [GlyphRenderer] contract used for text.
//
// # Pipeline
//
//   - surface: Canvas (clip-state front end), Device and Surface
//   - recording: Recorder, Recording, Arena and DrawPass
//   - backend: Backend contract, registry and the software rasterizer
//   - backend/gpu: boundary helpers for GPU backends
//   - text: glyph rasterization for the software backend
//
// # Logging
//
// ink produces no log output by default. Call [SetLogger] to route
// diagnostics to a [log/slog] logger.
package ink
