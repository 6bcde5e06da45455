package ink

import "image"

// GlyphTarget is the destination handed to a GlyphRenderer: raw pixels of a
// caller-owned buffer plus the region that may be written.
type GlyphTarget struct {
	Pix    []byte
	Stride int // row stride in pixels
	Height int
	Format PixelFormat

	// Clip bounds the pixels the renderer may touch. An empty Clip means
	// nothing is visible.
	Clip image.Rectangle
}

// GlyphRenderer rasterizes text for backends that cannot draw glyphs
// themselves.
//
// DrawText blends glyph coverage into dst using straight alpha blending:
// each covered pixel receives the text color with its alpha scaled by the
// glyph coverage. (x, y) is the top-left corner of the text line.
type GlyphRenderer interface {
	DrawText(dst GlyphTarget, x, y int, text string, c Color)

	// MeasureText returns the horizontal advance of text in pixels.
	MeasureText(text string) int

	// LineHeight returns the distance between consecutive baselines in pixels.
	LineHeight() int
}
