// Package text rasterizes text for backends that draw glyphs on the CPU.
//
// GlyphCache implements ink.GlyphRenderer. It loads one TrueType or
// OpenType font at a fixed pixel size and rasterizes glyph coverage masks on
// demand using golang.org/x/image/font/opentype. Masks are kept in an LRU
// cache keyed by rune. Text advances are measured with HarfBuzz shaping from
// github.com/go-text/typesetting, so kerning matches what a shaping engine
// would produce.
//
// # Example usage
//
//	glyphs, err := text.NewDefault(text.WithSize(16))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s := surface.MakeRaster(320, 240, surface.WithGlyphRenderer(glyphs))
//
// The position passed to DrawText is the top-left corner of the text line;
// the baseline sits one ascent below it.
package text
