// Package blend implements the 8-bit straight-alpha compositing used by the
// software backend and the glyph rasterizer.
//
// All functions operate on one 4-byte pixel laid out in an [ink.PixelFormat].
// The source-over law is
//
//	out = (src*a + dst*(255-a)) / 255
//
// per color channel, with the destination alpha forced to 255.
package blend

import "github.com/gogpu/ink"

// Channel blends one 8-bit channel of src over dst with alpha a.
func Channel(src, dst, a uint8) uint8 {
	return uint8((uint32(src)*uint32(a) + uint32(dst)*(255-uint32(a))) / 255)
}

// Load reads the color stored in px.
func Load(px []byte, f ink.PixelFormat) ink.Color {
	ro, gi, bo, ao := f.ChannelOffsets()
	return ink.Color{R: px[ro], G: px[gi], B: px[bo], A: px[ao]}
}

// Store writes c into px without blending.
func Store(px []byte, f ink.PixelFormat, c ink.Color) {
	ro, gi, bo, ao := f.ChannelOffsets()
	px[ro], px[gi], px[bo], px[ao] = c.R, c.G, c.B, c.A
}

// StoreOpaque writes c into px with alpha 255.
func StoreOpaque(px []byte, f ink.PixelFormat, c ink.Color) {
	ro, gi, bo, ao := f.ChannelOffsets()
	px[ro], px[gi], px[bo], px[ao] = c.R, c.G, c.B, 255
}

// SourceOver composites c over px in place. Transparent colors are skipped
// and opaque colors are stored directly; both shortcuts agree with the
// blended result.
func SourceOver(px []byte, f ink.PixelFormat, c ink.Color) {
	switch c.A {
	case 0:
		return
	case 255:
		StoreOpaque(px, f, c)
		return
	}
	ro, gi, bo, ao := f.ChannelOffsets()
	px[ro] = Channel(c.R, px[ro], c.A)
	px[gi] = Channel(c.G, px[gi], c.A)
	px[bo] = Channel(c.B, px[bo], c.A)
	px[ao] = 255
}

// Coverage scales the alpha of c by an 8-bit coverage value, as used for
// glyph masks.
func Coverage(c ink.Color, cov uint8) ink.Color {
	c.A = uint8((uint32(c.A)*uint32(cov) + 127) / 255)
	return c
}

// SpanOver composites c over n consecutive pixels starting at px.
func SpanOver(px []byte, f ink.PixelFormat, c ink.Color, n int) {
	if c.A == 0 || n <= 0 {
		return
	}
	if c.A == 255 {
		var p [4]byte
		StoreOpaque(p[:], f, c)
		for i := 0; i < n; i++ {
			copy(px[i*4:i*4+4], p[:])
		}
		return
	}
	for i := 0; i < n; i++ {
		SourceOver(px[i*4:i*4+4], f, c)
	}
}
