package ink

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// PixelFormat is the byte order of a 4-byte pixel in memory.
type PixelFormat uint8

const (
	// RGBA8888 stores pixels as R, G, B, A bytes.
	RGBA8888 PixelFormat = iota
	// BGRA8888 stores pixels as B, G, R, A bytes (a little-endian 0xAARRGGBB word).
	BGRA8888
)

// String returns the string representation of a PixelFormat.
func (f PixelFormat) String() string {
	switch f {
	case RGBA8888:
		return "RGBA8888"
	case BGRA8888:
		return "BGRA8888"
	default:
		return "Unknown"
	}
}

// ChannelOffsets returns the byte offsets of the red, green, blue and alpha
// channels within one pixel.
func (f PixelFormat) ChannelOffsets() (r, g, b, a int) {
	if f == BGRA8888 {
		return 2, 1, 0, 3
	}
	return 0, 1, 2, 3
}

// BytesPerPixel is the size of one pixel for every supported format.
const BytesPerPixel = 4

// PixmapInfo describes the dimensions, row stride and format of a pixel buffer.
type PixmapInfo struct {
	Width  int
	Height int
	Stride int // bytes per row
	Format PixelFormat
}

// MakeInfo returns a PixmapInfo with a tightly packed stride.
func MakeInfo(w, h int, f PixelFormat) PixmapInfo {
	return PixmapInfo{Width: w, Height: h, Stride: w * BytesPerPixel, Format: f}
}

// MakeInfoRGBA returns a tightly packed RGBA8888 PixmapInfo.
func MakeInfoRGBA(w, h int) PixmapInfo { return MakeInfo(w, h, RGBA8888) }

// MakeInfoBGRA returns a tightly packed BGRA8888 PixmapInfo.
func MakeInfoBGRA(w, h int) PixmapInfo { return MakeInfo(w, h, BGRA8888) }

// BytesPerPixel returns 4.
func (i PixmapInfo) BytesPerPixel() int { return BytesPerPixel }

// ByteSize returns Stride * Height.
func (i PixmapInfo) ByteSize() int { return i.Stride * i.Height }

// minLen is the smallest slice able to hold every pixel: the last row
// does not need its padding.
func (i PixmapInfo) minLen() int {
	if i.Width <= 0 || i.Height <= 0 {
		return 0
	}
	return (i.Height-1)*i.Stride + i.Width*BytesPerPixel
}

// Pixmap is a rectangular buffer of 4-byte pixels.
//
// A Pixmap either owns its pixels (Alloc, Reallocate) or borrows memory that
// belongs to the caller (Wrap). Borrowed memory is never reused by the Pixmap
// after Reset or Reallocate.
type Pixmap struct {
	info  PixmapInfo
	pix   []byte
	owned bool
}

// Alloc allocates a zeroed pixel buffer described by info. A stride smaller
// than Width*4 is widened and any other stride is rounded up to a whole
// number of pixels. Non-positive dimensions produce an invalid Pixmap.
func Alloc(info PixmapInfo) *Pixmap {
	if info.Width <= 0 || info.Height <= 0 {
		return &Pixmap{info: info}
	}
	if info.Stride < info.Width*BytesPerPixel {
		info.Stride = info.Width * BytesPerPixel
	}
	info.Stride = (info.Stride + BytesPerPixel - 1) / BytesPerPixel * BytesPerPixel
	return &Pixmap{
		info:  info,
		pix:   make([]byte, info.ByteSize()),
		owned: true,
	}
}

// Wrap returns a Pixmap over caller-owned memory. The caller keeps ownership
// and must keep pix alive while the Pixmap is in use. A stride that is not a
// multiple of BytesPerPixel yields an invalid Pixmap.
func Wrap(info PixmapInfo, pix []byte) *Pixmap {
	return &Pixmap{info: info, pix: pix}
}

// Valid reports whether the Pixmap has pixel storage and positive dimensions.
// The stride must hold a row and be a whole number of pixels.
func (p *Pixmap) Valid() bool {
	return p != nil && p.pix != nil && p.info.Width > 0 && p.info.Height > 0 &&
		p.info.Stride >= p.info.Width*BytesPerPixel && p.info.Stride%BytesPerPixel == 0 &&
		len(p.pix) >= p.info.minLen()
}

// Info returns the pixmap descriptor.
func (p *Pixmap) Info() PixmapInfo { return p.info }

// Width returns the width in pixels.
func (p *Pixmap) Width() int { return p.info.Width }

// Height returns the height in pixels.
func (p *Pixmap) Height() int { return p.info.Height }

// Stride returns the row stride in bytes.
func (p *Pixmap) Stride() int { return p.info.Stride }

// Format returns the pixel format.
func (p *Pixmap) Format() PixelFormat { return p.info.Format }

// Pix returns the raw pixel bytes.
func (p *Pixmap) Pix() []byte { return p.pix }

// Owned reports whether the Pixmap owns its pixel memory.
func (p *Pixmap) Owned() bool { return p.owned }

// Row returns the bytes of row y, without stride padding.
func (p *Pixmap) Row(y int) []byte {
	off := y * p.info.Stride
	return p.pix[off : off+p.info.Width*BytesPerPixel : off+p.info.Width*BytesPerPixel]
}

// Clear fills every pixel with c.
func (p *Pixmap) Clear(c Color) {
	if !p.Valid() {
		return
	}
	ro, gi, bo, ao := p.info.Format.ChannelOffsets()
	var px [4]byte
	px[ro], px[gi], px[bo], px[ao] = c.R, c.G, c.B, c.A

	first := p.Row(0)
	for x := 0; x < len(first); x += BytesPerPixel {
		copy(first[x:x+BytesPerPixel], px[:])
	}
	for y := 1; y < p.info.Height; y++ {
		copy(p.Row(y), first)
	}
}

// PixelAt returns the color at (x, y), or Transparent outside the buffer.
func (p *Pixmap) PixelAt(x, y int) Color {
	if !p.Valid() || x < 0 || y < 0 || x >= p.info.Width || y >= p.info.Height {
		return Transparent
	}
	return readPixel(p.pix[y*p.info.Stride+x*BytesPerPixel:], p.info.Format)
}

// SetPixel stores c at (x, y) without blending. Out-of-range writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if !p.Valid() || x < 0 || y < 0 || x >= p.info.Width || y >= p.info.Height {
		return
	}
	writePixel(p.pix[y*p.info.Stride+x*BytesPerPixel:], p.info.Format, c)
}

// Reset releases the pixel storage. The Pixmap is invalid afterwards.
func (p *Pixmap) Reset() {
	p.pix = nil
	p.owned = false
	p.info = PixmapInfo{}
}

// Reallocate replaces the storage with a new owned buffer described by info.
// Previous contents are discarded; borrowed memory is left untouched.
func (p *Pixmap) Reallocate(info PixmapInfo) {
	*p = *Alloc(info)
}

// ToImage converts the pixels to a straight-alpha image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(p.info.Width, 0), max(p.info.Height, 0)))
	if !p.Valid() {
		return img
	}
	for y := 0; y < p.info.Height; y++ {
		row := p.Row(y)
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < p.info.Width; x++ {
			c := readPixel(row[x*BytesPerPixel:], p.info.Format)
			d := dst[x*4 : x*4+4 : x*4+4]
			d[0], d[1], d[2], d[3] = c.R, c.G, c.B, c.A
		}
	}
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.PixelAt(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.info.Width, p.info.Height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

func readPixel(px []byte, f PixelFormat) Color {
	ro, gi, bo, ao := f.ChannelOffsets()
	return Color{R: px[ro], G: px[gi], B: px[bo], A: px[ao]}
}

func writePixel(px []byte, f PixelFormat, c Color) {
	ro, gi, bo, ao := f.ChannelOffsets()
	px[ro], px[gi], px[bo], px[ao] = c.R, c.G, c.B, c.A
}

// PixelData is a non-owning descriptor of a pixel buffer, used to hand a
// rendered frame to a host (window system, encoder).
type PixelData struct {
	Data     []byte
	Width    int
	Height   int
	RowBytes int
	Format   PixelFormat
}

// Valid reports whether the descriptor points at pixels.
func (d PixelData) Valid() bool {
	return d.Data != nil && d.Width > 0 && d.Height > 0 && d.RowBytes > 0
}

// SizeBytes returns Height * RowBytes.
func (d PixelData) SizeBytes() int64 {
	return int64(d.Height) * int64(d.RowBytes)
}
