package ink

import "sync/atomic"

// lastImageID is the process-wide source of Image identities. Only uniqueness
// is required, so a plain atomic counter is enough.
var lastImageID atomic.Uint64

// Image is an immutable snapshot of pixel data.
//
// Images are created from pixmaps (usually a surface's pixels) and drawn onto
// other surfaces with Canvas.DrawImage. Every Image carries a unique,
// monotonically increasing ID that backends use to cache derived resources,
// such as GPU textures, per snapshot.
//
// Images are shared by pointer. A recording that references an Image keeps
// it alive, so a recording may outlive the surface that produced the image.
type Image struct {
	id   uint64
	info PixmapInfo
	pix  []byte

	// owned is non-nil when the Image holds its own copy of the pixels.
	owned *Pixmap
}

// MakeFromPixmap returns an Image holding a copy of src's pixels. Later
// changes to src do not affect the Image. It returns nil when src is invalid.
func MakeFromPixmap(src *Pixmap) *Image {
	if !src.Valid() {
		return nil
	}
	cp := Alloc(src.Info())
	if !cp.Valid() {
		return nil
	}
	for y := 0; y < src.Height(); y++ {
		copy(cp.Row(y), src.Row(y))
	}
	return &Image{
		id:    lastImageID.Add(1),
		info:  cp.Info(),
		pix:   cp.Pix(),
		owned: cp,
	}
}

// MakeFromPixmapNoCopy returns an Image that references src's pixels without
// copying them. The caller must keep the memory alive and unmodified for as
// long as the Image is in use. It returns nil when src is invalid.
func MakeFromPixmapNoCopy(src *Pixmap) *Image {
	if !src.Valid() {
		return nil
	}
	return &Image{
		id:   lastImageID.Add(1),
		info: src.Info(),
		pix:  src.Pix(),
	}
}

// ID returns the unique identity of the snapshot.
func (i *Image) ID() uint64 { return i.id }

// Width returns the width in pixels.
func (i *Image) Width() int { return i.info.Width }

// Height returns the height in pixels.
func (i *Image) Height() int { return i.info.Height }

// Format returns the pixel format.
func (i *Image) Format() PixelFormat { return i.info.Format }

// Info returns the pixel descriptor.
func (i *Image) Info() PixmapInfo { return i.info }

// Stride returns the row stride in bytes. It may be larger than Width*4.
func (i *Image) Stride() int { return i.info.Stride }

// Pix returns the pixel bytes. Callers must not modify them.
func (i *Image) Pix() []byte { return i.pix }

// Owned reports whether the Image holds its own copy of the pixels.
func (i *Image) Owned() bool { return i.owned != nil }

// IsCPUBacked reports whether the pixels are addressable from the CPU.
// Every Image created by this package is.
func (i *Image) IsCPUBacked() bool { return i.pix != nil }

// Valid reports whether the Image has pixels and positive dimensions.
func (i *Image) Valid() bool {
	return i != nil && i.pix != nil && i.info.Width > 0 && i.info.Height > 0
}

// PixelAt returns the color at (x, y), or Transparent outside the image.
func (i *Image) PixelAt(x, y int) Color {
	if !i.Valid() || x < 0 || y < 0 || x >= i.info.Width || y >= i.info.Height {
		return Transparent
	}
	return readPixel(i.pix[y*i.info.Stride+x*BytesPerPixel:], i.info.Format)
}
