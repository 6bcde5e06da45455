// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ink"
)

// TextureFormat returns the texture format with the same memory layout as f,
// or TextureFormatUndefined for unknown formats.
func TextureFormat(f ink.PixelFormat) gputypes.TextureFormat {
	switch f {
	case ink.RGBA8888:
		return gputypes.TextureFormatRGBA8Unorm
	case ink.BGRA8888:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// PixelFormat returns the pixel format matching a texture format. It reports
// false for texture formats that have no ink equivalent.
func PixelFormat(tf gputypes.TextureFormat) (ink.PixelFormat, bool) {
	switch tf {
	case gputypes.TextureFormatRGBA8Unorm:
		return ink.RGBA8888, true
	case gputypes.TextureFormatBGRA8Unorm:
		return ink.BGRA8888, true
	default:
		return 0, false
	}
}

// TextureDescriptor describes a 2D texture to create for an image.
type TextureDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Size is the texture dimensions.
	Size gputypes.Extent3D

	// Dimension is always 2D for images.
	Dimension gputypes.TextureDimension

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage gputypes.TextureUsage

	// BytesPerRow is the row stride of the source pixels.
	BytesPerRow uint32
}

// Describe returns the descriptor of a sampled, copy-destination texture
// holding img. Images with an unknown pixel format get an undefined format.
func Describe(img *ink.Image, label string) TextureDescriptor {
	if !img.Valid() {
		return TextureDescriptor{Label: label}
	}
	//nolint:gosec // G115: image dimensions are positive and bounded by memory
	return TextureDescriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              uint32(img.Width()),
			Height:             uint32(img.Height()),
			DepthOrArrayLayers: 1,
		},
		Dimension:   gputypes.TextureDimension2D,
		Format:      TextureFormat(img.Format()),
		Usage:       gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		BytesPerRow: uint32(img.Stride()),
	}
}
