// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/backend"
)

func TestTextureFormatRoundTrip(t *testing.T) {
	for _, f := range []ink.PixelFormat{ink.RGBA8888, ink.BGRA8888} {
		tf := TextureFormat(f)
		got, ok := PixelFormat(tf)
		require.True(t, ok, "format %v", f)
		assert.Equal(t, f, got)
	}
	assert.Equal(t, gputypes.TextureFormatBGRA8Unorm, TextureFormat(ink.BGRA8888))
	assert.Equal(t, gputypes.TextureFormatUndefined, TextureFormat(ink.PixelFormat(9)))

	_, ok := PixelFormat(gputypes.TextureFormatR8Unorm)
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	pm := ink.Alloc(ink.PixmapInfo{Width: 3, Height: 2, Stride: 16, Format: ink.RGBA8888})
	img := ink.MakeFromPixmapNoCopy(pm)

	d := Describe(img, "snap")
	assert.Equal(t, "snap", d.Label)
	assert.Equal(t, uint32(3), d.Size.Width)
	assert.Equal(t, uint32(2), d.Size.Height)
	assert.Equal(t, uint32(1), d.Size.DepthOrArrayLayers)
	assert.Equal(t, gputypes.TextureDimension2D, d.Dimension)
	assert.Equal(t, gputypes.TextureFormatRGBA8Unorm, d.Format)
	assert.Equal(t, uint32(16), d.BytesPerRow)
	assert.NotZero(t, d.Usage&gputypes.TextureUsageCopyDst)

	assert.Equal(t, TextureDescriptor{Label: "nil"}, Describe(nil, "nil"))
}

// fakeTexture stands in for a backend texture handle.
type fakeTexture struct {
	id       uint64
	released bool
}

func newImage(t *testing.T) *ink.Image {
	t.Helper()
	img := ink.MakeFromPixmap(ink.Alloc(ink.MakeInfoBGRA(1, 1)))
	require.NotNil(t, img)
	return img
}

func TestTextureCacheUploadsOncePerSnapshot(t *testing.T) {
	tc := NewTextureCache[*fakeTexture](4, nil)
	img := newImage(t)

	uploads := 0
	upload := func(img *ink.Image) (*fakeTexture, error) {
		uploads++
		return &fakeTexture{id: img.ID()}, nil
	}

	a, err := tc.GetOrUpload(img, upload)
	require.NoError(t, err)
	b, err := tc.GetOrUpload(img, upload)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, uploads)
	assert.Equal(t, img.ID(), a.id)

	got, ok := tc.Lookup(img)
	assert.True(t, ok)
	assert.Same(t, a, got)

	hits, misses := tc.Stats()
	assert.Equal(t, uint64(2), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestTextureCacheDistinctSnapshots(t *testing.T) {
	tc := NewTextureCache[*fakeTexture](4, nil)
	upload := func(img *ink.Image) (*fakeTexture, error) { return &fakeTexture{id: img.ID()}, nil }

	a, _ := tc.GetOrUpload(newImage(t), upload)
	b, _ := tc.GetOrUpload(newImage(t), upload)
	assert.NotEqual(t, a.id, b.id)
	assert.Equal(t, 2, tc.Len())
}

func TestTextureCacheReleasesEvicted(t *testing.T) {
	var released []*fakeTexture
	tc := NewTextureCache(2, func(tex *fakeTexture) {
		tex.released = true
		released = append(released, tex)
	})
	upload := func(img *ink.Image) (*fakeTexture, error) { return &fakeTexture{id: img.ID()}, nil }

	first := newImage(t)
	t1, _ := tc.GetOrUpload(first, upload)
	_, _ = tc.GetOrUpload(newImage(t), upload)
	_, _ = tc.GetOrUpload(newImage(t), upload)

	require.Len(t, released, 1)
	assert.Same(t, t1, released[0])
	assert.True(t, t1.released)
	_, ok := tc.Lookup(first)
	assert.False(t, ok)

	tc.Clear()
	assert.Len(t, released, 3)
	assert.Zero(t, tc.Len())
}

func TestTextureCacheEvict(t *testing.T) {
	tc := NewTextureCache[int](0, nil)
	img := newImage(t)
	_, _ = tc.GetOrUpload(img, func(*ink.Image) (int, error) { return 7, nil })

	assert.True(t, tc.Evict(img))
	assert.False(t, tc.Evict(img))
	assert.False(t, tc.Evict(nil))
}

func TestTextureCacheUploadError(t *testing.T) {
	tc := NewTextureCache[int](2, nil)
	img := newImage(t)
	boom := errors.New("boom")

	_, err := tc.GetOrUpload(img, func(*ink.Image) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, tc.Len(), "failed uploads are not cached")
}

// readbackBackend is a software backend that also supports readback.
type readbackBackend struct {
	*backend.SoftwareBackend
}

func (b readbackBackend) ReadPixels(dst *ink.Pixmap) error {
	src := b.Target()
	for y := range dst.Height() {
		for x := range dst.Width() {
			dst.SetPixel(x, y, src.PixelAt(x, y))
		}
	}
	return nil
}

func (b readbackBackend) NativeHandle() any { return b.Target() }

func TestReadPixels(t *testing.T) {
	target := ink.Alloc(ink.MakeInfoBGRA(2, 2))
	sw := backend.NewSoftwareBackend(target)
	sw.BeginFrame()

	_, err := ReadPixels(sw, 2, 2, ink.RGBA8888)
	assert.ErrorIs(t, err, ErrReadbackUnsupported)
	assert.Nil(t, NativeHandle(sw))

	rb := readbackBackend{sw}
	pm, err := ReadPixels(rb, 2, 2, ink.RGBA8888)
	require.NoError(t, err)
	assert.Equal(t, ink.RGBA8888, pm.Format())
	assert.Equal(t, ink.Black, pm.PixelAt(1, 1))
	assert.Same(t, target, NativeHandle(rb))
}
