// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/cache"
)

// DefaultTextureCacheSize is the number of textures kept by a TextureCache
// created with a non-positive limit.
const DefaultTextureCacheSize = 64

// TextureCache keeps one uploaded texture per image snapshot, keyed by
// ink.Image.ID. The least recently used textures are released once the
// limit is exceeded.
//
// TextureCache is safe for concurrent use.
type TextureCache[T any] struct {
	c *cache.Cache[uint64, T]
}

// NewTextureCache creates a cache holding at most limit textures. release,
// if non-nil, is called for every texture leaving the cache.
func NewTextureCache[T any](limit int, release func(T)) *TextureCache[T] {
	if limit <= 0 {
		limit = DefaultTextureCacheSize
	}
	c := cache.New[uint64, T](limit)
	if release != nil {
		c.OnEvict(func(_ uint64, tex T) { release(tex) })
	}
	return &TextureCache[T]{c: c}
}

// Lookup returns the texture uploaded for img.
func (tc *TextureCache[T]) Lookup(img *ink.Image) (T, bool) {
	if img == nil {
		var zero T
		return zero, false
	}
	return tc.c.Get(img.ID())
}

// GetOrUpload returns the cached texture for img, uploading it on a miss.
// Failed uploads are not cached.
func (tc *TextureCache[T]) GetOrUpload(img *ink.Image, upload func(*ink.Image) (T, error)) (T, error) {
	if tex, ok := tc.Lookup(img); ok {
		return tex, nil
	}
	tex, err := upload(img)
	if err != nil {
		var zero T
		return zero, err
	}
	if img != nil {
		tc.c.Set(img.ID(), tex)
		ink.Logger().Debug("gpu: texture uploaded", "image", img.ID(), "cached", tc.c.Len())
	}
	return tex, nil
}

// Evict releases the texture of img, if any.
func (tc *TextureCache[T]) Evict(img *ink.Image) bool {
	if img == nil {
		return false
	}
	return tc.c.Delete(img.ID())
}

// Clear releases every texture.
func (tc *TextureCache[T]) Clear() { tc.c.Clear() }

// Len returns the number of cached textures.
func (tc *TextureCache[T]) Len() int { return tc.c.Len() }

// Stats returns the lookup hit and miss counters.
func (tc *TextureCache[T]) Stats() (hits, misses uint64) {
	s := tc.c.Stats()
	return s.Hits, s.Misses
}
