// Package cache provides a generic, mutex-protected LRU cache.
//
// It backs the glyph mask cache of the text package and the per-snapshot
// texture cache used by GPU backends:
//
//	c := cache.New[rune, *mask](512)
//	m := c.GetOrCreate('a', func() *mask { return rasterize('a') })
//
// When an entry is evicted, the optional eviction callback receives it so
// that owners can release derived resources.
package cache
