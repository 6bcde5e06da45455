package ink

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFromPixmapCopies(t *testing.T) {
	pm := Alloc(MakeInfoBGRA(4, 4))
	pm.Clear(Red)

	img := MakeFromPixmap(pm)
	require.NotNil(t, img)
	assert.True(t, img.Valid())
	assert.True(t, img.Owned())
	assert.True(t, img.IsCPUBacked())
	assert.Equal(t, 4, img.Width())
	assert.Equal(t, 4, img.Height())
	assert.Equal(t, BGRA8888, img.Format())
	assert.Equal(t, pm.Stride(), img.Stride())

	pm.Clear(Blue)
	assert.Equal(t, Red, img.PixelAt(3, 3), "snapshot independent of source")
}

func TestMakeFromPixmapPaddedSource(t *testing.T) {
	info := PixmapInfo{Width: 2, Height: 2, Stride: 16, Format: RGBA8888}
	pm := Alloc(info)
	pm.Clear(Green)

	img := MakeFromPixmap(pm)
	require.NotNil(t, img)
	assert.Equal(t, 16, img.Stride())
	assert.Equal(t, Green, img.PixelAt(1, 1))
}

func TestMakeFromPixmapInvalid(t *testing.T) {
	assert.Nil(t, MakeFromPixmap(nil))
	assert.Nil(t, MakeFromPixmap(&Pixmap{}))
	assert.Nil(t, MakeFromPixmap(Alloc(MakeInfoRGBA(0, 5))))
	assert.Nil(t, MakeFromPixmapNoCopy(nil))
	assert.Nil(t, MakeFromPixmapNoCopy(Alloc(MakeInfoRGBA(5, 0))))
}

func TestMakeFromPixmapNoCopySharesData(t *testing.T) {
	pm := Alloc(MakeInfoRGBA(2, 2))
	pm.Clear(Red)

	img := MakeFromPixmapNoCopy(pm)
	require.NotNil(t, img)
	assert.False(t, img.Owned())

	pm.Clear(Blue)
	assert.Equal(t, Blue, img.PixelAt(0, 0), "borrowed snapshot sees source writes")
}

func TestImageIDsIncrease(t *testing.T) {
	pm := Alloc(MakeInfoRGBA(1, 1))
	a := MakeFromPixmap(pm)
	b := MakeFromPixmapNoCopy(pm)
	c := MakeFromPixmap(pm)
	assert.Less(t, a.ID(), b.ID())
	assert.Less(t, b.ID(), c.ID())
}

func TestImageIDsUniqueAcrossGoroutines(t *testing.T) {
	pm := Alloc(MakeInfoRGBA(1, 1))
	const n = 64
	ids := make([]uint64, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = MakeFromPixmapNoCopy(pm).ID()
		}()
	}
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func TestNilImageInvalid(t *testing.T) {
	var img *Image
	assert.False(t, img.Valid())
}
