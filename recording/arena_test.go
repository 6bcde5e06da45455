package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/ink"
)

func TestArenaStrings(t *testing.T) {
	var a Arena
	off1 := a.StoreString("hello")
	off2 := a.StoreString("")
	off3 := a.StoreString("wörld")

	assert.Equal(t, uint32(0), off1)
	assert.Equal(t, uint32(6), off2, "strings are NUL terminated")
	assert.Equal(t, uint32(7), off3)
	assert.Equal(t, 7+len("wörld")+1, a.Len())

	assert.Equal(t, "hello", a.String(off1, 5))
	assert.Equal(t, "", a.String(off2, 0))
	assert.Equal(t, "wörld", a.String(off3, uint32(len("wörld"))))
	assert.Equal(t, byte(0), a.data[off1+5])
}

func TestArenaPoints(t *testing.T) {
	var a Arena
	a.StoreString("ab")
	pts := []ink.Point{{X: 1.5, Y: -2}, {X: 1e6, Y: 0}}
	off := a.StorePoints(pts)

	assert.Equal(t, uint32(3), off)
	assert.Equal(t, pts, a.Points(off, 2))
	assert.Nil(t, a.Points(off, 0))

	got := a.Points(off, 2)
	got[0].X = 99
	assert.Equal(t, pts, a.Points(off, 2), "Points returns a copy")
}

func TestArenaAllocate(t *testing.T) {
	var a Arena
	assert.Equal(t, uint32(0), a.Allocate(0))
	assert.Equal(t, uint32(0), a.Allocate(10))
	assert.Equal(t, uint32(10), a.Allocate(3))
	assert.Equal(t, 13, a.Len())
}

func TestArenaReset(t *testing.T) {
	var a Arena
	a.StoreString("something long enough")
	capBefore := cap(a.data)
	a.Reset()

	assert.Zero(t, a.Len())
	assert.Equal(t, capBefore, cap(a.data), "storage is kept for reuse")
	assert.Equal(t, uint32(0), a.StoreString("x"))
}
