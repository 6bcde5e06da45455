// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/recording"
)

func newTestCanvas() (*Canvas, *Device) {
	dev := NewDevice(100, 100)
	return NewCanvas(dev), dev
}

func kinds(rec *recording.Recording) []recording.Kind {
	out := make([]recording.Kind, rec.Len())
	for i := range out {
		out[i] = rec.Kind(i)
	}
	return out
}

func TestClipRectIntersects(t *testing.T) {
	c, dev := newTestCanvas()
	c.ClipRect(ink.R(10, 10, 50, 50))
	c.ClipRect(ink.R(30, 0, 100, 40))

	want := ink.R(30, 10, 30, 30)
	assert.Equal(t, ClipState{HasClip: true, Rect: want}, c.ClipState())

	rec := dev.FinishRecording()
	require.Equal(t, 2, rec.Len())
	assert.Equal(t, ink.R(10, 10, 50, 50), rec.Op(0).Rect)
	assert.Equal(t, want, rec.Op(1).Rect)
}

func TestClipRectDisjointIsEmpty(t *testing.T) {
	c, dev := newTestCanvas()
	c.ClipRect(ink.R(0, 0, 10, 10))
	c.ClipRect(ink.R(20, 30, 5, 5))

	st := c.ClipState()
	assert.True(t, st.HasClip, "an empty clip is still a clip")
	assert.Equal(t, float32(0), st.Rect.W)
	assert.Equal(t, float32(0), st.Rect.H)

	rec := dev.FinishRecording()
	assert.Equal(t, recording.KindSetClip, rec.Kind(1))
	assert.True(t, rec.Op(1).Rect.Empty())
}

func TestClipRectFirstIsExact(t *testing.T) {
	c, _ := newTestCanvas()
	c.ClipRect(ink.R(-5, -5, 3, -1))
	assert.Equal(t, ClipState{HasClip: true, Rect: ink.R(-5, -5, 3, -1)}, c.ClipState())
}

func TestSaveRestoreWithoutPriorClip(t *testing.T) {
	c, dev := newTestCanvas()
	before := c.ClipState()

	c.Save()
	assert.Zero(t, dev.Len(), "save records nothing")
	c.ClipRect(ink.R(1, 2, 3, 4))
	c.Restore()

	assert.Equal(t, before, c.ClipState())
	assert.Equal(t, []recording.Kind{recording.KindSetClip, recording.KindClearClip}, kinds(dev.FinishRecording()))
}

func TestSaveRestoreWithPriorClip(t *testing.T) {
	c, dev := newTestCanvas()
	c.ClipRect(ink.R(0, 0, 50, 50))
	c.Save()
	c.ClipRect(ink.R(10, 10, 100, 100))
	c.Restore()

	assert.Equal(t, ClipState{HasClip: true, Rect: ink.R(0, 0, 50, 50)}, c.ClipState())

	rec := dev.FinishRecording()
	require.Equal(t, []recording.Kind{recording.KindSetClip, recording.KindSetClip, recording.KindSetClip}, kinds(rec))
	assert.Equal(t, ink.R(10, 10, 40, 40), rec.Op(1).Rect)
	assert.Equal(t, ink.R(0, 0, 50, 50), rec.Op(2).Rect, "restore re-emits the restored clip")
}

func TestNestedSaveRestore(t *testing.T) {
	c, _ := newTestCanvas()
	c.Save()
	c.ClipRect(ink.R(0, 0, 80, 80))
	c.Save()
	c.ClipRect(ink.R(40, 40, 80, 80))
	assert.Equal(t, 2, c.SaveCount())
	assert.Equal(t, ink.R(40, 40, 40, 40), c.ClipState().Rect)

	c.Restore()
	assert.Equal(t, ink.R(0, 0, 80, 80), c.ClipState().Rect)
	c.Restore()
	assert.False(t, c.ClipState().HasClip)
	assert.Zero(t, c.SaveCount())
}

func TestRestoreWithoutSave(t *testing.T) {
	c, dev := newTestCanvas()
	c.Restore()
	assert.Zero(t, dev.Len())

	c.FillRect(ink.R(1, 1, 2, 2), ink.Red)
	rec := dev.FinishRecording()
	require.Equal(t, 1, rec.Len())
	assert.Equal(t, recording.KindFillRect, rec.Kind(0))
}

func TestCanvasForwardsLiteralArguments(t *testing.T) {
	c, dev := newTestCanvas()
	img := ink.MakeFromPixmap(ink.Alloc(ink.MakeInfoBGRA(1, 1)))

	c.ClipRect(ink.R(0, 0, 5, 5))
	// Drawing outside the clip is recorded unchanged.
	c.FillRect(ink.R(50, 50, 10, 10), ink.Red)
	c.StrokeRect(ink.R(-1, -1, 200, 200), ink.Green, 4)
	c.DrawLine(ink.Pt(0, 0), ink.Pt(99, 99), ink.Blue, 0)
	c.DrawPolyline([]ink.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, ink.White, 2)
	c.DrawText(ink.Pt(7, 8), "text", ink.Black)
	c.DrawImage(img, 9, 10)

	rec := dev.FinishRecording()
	require.Equal(t, 7, rec.Len())
	assert.Equal(t, ink.R(50, 50, 10, 10), rec.Op(1).Rect)
	assert.Equal(t, float32(4), rec.Op(2).Width)
	assert.Equal(t, ink.Pt(99, 99), rec.Op(3).P2)
	assert.Equal(t, float32(0), rec.Op(3).Width)
	op := rec.Op(4)
	assert.Equal(t, []ink.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, rec.Arena().Points(op.Offset, op.Count))
	op = rec.Op(5)
	assert.Equal(t, "text", rec.Arena().String(op.Offset, op.Count))
	assert.Same(t, img, rec.Image(rec.Op(6).Image))
}

func TestDeviceFrames(t *testing.T) {
	dev := NewDevice(10, 10)
	dev.BeginFrame()
	dev.FillRect(ink.R(0, 0, 1, 1), ink.Red)
	dev.EndFrame()

	// Operations after EndFrame belong to the next recording.
	dev.FillRect(ink.R(0, 0, 1, 1), ink.Red)
	dev.FillRect(ink.R(0, 0, 1, 1), ink.Red)

	assert.Equal(t, 1, dev.FinishRecording().Len())
	assert.Equal(t, 2, dev.FinishRecording().Len())
	assert.Zero(t, dev.FinishRecording().Len())

	dev.FillRect(ink.R(0, 0, 1, 1), ink.Red)
	dev.EndFrame()
	dev.BeginFrame()
	assert.Zero(t, dev.FinishRecording().Len(), "BeginFrame drops the pending recording")
}
