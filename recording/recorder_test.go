package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ink"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "FillRect", KindFillRect.String())
	assert.Equal(t, "ClearClip", KindClearClip.String())
	assert.Equal(t, "Unknown", Kind(200).String())
}

func TestRecorderEncodesEveryKind(t *testing.T) {
	img := ink.MakeFromPixmap(ink.Alloc(ink.MakeInfoRGBA(2, 2)))
	require.NotNil(t, img)

	rec := NewRecorder()
	rec.FillRect(ink.R(1, 2, 3, 4), ink.Red)
	rec.StrokeRect(ink.R(5, 6, 7, 8), ink.Green, 2.5)
	rec.DrawLine(ink.Pt(1, 1), ink.Pt(9, 9), ink.Blue, 3)
	rec.DrawPolyline([]ink.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}, ink.White, 1)
	rec.DrawText(ink.Pt(10, 20), "héllo", ink.RGBA(1, 2, 3, 4))
	rec.DrawImage(img, 3.5, -2)
	rec.SetClip(ink.R(0, 0, 16, 16))
	rec.ClearClip()
	require.Equal(t, 8, rec.Len())

	r := rec.Finish()
	require.Equal(t, 8, r.Len())

	op := r.Op(0)
	assert.Equal(t, KindFillRect, op.Kind)
	assert.Equal(t, ink.Red, op.Color)
	assert.Equal(t, ink.R(1, 2, 3, 4), op.Rect)
	assert.Zero(t, op.Width)

	op = r.Op(1)
	assert.Equal(t, KindStrokeRect, op.Kind)
	assert.Equal(t, float32(2.5), op.Width)
	assert.Equal(t, ink.R(5, 6, 7, 8), op.Rect)

	op = r.Op(2)
	assert.Equal(t, KindLine, op.Kind)
	assert.Equal(t, ink.Pt(1, 1), op.P1)
	assert.Equal(t, ink.Pt(9, 9), op.P2)
	assert.Equal(t, float32(3), op.Width)

	op = r.Op(3)
	assert.Equal(t, KindPolyline, op.Kind)
	assert.Equal(t, uint32(3), op.Count)
	assert.Equal(t, []ink.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}, r.Arena().Points(op.Offset, op.Count))

	op = r.Op(4)
	assert.Equal(t, KindText, op.Kind)
	assert.Equal(t, ink.Pt(10, 20), op.P1)
	assert.Equal(t, uint32(len("héllo")), op.Count)
	assert.Equal(t, "héllo", r.Arena().String(op.Offset, op.Count))
	assert.Equal(t, ink.RGBA(1, 2, 3, 4), op.Color)

	op = r.Op(5)
	assert.Equal(t, KindDrawImage, op.Kind)
	assert.Equal(t, ink.Pt(3.5, -2), op.P1)
	assert.Equal(t, uint32(0), op.Image)
	assert.Same(t, img, r.Image(op.Image))
	assert.Equal(t, ink.Black, op.Color, "operations without a color are opaque black")

	op = r.Op(6)
	assert.Equal(t, KindSetClip, op.Kind)
	assert.Equal(t, ink.R(0, 0, 16, 16), op.Rect)

	assert.Equal(t, KindClearClip, r.Op(7).Kind)
	assert.Equal(t, KindClearClip, r.Kind(7))
}

func TestRecorderImageIndices(t *testing.T) {
	a := ink.MakeFromPixmap(ink.Alloc(ink.MakeInfoRGBA(1, 1)))
	b := ink.MakeFromPixmap(ink.Alloc(ink.MakeInfoRGBA(1, 1)))

	rec := NewRecorder()
	rec.DrawImage(a, 0, 0)
	rec.FillRect(ink.R(0, 0, 1, 1), ink.Red)
	rec.DrawImage(b, 0, 0)
	rec.DrawImage(a, 1, 1)
	r := rec.Finish()

	assert.Equal(t, uint32(0), r.Op(0).Image)
	assert.Equal(t, uint32(1), r.Op(2).Image)
	assert.Equal(t, uint32(2), r.Op(3).Image)
	require.Len(t, r.Images(), 3)
	assert.Same(t, a, r.Images()[0])
	assert.Same(t, b, r.Images()[1])
	assert.Same(t, a, r.Images()[2])
	assert.Nil(t, r.Image(3))
	assert.Nil(t, r.Image(1<<31))
}

func TestRecorderFinishResets(t *testing.T) {
	rec := NewRecorder()
	rec.DrawText(ink.Pt(0, 0), "first", ink.White)
	rec.DrawImage(ink.MakeFromPixmap(ink.Alloc(ink.MakeInfoRGBA(1, 1))), 0, 0)
	first := rec.Finish()

	assert.Zero(t, rec.Len())

	rec.DrawText(ink.Pt(0, 0), "second", ink.White)
	second := rec.Finish()

	// The first recording must not see the second frame's arena writes.
	op := first.Op(0)
	assert.Equal(t, "first", first.Arena().String(op.Offset, op.Count))
	assert.Len(t, first.Images(), 1)

	op = second.Op(0)
	assert.Equal(t, uint32(0), op.Offset)
	assert.Equal(t, "second", second.Arena().String(op.Offset, op.Count))
	assert.Empty(t, second.Images())
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	rec.FillRect(ink.R(0, 0, 1, 1), ink.Red)
	rec.DrawText(ink.Pt(0, 0), "x", ink.Red)
	rec.DrawImage(nil, 0, 0)
	rec.Reset()

	r := rec.Finish()
	assert.Zero(t, r.Len())
	assert.Zero(t, r.Arena().Len())
	assert.Empty(t, r.Images())
}

func TestRecordingNilImage(t *testing.T) {
	rec := NewRecorder()
	rec.DrawImage(nil, 1, 2)
	r := rec.Finish()

	v := &traceVisitor{}
	r.Accept(v)
	assert.Equal(t, []string{"DrawImage"}, v.calls)
	assert.True(t, v.nilImage)
}

func TestRecordingAll(t *testing.T) {
	rec := NewRecorder()
	rec.FillRect(ink.R(0, 0, 1, 1), ink.Red)
	rec.ClearClip()
	rec.DrawLine(ink.Pt(0, 0), ink.Pt(1, 1), ink.Red, 1)
	r := rec.Finish()

	var kinds []Kind
	for i, op := range r.All() {
		assert.Equal(t, r.Kind(i), op.Kind)
		kinds = append(kinds, op.Kind)
	}
	assert.Equal(t, []Kind{KindFillRect, KindClearClip, KindLine}, kinds)

	// Early break.
	count := 0
	for range r.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestRecordingStats(t *testing.T) {
	rec := NewRecorder()
	rec.FillRect(ink.R(0, 0, 1, 1), ink.Red)
	rec.FillRect(ink.R(0, 0, 1, 1), ink.Red)
	rec.SetClip(ink.R(0, 0, 1, 1))
	rec.DrawText(ink.Pt(0, 0), "abc", ink.Red)
	rec.ClearClip()
	s := rec.Finish().Stats()

	assert.Equal(t, 5, s.Ops)
	assert.Equal(t, 2, s.Count(KindFillRect))
	assert.Equal(t, 1, s.Count(KindText))
	assert.Equal(t, 1, s.Count(KindSetClip))
	assert.Equal(t, 0, s.Count(Kind(99)))
	assert.Equal(t, 4, s.ArenaBytes)
	assert.Contains(t, s.String(), "5 ops")
}
