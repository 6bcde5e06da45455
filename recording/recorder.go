package recording

import "github.com/gogpu/ink"

// Recorder accumulates drawing operations for one frame.
//
// Each call appends exactly one record. Call Finish to obtain the immutable
// Recording; the Recorder is empty afterwards and can be reused.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	data   []byte
	arena  Arena
	images []*ink.Image
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		data: make([]byte, 0, 64*RecordSize),
	}
}

// Reset discards all recorded content.
func (r *Recorder) Reset() {
	r.data = r.data[:0]
	r.arena.Reset()
	clear(r.images)
	r.images = r.images[:0]
}

// Len returns the number of recorded operations.
func (r *Recorder) Len() int { return len(r.data) / RecordSize }

// FillRect records a filled rectangle.
func (r *Recorder) FillRect(rect ink.Rect, c ink.Color) {
	r.push(DrawOp{Kind: KindFillRect, Color: c, Rect: rect})
}

// StrokeRect records a rectangle outline of the given width.
func (r *Recorder) StrokeRect(rect ink.Rect, c ink.Color, width float32) {
	r.push(DrawOp{Kind: KindStrokeRect, Color: c, Width: width, Rect: rect})
}

// DrawLine records a line segment from p1 to p2.
func (r *Recorder) DrawLine(p1, p2 ink.Point, c ink.Color, width float32) {
	r.push(DrawOp{Kind: KindLine, Color: c, Width: width, P1: p1, P2: p2})
}

// DrawPolyline records connected line segments through pts. The points are
// copied into the arena.
func (r *Recorder) DrawPolyline(pts []ink.Point, c ink.Color, width float32) {
	r.push(DrawOp{
		Kind:   KindPolyline,
		Color:  c,
		Width:  width,
		Offset: r.arena.StorePoints(pts),
		// #nosec G115 -- point count is bounded by available memory
		Count: uint32(len(pts)),
	})
}

// DrawText records UTF-8 text with its top-left corner at pos. The bytes are
// copied into the arena.
func (r *Recorder) DrawText(pos ink.Point, text string, c ink.Color) {
	r.push(DrawOp{
		Kind:   KindText,
		Color:  c,
		P1:     pos,
		Offset: r.arena.StoreString(text),
		// #nosec G115 -- text length is bounded by available memory
		Count: uint32(len(text)),
	})
}

// DrawImage records img composited with its top-left corner at (x, y).
// The recording keeps a reference to img.
func (r *Recorder) DrawImage(img *ink.Image, x, y float32) {
	// #nosec G115 -- image count is bounded by available memory
	idx := uint32(len(r.images))
	r.images = append(r.images, img)
	r.push(DrawOp{Kind: KindDrawImage, Color: ink.Black, P1: ink.Point{X: x, Y: y}, Image: idx})
}

// SetClip records a change of the clip rectangle.
func (r *Recorder) SetClip(rect ink.Rect) {
	r.push(DrawOp{Kind: KindSetClip, Color: ink.Black, Rect: rect})
}

// ClearClip records the removal of the clip rectangle.
func (r *Recorder) ClearClip() {
	r.push(DrawOp{Kind: KindClearClip, Color: ink.Black})
}

// Finish transfers the recorded operations into a new immutable Recording
// and resets the Recorder.
func (r *Recorder) Finish() *Recording {
	rec := &Recording{
		data:   r.data,
		arena:  r.arena,
		images: r.images,
	}
	r.data = make([]byte, 0, cap(r.data))
	r.arena = Arena{}
	r.images = nil
	return rec
}

func (r *Recorder) push(op DrawOp) {
	r.data = op.encode(r.data)
}
