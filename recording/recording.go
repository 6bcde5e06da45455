package recording

import (
	"fmt"
	"iter"

	"github.com/gogpu/ink"
)

// Recording is an immutable command buffer: encoded operation records, the
// arena they reference and the images they draw.
//
// A Recording has no mutable state and may be read from several goroutines
// at once. It keeps every referenced image alive, so it may outlive the
// surface that produced those images.
type Recording struct {
	data   []byte
	arena  Arena
	images []*ink.Image
}

// Len returns the number of operations.
func (r *Recording) Len() int { return len(r.data) / RecordSize }

// Op decodes operation i. It panics if i is out of range.
func (r *Recording) Op(i int) DrawOp {
	return decodeOp(r.data[i*RecordSize : (i+1)*RecordSize])
}

// Kind returns the kind of operation i without decoding the whole record.
func (r *Recording) Kind(i int) Kind { return recordKind(r.data, i) }

// All returns an iterator over the decoded operations in recorded order.
func (r *Recording) All() iter.Seq2[int, DrawOp] {
	return func(yield func(int, DrawOp) bool) {
		for i := range r.Len() {
			if !yield(i, r.Op(i)) {
				return
			}
		}
	}
}

// Images returns the images referenced by the recording. The slice must
// not be modified.
func (r *Recording) Images() []*ink.Image { return r.images }

// Image returns the image at index, or nil when index is out of range.
func (r *Recording) Image(index uint32) *ink.Image {
	if int(index) >= len(r.images) {
		return nil
	}
	return r.images[index]
}

// Arena returns the arena holding variable-length payloads.
func (r *Recording) Arena() *Arena { return &r.arena }

// Accept visits every operation in recorded order.
func (r *Recording) Accept(v Visitor) {
	for i := range r.Len() {
		r.dispatchOp(i, v)
	}
}

// Dispatch visits operations in the order computed by pass. Indices outside
// the recording are skipped.
func (r *Recording) Dispatch(v Visitor, pass *DrawPass) {
	n := r.Len()
	for _, idx := range pass.Indices() {
		if int(idx) < n {
			r.dispatchOp(int(idx), v)
		}
	}
}

func (r *Recording) dispatchOp(i int, v Visitor) {
	op := r.Op(i)
	switch op.Kind {
	case KindFillRect:
		v.VisitFillRect(op.Rect, op.Color)
	case KindStrokeRect:
		v.VisitStrokeRect(op.Rect, op.Color, op.Width)
	case KindLine:
		v.VisitLine(op.P1, op.P2, op.Color, op.Width)
	case KindPolyline:
		v.VisitPolyline(r.arena.Points(op.Offset, op.Count), op.Color, op.Width)
	case KindText:
		v.VisitText(op.P1, r.arena.String(op.Offset, op.Count), op.Color)
	case KindDrawImage:
		v.VisitImage(r.Image(op.Image), op.P1.X, op.P1.Y)
	case KindSetClip:
		v.VisitSetClip(op.Rect)
	case KindClearClip:
		v.VisitClearClip()
	}
}

// Stats counts operations per kind.
type Stats struct {
	Ops        int
	PerKind    [kindCount]int
	ArenaBytes int
	Images     int
}

// Stats returns operation counts for diagnostics.
func (r *Recording) Stats() Stats {
	s := Stats{
		Ops:        r.Len(),
		ArenaBytes: r.arena.Len(),
		Images:     len(r.images),
	}
	for i := range s.Ops {
		if k := r.Kind(i); k < kindCount {
			s.PerKind[k]++
		}
	}
	return s
}

// Count returns the number of operations of kind k.
func (s Stats) Count(k Kind) int {
	if k >= kindCount {
		return 0
	}
	return s.PerKind[k]
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("%d ops (%d fill, %d stroke, %d line, %d polyline, %d text, %d image, %d clip), %d arena bytes",
		s.Ops,
		s.PerKind[KindFillRect], s.PerKind[KindStrokeRect], s.PerKind[KindLine],
		s.PerKind[KindPolyline], s.PerKind[KindText], s.PerKind[KindDrawImage],
		s.PerKind[KindSetClip]+s.PerKind[KindClearClip], s.ArenaBytes)
}
