package recording

import "github.com/gogpu/ink"

// Visitor receives decoded operations from Recording.Accept and
// Recording.Dispatch, one call per record.
//
// Slices passed to a Visitor are freshly allocated and may be retained.
type Visitor interface {
	VisitFillRect(r ink.Rect, c ink.Color)
	VisitStrokeRect(r ink.Rect, c ink.Color, width float32)
	VisitLine(p1, p2 ink.Point, c ink.Color, width float32)
	VisitPolyline(pts []ink.Point, c ink.Color, width float32)
	VisitText(pos ink.Point, text string, c ink.Color)

	// VisitImage receives nil when the record references no image.
	VisitImage(img *ink.Image, x, y float32)

	VisitSetClip(r ink.Rect)
	VisitClearClip()
}
