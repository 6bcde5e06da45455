package backend

import (
	"image"
	"math"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/blend"
	"github.com/gogpu/ink/recording"
)

// rasterizer is the recording.Visitor behind SoftwareBackend. It holds the
// target and the flattened clip state.
type rasterizer struct {
	target  *ink.Pixmap
	glyphs  ink.GlyphRenderer
	hasClip bool
	clip    ink.Rect
}

var _ recording.Visitor = (*rasterizer)(nil)

// coordLimit bounds every converted coordinate. It lies far outside any
// target and leaves headroom for edge arithmetic in int.
const coordLimit = 1 << 24

// maxLineWidth bounds the square stamped along lines and polylines.
const maxLineWidth = 1 << 12

// toPixel truncates v toward zero after clamping it to ±coordLimit.
// Callers must reject NaN first.
func toPixel(v float32) int {
	return int(max(-coordLimit, min(v, coordLimit)))
}

func isNaN(v float32) bool { return v != v }

// truncRect converts r to integer pixel bounds, truncating every edge
// toward zero. A rectangle with a NaN edge is empty.
func truncRect(r ink.Rect) image.Rectangle {
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	if isNaN(x0) || isNaN(y0) || isNaN(x1) || isNaN(y1) {
		return image.Rectangle{}
	}
	return image.Rectangle{
		Min: image.Point{X: toPixel(x0), Y: toPixel(y0)},
		Max: image.Point{X: toPixel(x1), Y: toPixel(y1)},
	}
}

// effectiveClip returns the writable pixel region: the clip rectangle, or
// the whole target when no clip is active, intersected with the target.
func (r *rasterizer) effectiveClip() image.Rectangle {
	if !r.target.Valid() {
		return image.Rectangle{}
	}
	bounds := image.Rectangle{Max: image.Point{X: r.target.Width(), Y: r.target.Height()}}
	if !r.hasClip {
		return bounds
	}
	return truncRect(r.clip).Intersect(bounds)
}

// fill composites c over every pixel of box inside the effective clip.
func (r *rasterizer) fill(box image.Rectangle, c ink.Color) {
	if c.A == 0 {
		return
	}
	box = box.Intersect(r.effectiveClip())
	if box.Empty() {
		return
	}
	pix, stride, f := r.target.Pix(), r.target.Stride(), r.target.Format()
	for y := box.Min.Y; y < box.Max.Y; y++ {
		off := y*stride + box.Min.X*ink.BytesPerPixel
		blend.SpanOver(pix[off:], f, c, box.Dx())
	}
}

// strokeWidth converts a recorded width to whole pixels, at least one.
func strokeWidth(width float32) int {
	if isNaN(width) {
		return 1
	}
	return max(1, toPixel(width))
}

func (r *rasterizer) VisitFillRect(rect ink.Rect, c ink.Color) {
	r.fill(truncRect(rect), c)
}

// VisitStrokeRect draws four non-overlapping bands inside the rectangle
// bounds. The interior is left untouched.
func (r *rasterizer) VisitStrokeRect(rect ink.Rect, c ink.Color, width float32) {
	b := truncRect(rect)
	if b.Empty() {
		return
	}
	w := strokeWidth(width)

	top := min(b.Min.Y+w, b.Max.Y)
	bottom := max(b.Max.Y-w, top)
	r.fill(image.Rect(b.Min.X, b.Min.Y, b.Max.X, top), c)
	if bottom < b.Max.Y {
		r.fill(image.Rect(b.Min.X, bottom, b.Max.X, b.Max.Y), c)
	}
	if top >= bottom {
		return
	}
	left := min(b.Min.X+w, b.Max.X)
	right := max(b.Max.X-w, left)
	r.fill(image.Rect(b.Min.X, top, left, bottom), c)
	if right < b.Max.X {
		r.fill(image.Rect(right, top, b.Max.X, bottom), c)
	}
}

func (r *rasterizer) VisitLine(p1, p2 ink.Point, c ink.Color, width float32) {
	r.line(p1, p2, c, strokeWidth(width))
}

func (r *rasterizer) VisitPolyline(pts []ink.Point, c ink.Color, width float32) {
	w := strokeWidth(width)
	for i := 0; i+1 < len(pts); i++ {
		r.line(pts[i], pts[i+1], c, w)
	}
}

// line draws an aliased segment with both endpoints included. Wider lines
// stamp a w x w square at every step. Each covered pixel is blended once.
//
// Only the part of the segment whose stamps can reach the clip is walked.
// A segment with a NaN endpoint draws nothing.
func (r *rasterizer) line(p1, p2 ink.Point, c ink.Color, w int) {
	if c.A == 0 || isNaN(p1.X) || isNaN(p1.Y) || isNaN(p2.X) || isNaN(p2.Y) {
		return
	}
	clip := r.effectiveClip()
	if clip.Empty() {
		return
	}
	w = min(w, maxLineWidth)
	lo, hi := -(w-1)/2, w/2

	x0, y0, x1, y1, ok := clipSegment(p1, p2, clip.Inset(-(hi + 1)))
	if !ok {
		return
	}

	// Stamps along one row of the walk merge into a single run, and the
	// runs covering any pixel row form one contiguous span.
	spans := newRowSpans(clip)
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx - dy
	runStart := x0
	for {
		if x0 == x1 && y0 == y1 {
			spans.add(min(runStart, x0)+lo, max(runStart, x0)+hi, y0+lo, y0+hi)
			break
		}
		e2 := 2 * e
		nx, ny := x0, y0
		if e2 > -dy {
			e -= dy
			nx += sx
		}
		if e2 < dx {
			e += dx
			ny += sy
		}
		if ny != y0 {
			spans.add(min(runStart, x0)+lo, max(runStart, x0)+hi, y0+lo, y0+hi)
			runStart = nx
		}
		x0, y0 = nx, ny
	}

	for y, s := range spans.rows {
		if s.min <= s.max {
			r.fill(image.Rect(s.min, spans.top+y, s.max+1, spans.top+y+1), c)
		}
	}
}

// clipSegment clips the segment p1-p2 to win with the Liang-Barsky test
// and truncates the result to pixels. A segment with both endpoints inside
// win is returned unchanged, so its pixel walk is exact.
func clipSegment(p1, p2 ink.Point, win image.Rectangle) (x0, y0, x1, y1 int, ok bool) {
	limit := func(v float32) float64 { return float64(max(-coordLimit, min(v, coordLimit))) }
	ax, ay, bx, by := limit(p1.X), limit(p1.Y), limit(p2.X), limit(p2.Y)
	minX, minY := float64(win.Min.X), float64(win.Min.Y)
	maxX, maxY := float64(win.Max.X), float64(win.Max.Y)
	inside := func(x, y float64) bool { return x >= minX && x <= maxX && y >= minY && y <= maxY }
	if inside(ax, ay) && inside(bx, by) {
		return int(ax), int(ay), int(bx), int(by), true
	}

	dx, dy := bx-ax, by-ay
	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-dx, ax - minX},
		{dx, maxX - ax},
		{-dy, ay - minY},
		{dy, maxY - ay},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	return int(ax + t0*dx), int(ay + t0*dy), int(ax + t1*dx), int(ay + t1*dy), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rowSpans accumulates, for every pixel row of a region, the union of the
// horizontal ranges drawn on it.
type rowSpans struct {
	top  int
	rows []span
}

type span struct{ min, max int }

func newRowSpans(region image.Rectangle) *rowSpans {
	rows := make([]span, region.Dy())
	for i := range rows {
		rows[i] = span{min: math.MaxInt, max: math.MinInt}
	}
	return &rowSpans{top: region.Min.Y, rows: rows}
}

// add widens rows y0 through y1 to include columns x0 through x1.
func (s *rowSpans) add(x0, x1, y0, y1 int) {
	y0 = max(y0, s.top)
	y1 = min(y1, s.top+len(s.rows)-1)
	for y := y0; y <= y1; y++ {
		row := &s.rows[y-s.top]
		row.min = min(row.min, x0)
		row.max = max(row.max, x1)
	}
}

func (r *rasterizer) VisitText(pos ink.Point, text string, c ink.Color) {
	if r.glyphs == nil || text == "" || c.A == 0 || isNaN(pos.X) || isNaN(pos.Y) {
		return
	}
	clip := r.effectiveClip()
	if clip.Empty() {
		return
	}
	r.glyphs.DrawText(ink.GlyphTarget{
		Pix:    r.target.Pix(),
		Stride: r.target.Stride() / ink.BytesPerPixel,
		Height: r.target.Height(),
		Format: r.target.Format(),
		Clip:   clip,
	}, toPixel(pos.X), toPixel(pos.Y), text, c)
}

// VisitImage blits img with its top-left corner at the truncated (x, y).
// Transparent source pixels are skipped, opaque ones are copied with
// channel-order conversion and the rest are blended.
func (r *rasterizer) VisitImage(img *ink.Image, x, y float32) {
	if !img.Valid() || isNaN(x) || isNaN(y) {
		return
	}
	ox, oy := toPixel(x), toPixel(y)
	box := image.Rect(ox, oy, ox+img.Width(), oy+img.Height()).Intersect(r.effectiveClip())
	if box.Empty() {
		return
	}

	src, srcStride, sf := img.Pix(), img.Stride(), img.Format()
	dst, dstStride, df := r.target.Pix(), r.target.Stride(), r.target.Format()
	for py := box.Min.Y; py < box.Max.Y; py++ {
		srow := src[(py-oy)*srcStride:]
		drow := dst[py*dstStride:]
		for px := box.Min.X; px < box.Max.X; px++ {
			so := (px - ox) * ink.BytesPerPixel
			do := px * ink.BytesPerPixel
			blend.SourceOver(drow[do:do+ink.BytesPerPixel], df, blend.Load(srow[so:so+ink.BytesPerPixel], sf))
		}
	}
}

func (r *rasterizer) VisitSetClip(rect ink.Rect) {
	r.clip = rect
	r.hasClip = true
}

func (r *rasterizer) VisitClearClip() {
	r.clip = ink.Rect{}
	r.hasClip = false
}
