package recording

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/ink"
)

// Kind identifies the type of a recorded operation.
type Kind uint8

const (
	KindFillRect   Kind = iota // Fill a rectangle
	KindStrokeRect             // Stroke a rectangle outline
	KindLine                   // Draw a line segment
	KindPolyline               // Draw connected line segments
	KindText                   // Draw UTF-8 text
	KindDrawImage              // Composite an image
	KindSetClip                // Set the clip rectangle
	KindClearClip              // Remove the clip rectangle

	kindCount
)

var kindNames = [...]string{
	KindFillRect:   "FillRect",
	KindStrokeRect: "StrokeRect",
	KindLine:       "Line",
	KindPolyline:   "Polyline",
	KindText:       "Text",
	KindDrawImage:  "DrawImage",
	KindSetClip:    "SetClip",
	KindClearClip:  "ClearClip",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// RecordSize is the encoded size of one operation in bytes.
const RecordSize = 28

const (
	offKind    = 0
	offColor   = 4
	offWidth   = 8
	offPayload = 12
)

// DrawOp is a decoded operation record.
//
// Which fields are meaningful depends on Kind:
//
//	FillRect, StrokeRect, SetClip  Rect
//	Line                           P1, P2
//	Polyline                       Offset, Count (points in the arena)
//	Text                           P1 (position), Offset, Count (bytes in the arena)
//	DrawImage                      P1 (position), Image (index into the image list)
//
// Operations without a color carry opaque black; operations without a
// width carry 0.
type DrawOp struct {
	Kind   Kind
	Color  ink.Color
	Width  float32
	Rect   ink.Rect
	P1, P2 ink.Point
	Offset uint32
	Count  uint32
	Image  uint32
}

// encode appends the binary form of op to b.
func (op *DrawOp) encode(b []byte) []byte {
	var rec [RecordSize]byte
	rec[offKind] = byte(op.Kind)
	rec[offColor+0] = op.Color.R
	rec[offColor+1] = op.Color.G
	rec[offColor+2] = op.Color.B
	rec[offColor+3] = op.Color.A
	putFloat(rec[offWidth:], op.Width)

	p := rec[offPayload:]
	switch op.Kind {
	case KindFillRect, KindStrokeRect, KindSetClip:
		putFloat(p[0:], op.Rect.X)
		putFloat(p[4:], op.Rect.Y)
		putFloat(p[8:], op.Rect.W)
		putFloat(p[12:], op.Rect.H)
	case KindLine:
		putFloat(p[0:], op.P1.X)
		putFloat(p[4:], op.P1.Y)
		putFloat(p[8:], op.P2.X)
		putFloat(p[12:], op.P2.Y)
	case KindPolyline:
		binary.LittleEndian.PutUint32(p[0:], op.Offset)
		binary.LittleEndian.PutUint32(p[4:], op.Count)
	case KindText:
		putFloat(p[0:], op.P1.X)
		putFloat(p[4:], op.P1.Y)
		binary.LittleEndian.PutUint32(p[8:], op.Offset)
		binary.LittleEndian.PutUint32(p[12:], op.Count)
	case KindDrawImage:
		putFloat(p[0:], op.P1.X)
		putFloat(p[4:], op.P1.Y)
		binary.LittleEndian.PutUint32(p[8:], op.Image)
	}
	return append(b, rec[:]...)
}

// decodeOp decodes one record. rec must be at least RecordSize bytes.
func decodeOp(rec []byte) DrawOp {
	_ = rec[RecordSize-1]
	op := DrawOp{
		Kind:  Kind(rec[offKind]),
		Color: ink.Color{R: rec[offColor], G: rec[offColor+1], B: rec[offColor+2], A: rec[offColor+3]},
		Width: getFloat(rec[offWidth:]),
	}
	p := rec[offPayload:]
	switch op.Kind {
	case KindFillRect, KindStrokeRect, KindSetClip:
		op.Rect = ink.Rect{X: getFloat(p[0:]), Y: getFloat(p[4:]), W: getFloat(p[8:]), H: getFloat(p[12:])}
	case KindLine:
		op.P1 = ink.Point{X: getFloat(p[0:]), Y: getFloat(p[4:])}
		op.P2 = ink.Point{X: getFloat(p[8:]), Y: getFloat(p[12:])}
	case KindPolyline:
		op.Offset = binary.LittleEndian.Uint32(p[0:])
		op.Count = binary.LittleEndian.Uint32(p[4:])
	case KindText:
		op.P1 = ink.Point{X: getFloat(p[0:]), Y: getFloat(p[4:])}
		op.Offset = binary.LittleEndian.Uint32(p[8:])
		op.Count = binary.LittleEndian.Uint32(p[12:])
	case KindDrawImage:
		op.P1 = ink.Point{X: getFloat(p[0:]), Y: getFloat(p[4:])}
		op.Image = binary.LittleEndian.Uint32(p[8:])
	}
	return op
}

// recordKind reads only the kind byte of record i.
func recordKind(data []byte, i int) Kind {
	return Kind(data[i*RecordSize+offKind])
}

// recordColor reads only the packed color of record i.
func recordColor(data []byte, i int) uint32 {
	c := data[i*RecordSize+offColor:]
	return uint32(c[0])<<24 | uint32(c[1])<<16 | uint32(c[2])<<8 | uint32(c[3])
}

func putFloat(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getFloat(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
