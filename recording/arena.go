package recording

import "github.com/gogpu/ink"

// Arena is an append-only byte store for variable-length operation payloads.
// Payloads are addressed by the byte offset returned when they were stored.
//
// Offsets are only valid for the Arena that produced them and only until
// the next Reset.
type Arena struct {
	data []byte
}

// pointSize is the encoded size of one ink.Point.
const pointSize = 8

// Allocate reserves n zeroed bytes and returns their offset.
func (a *Arena) Allocate(n int) uint32 {
	off := len(a.data)
	if n > 0 {
		a.data = append(a.data, make([]byte, n)...)
	}
	// #nosec G115 -- arena size is bounded by available memory
	return uint32(off)
}

// StoreString copies s into the arena followed by a NUL byte and returns
// its offset. The stored length is len(s).
func (a *Arena) StoreString(s string) uint32 {
	// #nosec G115 -- arena size is bounded by available memory
	off := uint32(len(a.data))
	a.data = append(a.data, s...)
	a.data = append(a.data, 0)
	return off
}

// StorePoints copies pts into the arena as little-endian float32 pairs and
// returns their offset.
func (a *Arena) StorePoints(pts []ink.Point) uint32 {
	off := a.Allocate(len(pts) * pointSize)
	b := a.data[off:]
	for i, p := range pts {
		putFloat(b[i*pointSize:], p.X)
		putFloat(b[i*pointSize+4:], p.Y)
	}
	return off
}

// String returns the n bytes stored at off as a string.
func (a *Arena) String(off, n uint32) string {
	return string(a.data[off : off+n])
}

// Points returns a copy of the count points stored at off.
func (a *Arena) Points(off, count uint32) []ink.Point {
	if count == 0 {
		return nil
	}
	b := a.data[off : off+count*pointSize]
	pts := make([]ink.Point, count)
	for i := range pts {
		pts[i] = ink.Point{
			X: getFloat(b[i*pointSize:]),
			Y: getFloat(b[i*pointSize+4:]),
		}
	}
	return pts
}

// Len returns the number of bytes stored.
func (a *Arena) Len() int { return len(a.data) }

// Reset discards all content. The backing storage is kept for reuse.
func (a *Arena) Reset() { a.data = a.data[:0] }

