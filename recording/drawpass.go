package recording

import (
	"cmp"
	"slices"
)

// SortKey is the composite key used to order one operation. Fields are
// compared in declaration order.
type SortKey struct {
	// Group is the clip scope of the operation. A SetClip opens a new
	// group; the ClearClip that ends a scope stays in it.
	Group uint32
	// Rank clusters primitives of the same kind. SetClip ranks first and
	// ClearClip last within a group.
	Rank uint8
	// Color is the packed operation color (r<<24 | g<<16 | b<<8 | a).
	Color uint32
	// Seq is the recording index, which keeps the order total and stable.
	Seq uint32
}

// Compare returns -1, 0 or +1 depending on whether k sorts before, equal to
// or after o.
func (k SortKey) Compare(o SortKey) int {
	if c := cmp.Compare(k.Group, o.Group); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Rank, o.Rank); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Color, o.Color); c != 0 {
		return c
	}
	return cmp.Compare(k.Seq, o.Seq)
}

// Less reports whether k sorts before o.
func (k SortKey) Less(o SortKey) bool { return k.Compare(o) < 0 }

// Rank returns the batching rank of an operation kind.
func Rank(k Kind) uint8 {
	switch k {
	case KindSetClip:
		return 0
	case KindClearClip:
		return 7
	case KindFillRect, KindStrokeRect, KindLine, KindPolyline, KindText, KindDrawImage:
		return uint8(k) + 1
	default:
		return 8
	}
}

// DrawPass is the execution order of a Recording: a permutation of its
// operation indices that clusters operations sharing clip scope, kind and
// color.
//
// Operations never move across a clip change. Within a clip group the
// SetClip runs first and the ClearClip last.
type DrawPass struct {
	keys    []SortKey
	indices []uint32
}

// NewDrawPass computes the execution order of rec.
func NewDrawPass(rec *Recording) *DrawPass {
	n := rec.Len()
	keys := make([]SortKey, n)

	var group uint32
	closed := false // the previous group ended with a ClearClip
	for i := range n {
		kind := recordKind(rec.data, i)
		switch {
		case kind == KindSetClip:
			group++
			closed = false
		case closed:
			group++
			closed = false
		}
		if kind == KindClearClip {
			closed = true
		}
		keys[i] = SortKey{
			Group: group,
			Rank:  Rank(kind),
			Color: recordColor(rec.data, i),
			// #nosec G115 -- operation count is bounded by available memory
			Seq: uint32(i),
		}
	}

	slices.SortFunc(keys, SortKey.Compare)

	indices := make([]uint32, n)
	for i, k := range keys {
		indices[i] = k.Seq
	}
	return &DrawPass{keys: keys, indices: indices}
}

// Indices returns the operation indices in execution order. The slice must
// not be modified.
func (p *DrawPass) Indices() []uint32 {
	if p == nil {
		return nil
	}
	return p.indices
}

// Keys returns the sort keys in execution order.
func (p *DrawPass) Keys() []SortKey {
	if p == nil {
		return nil
	}
	return p.keys
}

// Len returns the number of operations in the pass.
func (p *DrawPass) Len() int { return len(p.Indices()) }
