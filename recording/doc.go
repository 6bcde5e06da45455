// Package recording captures drawing operations into immutable command
// buffers and computes their batched execution order.
//
// A [Recorder] appends one fixed-size binary record per drawing call.
// Variable-length payloads (polyline points, UTF-8 text) go to a side
// [Arena] and are referenced by offset; images are referenced by index into
// the recording's image list. [Recorder.Finish] hands everything over to an
// immutable [Recording] and leaves the recorder empty for the next frame.
//
// # Record layout
//
// Each record is 28 bytes, little-endian:
//
//	offset  size  field
//	0       1     kind
//	1       3     padding
//	4       4     color (R, G, B, A)
//	8       4     width (float32)
//	12      16    payload (kind specific)
//
// Arena offsets and image indices are only meaningful inside the recording
// that produced them.
//
// # Traversal
//
// [Recording.Accept] visits records in recorded order. [Recording.Dispatch]
// visits them in the order computed by a [DrawPass], which groups records
// by clip scope, primitive kind and color without letting any draw leave
// its clip scope.
//
// # Example
//
//	rec := recording.NewRecorder()
//	rec.SetClip(ink.R(0, 0, 50, 50))
//	rec.FillRect(ink.R(10, 10, 20, 20), ink.Red)
//	rec.ClearClip()
//	r := rec.Finish()
//
//	pass := recording.NewDrawPass(r)
//	r.Dispatch(visitor, pass)
package recording
