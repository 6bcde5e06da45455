// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/recording"
)

// Device records the drawing calls of a Canvas.
//
// Between BeginFrame and EndFrame every call appends one operation to the
// frame's recorder. EndFrame seals the frame into a Recording which stays
// pending until FinishRecording hands it out.
type Device struct {
	rec     *recording.Recorder
	pending *recording.Recording
	width   int
	height  int
}

// NewDevice creates a device for a width x height drawing area.
func NewDevice(width, height int) *Device {
	return &Device{
		rec:    recording.NewRecorder(),
		width:  width,
		height: height,
	}
}

// Width returns the width of the drawing area.
func (d *Device) Width() int { return d.width }

// Height returns the height of the drawing area.
func (d *Device) Height() int { return d.height }

// Resize changes the drawing area dimensions.
func (d *Device) Resize(width, height int) {
	d.width, d.height = width, height
}

// BeginFrame discards recorded operations and any pending recording.
func (d *Device) BeginFrame() {
	d.rec.Reset()
	d.pending = nil
}

// EndFrame seals the operations recorded so far into the pending recording.
func (d *Device) EndFrame() {
	d.pending = d.rec.Finish()
}

// Len returns the number of operations recorded in the current frame.
func (d *Device) Len() int { return d.rec.Len() }

// FinishRecording returns the pending recording, or seals the operations
// recorded so far if EndFrame was not called. The device holds no recording
// afterwards.
func (d *Device) FinishRecording() *recording.Recording {
	rec := d.pending
	d.pending = nil
	if rec == nil {
		rec = d.rec.Finish()
	}
	return rec
}

func (d *Device) FillRect(r ink.Rect, c ink.Color) { d.rec.FillRect(r, c) }

func (d *Device) StrokeRect(r ink.Rect, c ink.Color, width float32) {
	d.rec.StrokeRect(r, c, width)
}

func (d *Device) DrawLine(p1, p2 ink.Point, c ink.Color, width float32) {
	d.rec.DrawLine(p1, p2, c, width)
}

func (d *Device) DrawPolyline(pts []ink.Point, c ink.Color, width float32) {
	d.rec.DrawPolyline(pts, c, width)
}

func (d *Device) DrawText(p ink.Point, text string, c ink.Color) { d.rec.DrawText(p, text, c) }

func (d *Device) DrawImage(img *ink.Image, x, y float32) { d.rec.DrawImage(img, x, y) }

// SetClipRect records a clip change.
func (d *Device) SetClipRect(r ink.Rect) { d.rec.SetClip(r) }

// ResetClip records the removal of the clip.
func (d *Device) ResetClip() { d.rec.ClearClip() }
