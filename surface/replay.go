// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/recording"
)

// replayer appends the operations of another recording to a Device.
// Arena payloads and images are copied into the device's own recording.
type replayer struct {
	d *Device
}

var _ recording.Visitor = replayer{}

func (r replayer) VisitFillRect(rect ink.Rect, c ink.Color) { r.d.FillRect(rect, c) }

func (r replayer) VisitStrokeRect(rect ink.Rect, c ink.Color, width float32) {
	r.d.StrokeRect(rect, c, width)
}

func (r replayer) VisitLine(p1, p2 ink.Point, c ink.Color, width float32) {
	r.d.DrawLine(p1, p2, c, width)
}

func (r replayer) VisitPolyline(pts []ink.Point, c ink.Color, width float32) {
	r.d.DrawPolyline(pts, c, width)
}

func (r replayer) VisitText(pos ink.Point, text string, c ink.Color) { r.d.DrawText(pos, text, c) }
func (r replayer) VisitImage(img *ink.Image, x, y float32)           { r.d.DrawImage(img, x, y) }
func (r replayer) VisitSetClip(rect ink.Rect)                        { r.d.SetClipRect(rect) }
func (r replayer) VisitClearClip()                                   { r.d.ResetClip() }
