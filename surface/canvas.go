// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/ink"

// ClipState is the clip in effect on a Canvas.
type ClipState struct {
	HasClip bool
	Rect    ink.Rect
}

// Canvas is the user-facing drawing API.
//
// Drawing calls are forwarded to the Device with their literal arguments;
// clipping happens at execution time against the clip recorded before
// them. The Canvas itself only tracks clip state across Save and Restore.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	dev   *Device
	stack []ClipState
	cur   ClipState
}

// NewCanvas creates a Canvas recording into dev, with no clip.
func NewCanvas(dev *Device) *Canvas {
	return &Canvas{dev: dev}
}

// FillRect fills r with c.
func (c *Canvas) FillRect(r ink.Rect, col ink.Color) { c.dev.FillRect(r, col) }

// StrokeRect outlines r with bands of the given width.
func (c *Canvas) StrokeRect(r ink.Rect, col ink.Color, width float32) {
	c.dev.StrokeRect(r, col, width)
}

// DrawLine draws a segment from p1 to p2, both ends included.
func (c *Canvas) DrawLine(p1, p2 ink.Point, col ink.Color, width float32) {
	c.dev.DrawLine(p1, p2, col, width)
}

// DrawPolyline draws a segment between each pair of consecutive points.
func (c *Canvas) DrawPolyline(pts []ink.Point, col ink.Color, width float32) {
	c.dev.DrawPolyline(pts, col, width)
}

// DrawText draws UTF-8 text with the top-left corner of its line at p.
func (c *Canvas) DrawText(p ink.Point, text string, col ink.Color) {
	c.dev.DrawText(p, text, col)
}

// DrawImage composites img with its top-left corner at (x, y).
func (c *Canvas) DrawImage(img *ink.Image, x, y float32) { c.dev.DrawImage(img, x, y) }

// Save pushes the current clip state. Nothing is recorded.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops the clip state pushed by the matching Save and records the
// restored clip. Restore without a matching Save does nothing.
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.cur = c.stack[n-1]
	c.stack = c.stack[:n-1]
	if c.cur.HasClip {
		c.dev.SetClipRect(c.cur.Rect)
	} else {
		c.dev.ResetClip()
	}
}

// ClipRect intersects the current clip with r and records the result.
// Disjoint rectangles leave an empty clip, through which nothing is drawn.
func (c *Canvas) ClipRect(r ink.Rect) {
	if c.cur.HasClip {
		r = c.cur.Rect.Intersect(r)
	}
	c.cur = ClipState{HasClip: true, Rect: r}
	c.dev.SetClipRect(r)
}

// ClipState returns the clip currently in effect.
func (c *Canvas) ClipState() ClipState { return c.cur }

// SaveCount returns the number of saved states.
func (c *Canvas) SaveCount() int { return len(c.stack) }

// reset drops the clip state without recording anything.
func (c *Canvas) reset() {
	clear(c.stack)
	c.stack = c.stack[:0]
	c.cur = ClipState{}
}
