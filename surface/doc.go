// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface is the drawing front end of ink.
//
// A [Surface] owns a [Canvas], the [Device] that records what the canvas
// draws, and, for raster surfaces, the pixel buffer and the backend that
// executes the recording.
//
// # Creating surfaces
//
//	s := surface.MakeRaster(800, 600)                 // owned BGRA pixels, software backend
//	s := surface.MakeRasterDirect(info, hostPixels)   // draws into caller memory
//	s := surface.MakeRecording(800, 600)              // records only
//	s := surface.MakeAuto(800, 600)                   // best registered backend
//
// # Frame protocol
//
//	s.BeginFrame()
//	c := s.Canvas()
//	c.Save()
//	c.ClipRect(ink.R(0, 0, 100, 100))
//	c.FillRect(ink.R(10, 10, 50, 50), ink.Red)
//	c.Restore()
//	s.EndFrame()
//	s.Flush()
//
// Drawing calls are recorded, never rasterized immediately. Flush orders
// the recording into batches and executes it on the backend.
//
// # Clipping
//
// The canvas keeps a save/restore stack of clip rectangles. Nested clips
// intersect. Every change of the effective clip is recorded, so the command
// stream always carries the clip in force for each draw.
package surface
