// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu defines the boundary between ink and GPU execution backends.
//
// GPU backends implement [backend.Backend] and live outside this module.
// This package gives them the shared pieces they need to interoperate with
// the CPU side of the pipeline:
//
//   - [Readback] and [NativeResource], the optional capabilities a GPU
//     backend exposes next to the backend contract
//   - [TextureFormat] and [PixelFormat], the mapping between ink pixel
//     formats and WebGPU texture formats
//   - [Describe], the texture descriptor used to upload an [ink.Image]
//   - [TextureCache], which keeps one uploaded texture per image snapshot,
//     keyed by [ink.Image.ID]
//
// A backend typically resolves images while executing a recording:
//
//	tex, err := cache.GetOrUpload(img, func(img *ink.Image) (*Texture, error) {
//		return device.CreateTexture(gpu.Describe(img, "snapshot"), img.Pix())
//	})
package gpu
