// Package backend executes recordings into pixels.
//
// A [Backend] consumes an immutable [recording.Recording] together with the
// [recording.DrawPass] that orders it. The [SoftwareBackend] rasterizes on
// the CPU into an [ink.Pixmap]; GPU backends live outside this module and
// plug in through the same contract and the registry.
//
// # Backend Registration
//
// Backends are registered by name with a factory that binds them to a
// target pixmap. The software backend registers itself on import:
//
//	b, err := backend.Get(backend.BackendSoftware, pixmap)
//
// Default picks the highest-priority registered backend:
//
//	b := backend.Default(pixmap)
//
// # Frame protocol
//
//	b.BeginFrame()               // clear to opaque black, drop the clip
//	backend.Submit(b, rec)       // order and execute
//	b.EndFrame()
//
// # Software rasterization
//
// The software backend draws aliased primitives with integer coordinates
// truncated toward zero. Every primitive is clipped against the effective
// clip, which is the active clip rectangle or the whole target, and
// composited with 8-bit straight-alpha source-over blending.
package backend
