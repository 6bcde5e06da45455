package backend

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/recording"
)

// SoftwareBackend rasterizes recordings on the CPU into a target pixmap.
//
// The target is owned by the caller (usually a surface). An invalid or nil
// target turns every operation into a no-op.
type SoftwareBackend struct {
	r rasterizer
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func(target *ink.Pixmap) Backend {
		return NewSoftwareBackend(target)
	})
}

// NewSoftwareBackend creates a software backend drawing into target.
func NewSoftwareBackend(target *ink.Pixmap) *SoftwareBackend {
	return &SoftwareBackend{r: rasterizer{target: target}}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Target returns the pixmap the backend draws into.
func (b *SoftwareBackend) Target() *ink.Pixmap { return b.r.target }

// SetTarget replaces the pixmap the backend draws into. The clip is kept.
func (b *SoftwareBackend) SetTarget(target *ink.Pixmap) { b.r.target = target }

// SetGlyphRenderer sets the collaborator used to draw text.
func (b *SoftwareBackend) SetGlyphRenderer(g ink.GlyphRenderer) { b.r.glyphs = g }

// BeginFrame clears the target to opaque black and removes the clip.
func (b *SoftwareBackend) BeginFrame() {
	b.r.target.Clear(ink.Black)
	b.r.VisitClearClip()
}

// EndFrame does nothing: pixels are final as soon as Execute returns.
func (b *SoftwareBackend) EndFrame() {}

// Execute rasterizes rec in the order given by pass. A nil pass is computed
// from rec.
func (b *SoftwareBackend) Execute(rec *recording.Recording, pass *recording.DrawPass) {
	if rec == nil {
		return
	}
	if pass == nil {
		pass = recording.NewDrawPass(rec)
	}
	rec.Dispatch(&b.r, pass)
}

// Resize does nothing: the owner of the target reallocates it and the
// backend picks up the new dimensions on the next frame.
func (b *SoftwareBackend) Resize(width, height int) {}

// MakeSnapshot returns a copy of the target, or nil if the target is invalid.
func (b *SoftwareBackend) MakeSnapshot() *ink.Image {
	return ink.MakeFromPixmap(b.r.target)
}

// Clip returns the active clip rectangle and whether one is set.
func (b *SoftwareBackend) Clip() (ink.Rect, bool) { return b.r.clip, b.r.hasClip }

var _ Backend = (*SoftwareBackend)(nil)
