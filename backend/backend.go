package backend

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/recording"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend executes recordings.
//
// A Backend holds mutable frame state (target, clip) and must not be used
// from several goroutines at once.
type Backend interface {
	// Name returns the backend identifier (e.g., "software").
	Name() string

	// BeginFrame prepares the target for a new frame.
	BeginFrame()

	// EndFrame finishes the frame. Pixels are final afterwards.
	EndFrame()

	// Execute plays rec back in the order given by pass.
	Execute(rec *recording.Recording, pass *recording.DrawPass)

	// Resize notifies the backend that the target dimensions changed.
	Resize(width, height int)

	// MakeSnapshot returns an immutable copy of the current target, or nil
	// when the backend has no readable pixels.
	MakeSnapshot() *ink.Image

	// SetGlyphRenderer sets the collaborator used for text. A nil renderer
	// disables text.
	SetGlyphRenderer(g ink.GlyphRenderer)
}

// Submit computes the execution order of rec and executes it on b.
func Submit(b Backend, rec *recording.Recording) {
	if b == nil || rec == nil {
		return
	}
	pass := recording.NewDrawPass(rec)
	if l := slogger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("backend: submit", "backend", b.Name(), "stats", rec.Stats().String())
	}
	b.Execute(rec, pass)
}

func slogger() *slog.Logger { return ink.Logger() }
