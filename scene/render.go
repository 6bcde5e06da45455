package scene

import (
	"fmt"
	"path/filepath"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/surface"
	"github.com/gogpu/ink/text"
)

// NewSurface creates a surface sized for the scene, in the scene's pixel
// format, rendered by the best available backend.
func (sc *Scene) NewSurface(opts ...surface.Option) *surface.Surface {
	opts = append([]surface.Option{surface.WithFormat(sc.PixelFormat())}, opts...)
	return surface.MakeAuto(sc.Width, sc.Height, opts...)
}

// LoadGlyphs creates the glyph renderer selected by the scene's font.
// Relative font paths are resolved against the scene file.
func (sc *Scene) LoadGlyphs() (*text.GlyphCache, error) {
	var opts []text.Option
	if sc.Font.Size > 0 {
		opts = append(opts, text.WithSize(sc.Font.Size))
	}
	if sc.Font.Path == "" {
		return text.NewDefault(opts...)
	}
	path := sc.Font.Path
	if !filepath.IsAbs(path) && sc.dir != "" {
		path = filepath.Join(sc.dir, path)
	}
	return text.NewFromFile(path, opts...)
}

// Render draws the scene as one frame of s and flushes it. Layers are
// rendered first, each onto its own raster surface sharing s's glyph
// renderer.
func (sc *Scene) Render(s *surface.Surface) error {
	if err := sc.Validate(); err != nil {
		return err
	}

	images := make(map[string]*ink.Image, len(sc.Layers))
	for _, l := range sc.Layers {
		w, h := l.Width, l.Height
		if w == 0 {
			w = sc.Width
		}
		if h == 0 {
			h = sc.Height
		}
		ls := surface.MakeRaster(w, h,
			surface.WithFormat(s.Format()),
			surface.WithGlyphRenderer(s.GlyphRenderer()))
		renderFrame(ls, nil, l.Ops, images)

		img := ls.MakeSnapshot()
		if img == nil {
			return fmt.Errorf("scene: layer %q: snapshot failed", l.Name)
		}
		images[l.Name] = img
		slogger().Debug("scene: layer rendered", "layer", l.Name, "width", w, "height", h)
	}

	renderFrame(s, sc.Background, sc.Ops, images)
	return nil
}

func renderFrame(s *surface.Surface, bg *Color, ops []Op, images map[string]*ink.Image) {
	s.BeginFrame()
	c := s.Canvas()
	if bg != nil {
		c.FillRect(ink.R(0, 0, float32(s.Width()), float32(s.Height())), ink.Color(*bg))
	}
	Draw(c, ops, images)
	s.EndFrame()
	s.Flush()
}

// Draw issues ops on c. Image operations look up their source in images.
// Malformed ops and images with unknown names are skipped.
func Draw(c *surface.Canvas, ops []Op, images map[string]*ink.Image) {
	layers := make(map[string]bool, len(images))
	for name := range images {
		layers[name] = true
	}
	for i := range ops {
		op := &ops[i]
		if err := op.validate(layers); err != nil {
			slogger().Debug("scene: op skipped", "index", i, "op", op.Op, "error", err)
			continue
		}
		switch op.Op {
		case OpFillRect:
			c.FillRect(op.rect(), op.color())
		case OpStrokeRect:
			c.StrokeRect(op.rect(), op.color(), op.Width)
		case OpLine:
			c.DrawLine(point(op.P1), point(op.P2), op.color(), op.Width)
		case OpPolyline:
			c.DrawPolyline(op.points(), op.color(), op.Width)
		case OpText:
			c.DrawText(point(op.At), op.Text, op.color())
		case OpImage:
			c.DrawImage(images[op.From], op.At[0], op.At[1])
		case OpSave:
			c.Save()
		case OpRestore:
			c.Restore()
		case OpClipRect:
			c.ClipRect(op.rect())
		}
	}
}
