package text

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/blend"
	"github.com/gogpu/ink/internal/cache"
)

// glyph is one rasterized rune. The mask rectangle is relative to the pen
// position on the baseline; mask is nil for runes without ink.
type glyph struct {
	mask    *image.Alpha
	advance fixed.Int26_6
}

// GlyphCache rasterizes text with a single font at a fixed pixel size.
//
// GlyphCache is safe for concurrent use.
type GlyphCache struct {
	// mu guards face, which rasterizes into a shared buffer.
	mu   sync.Mutex
	face font.Face

	// shaper is nil when go-text cannot load the font.
	shaper *shaper
	masks  *cache.Cache[rune, *glyph]

	size       float64
	ascent     int
	descent    int
	lineHeight int
}

var _ ink.GlyphRenderer = (*GlyphCache)(nil)

// New creates a GlyphCache from TrueType or OpenType font data.
func New(data []byte, opts ...Option) (*GlyphCache, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    cfg.size,
		DPI:     72,
		Hinting: mapHinting(cfg.hinting),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}

	m := face.Metrics()
	g := &GlyphCache{
		face:       face,
		masks:      cache.New[rune, *glyph](cfg.cacheLimit),
		size:       cfg.size,
		ascent:     m.Ascent.Ceil(),
		descent:    m.Descent.Ceil(),
		lineHeight: m.Height.Ceil(),
	}
	g.shaper, err = newShaper(data, cfg)
	if err != nil {
		slogger().Debug("text: shaping unavailable, measuring with font advances", "err", err)
	}
	return g, nil
}

// NewDefault creates a GlyphCache using the Go Regular font.
func NewDefault(opts ...Option) (*GlyphCache, error) {
	return New(goregular.TTF, opts...)
}

// NewFromFile loads a GlyphCache from a font file path.
func NewFromFile(path string, opts ...Option) (*GlyphCache, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return New(data, opts...)
}

// Size returns the font size in pixels.
func (g *GlyphCache) Size() float64 { return g.size }

// Ascent returns the distance from the top of a line to its baseline.
func (g *GlyphCache) Ascent() int { return g.ascent }

// Descent returns the distance from the baseline to the bottom of a line.
func (g *GlyphCache) Descent() int { return g.descent }

// LineHeight returns the distance between consecutive baselines in pixels.
func (g *GlyphCache) LineHeight() int { return g.lineHeight }

// Cached returns the number of glyph masks currently held.
func (g *GlyphCache) Cached() int { return g.masks.Len() }

// Shaped reports whether MeasureText uses HarfBuzz shaping.
func (g *GlyphCache) Shaped() bool { return g.shaper != nil }

// Close releases the font face. The cache must not be used afterwards.
func (g *GlyphCache) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.masks.Clear()
	return g.face.Close()
}

// DrawText blends text into dst with its line's top-left corner at (x, y).
// Only pixels inside dst.Clip are written.
func (g *GlyphCache) DrawText(dst ink.GlyphTarget, x, y int, s string, c ink.Color) {
	if s == "" || c.A == 0 || dst.Stride <= 0 {
		return
	}
	clip := dst.Clip.Intersect(image.Rect(0, 0, dst.Stride, dst.Height))
	if clip.Empty() {
		return
	}
	s = norm.NFC.String(s)

	g.mu.Lock()
	defer g.mu.Unlock()

	dot := fixed.I(x)
	baseline := y + g.ascent
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			dot += g.face.Kern(prev, r)
		}
		gl := g.lookup(r)
		if gl.mask != nil {
			blit(dst, clip, gl.mask, image.Pt(dot.Round(), baseline), c)
		}
		dot += gl.advance
		prev = r
	}
}

// MeasureText returns the horizontal advance of s in pixels.
func (g *GlyphCache) MeasureText(s string) int {
	if s == "" {
		return 0
	}
	s = norm.NFC.String(s)
	if g.shaper != nil {
		return g.shaper.advance(s).Round()
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return font.MeasureString(g.face, s).Round()
}

// lookup returns the cached mask for r, rasterizing it on a miss.
// The caller holds g.mu.
func (g *GlyphCache) lookup(r rune) *glyph {
	return g.masks.GetOrCreate(r, func() *glyph { return g.rasterize(r) })
}

func (g *GlyphCache) rasterize(r rune) *glyph {
	dr, mask, maskp, adv, ok := g.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		adv, _ = g.face.GlyphAdvance(r)
		return &glyph{advance: adv}
	}
	if dr.Empty() {
		return &glyph{advance: adv}
	}
	// The face reuses its mask buffer on every call.
	a := image.NewAlpha(dr)
	draw.Draw(a, dr, mask, maskp, draw.Src)
	return &glyph{mask: a, advance: adv}
}

// blit blends c, scaled by the coverage of m, into dst with the mask origin
// at the pixel at.
func blit(dst ink.GlyphTarget, clip image.Rectangle, m *image.Alpha, at image.Point, c ink.Color) {
	r := m.Rect.Add(at).Intersect(clip)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := py * dst.Stride * ink.BytesPerPixel
		for px := r.Min.X; px < r.Max.X; px++ {
			cov := m.AlphaAt(px-at.X, py-at.Y).A
			if cov == 0 {
				continue
			}
			off := row + px*ink.BytesPerPixel
			if off+ink.BytesPerPixel > len(dst.Pix) {
				return
			}
			blend.SourceOver(dst.Pix[off:off+ink.BytesPerPixel], dst.Format, blend.Coverage(c, cov))
		}
	}
}

func slogger() *slog.Logger { return ink.Logger() }
