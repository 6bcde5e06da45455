package text

import "golang.org/x/image/font"

// Hinting specifies the font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical snaps vertical metrics to the pixel grid.
	HintingVertical
	// HintingFull snaps both axes.
	HintingFull
)

// String returns the string representation of a Hinting mode.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// DefaultSize is the font size, in pixels, used when WithSize is not given.
const DefaultSize = 14

// DefaultCacheLimit is the number of glyph masks kept by default.
const DefaultCacheLimit = 512

// Option configures a GlyphCache.
type Option func(*config)

type config struct {
	size       float64
	cacheLimit int
	hinting    Hinting
	language   string
}

func defaultConfig() config {
	return config{
		size:       DefaultSize,
		cacheLimit: DefaultCacheLimit,
		hinting:    HintingFull,
		language:   "en",
	}
}

// WithSize sets the font size in pixels. Non-positive sizes are ignored.
func WithSize(px float64) Option {
	return func(c *config) {
		if px > 0 {
			c.size = px
		}
	}
}

// WithCacheLimit sets the maximum number of cached glyph masks.
// A value of 0 disables the limit.
func WithCacheLimit(n int) Option {
	return func(c *config) {
		c.cacheLimit = max(n, 0)
	}
}

// WithHinting sets the hinting mode.
func WithHinting(h Hinting) Option {
	return func(c *config) {
		c.hinting = h
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "de").
func WithLanguage(lang string) Option {
	return func(c *config) {
		c.language = lang
	}
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}
