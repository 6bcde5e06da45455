package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaper measures text with HarfBuzz shaping via go-text/typesetting.
//
// The parsed font is read-only and shared; a lightweight face is created per
// call because go-text faces are not safe for concurrent use.
type shaper struct {
	mu   sync.Mutex
	hb   shaping.HarfbuzzShaper
	font *gotext.Font
	size fixed.Int26_6
	lang language.Language
}

func newShaper(data []byte, cfg config) (*shaper, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &shaper{
		font: face.Font,
		size: floatToFixed(cfg.size),
		lang: language.NewLanguage(cfg.language),
	}, nil
}

// advance returns the total horizontal advance of s, left to right.
func (s *shaper) advance(text string) fixed.Int26_6 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(s.font),
		Size:      s.size,
		Script:    detectScript(runes),
		Language:  s.lang,
	}

	s.mu.Lock()
	out := s.hb.Shape(input)
	s.mu.Unlock()
	return out.Advance
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
