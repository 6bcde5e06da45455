package scene

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ink"
)

// Color is an ink.Color read from YAML. It accepts a hex string
// ("#rgb", "#rrggbb", "#rrggbbaa"), a color name, or a list of three or four
// channel values.
type Color ink.Color

var namedColors = map[string]ink.Color{
	"black":       ink.Black,
	"white":       ink.White,
	"red":         ink.Red,
	"green":       ink.Green,
	"blue":        ink.Blue,
	"transparent": ink.Transparent,
	"gray":        ink.RGB(128, 128, 128),
	"yellow":      ink.RGB(255, 255, 0),
	"cyan":        ink.RGB(0, 255, 255),
	"magenta":     ink.RGB(255, 0, 255),
	"orange":      ink.RGB(255, 165, 0),
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := ParseColor(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*c = Color(v)
		return nil
	case yaml.SequenceNode:
		var ch []uint8
		if err := n.Decode(&ch); err != nil {
			return err
		}
		switch len(ch) {
		case 3:
			*c = Color(ink.RGB(ch[0], ch[1], ch[2]))
		case 4:
			*c = Color(ink.RGBA(ch[0], ch[1], ch[2], ch[3]))
		default:
			return fmt.Errorf("line %d: color needs 3 or 4 channels, got %d", n.Line, len(ch))
		}
		return nil
	default:
		return fmt.Errorf("line %d: invalid color", n.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return ink.Color(c).String(), nil
}

// ParseColor parses a hex color or a color name.
func ParseColor(s string) (ink.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return ink.Color{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return ink.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ink.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return ink.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
