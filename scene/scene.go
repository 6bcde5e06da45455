package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ink"
)

// ErrInvalidScene is returned when a scene document is well-formed YAML but
// does not describe a drawable scene.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Operation names.
const (
	OpFillRect   = "fill_rect"
	OpStrokeRect = "stroke_rect"
	OpLine       = "line"
	OpPolyline   = "polyline"
	OpText       = "text"
	OpImage      = "image"
	OpSave       = "save"
	OpRestore    = "restore"
	OpClipRect   = "clip_rect"
)

// Scene is a drawing described by a YAML document.
type Scene struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Format     string  `yaml:"format,omitempty"`
	Background *Color  `yaml:"background,omitempty"`
	Font       Font    `yaml:"font,omitempty"`
	Layers     []Layer `yaml:"layers,omitempty"`
	Ops        []Op    `yaml:"ops"`

	// dir resolves relative font paths of scenes read with Load.
	dir string
}

// Font selects the font used for text operations. An empty Path selects the
// built-in font.
type Font struct {
	Path string  `yaml:"path,omitempty"`
	Size float64 `yaml:"size,omitempty"`
}

// Layer is a named offscreen drawing. Width and Height default to the scene
// dimensions.
type Layer struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Ops    []Op   `yaml:"ops"`
}

// Op is one canvas call. Color defaults to white. Which fields apply
// depends on the operation:
//
//	fill_rect, clip_rect   rect, color
//	stroke_rect            rect, color, width
//	line                   p1, p2, color, width
//	polyline               points, color, width
//	text                   at, text, color
//	image                  from, at
//	save, restore          (none)
type Op struct {
	Op     string      `yaml:"op"`
	Rect   []float32   `yaml:"rect,omitempty"`
	Color  *Color      `yaml:"color,omitempty"`
	Width  float32     `yaml:"width,omitempty"`
	P1     []float32   `yaml:"p1,omitempty"`
	P2     []float32   `yaml:"p2,omitempty"`
	Points [][]float32 `yaml:"points,omitempty"`
	At     []float32   `yaml:"at,omitempty"`
	Text   string      `yaml:"text,omitempty"`
	From   string      `yaml:"from,omitempty"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	// #nosec G304 -- Scene file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: failed to read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.dir = filepath.Dir(path)
	return sc, nil
}

// Parse decodes and validates a scene document. Unknown fields are errors.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scene
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScene)
		}
		return nil, fmt.Errorf("scene: failed to parse: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Marshal encodes the scene as YAML.
func (sc *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(sc)
}

// PixelFormat returns the pixel format named by Format.
func (sc *Scene) PixelFormat() ink.PixelFormat {
	if sc.Format == "rgba" {
		return ink.RGBA8888
	}
	return ink.BGRA8888
}

// Validate checks dimensions, operation arguments and layer references.
// A layer may only place layers defined before it.
func (sc *Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScene, sc.Width, sc.Height)
	}
	switch sc.Format {
	case "", "rgba", "bgra":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidScene, sc.Format)
	}

	defined := make(map[string]bool, len(sc.Layers))
	for i, l := range sc.Layers {
		if l.Name == "" {
			return fmt.Errorf("%w: layers[%d]: missing name", ErrInvalidScene, i)
		}
		if defined[l.Name] {
			return fmt.Errorf("%w: layers[%d]: duplicate name %q", ErrInvalidScene, i, l.Name)
		}
		if l.Width < 0 || l.Height < 0 {
			return fmt.Errorf("%w: layer %q: size %dx%d", ErrInvalidScene, l.Name, l.Width, l.Height)
		}
		if err := validateOps(l.Ops, defined); err != nil {
			return fmt.Errorf("%w: layer %q: %w", ErrInvalidScene, l.Name, err)
		}
		defined[l.Name] = true
	}
	if err := validateOps(sc.Ops, defined); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return nil
}

func validateOps(ops []Op, layers map[string]bool) error {
	for i, op := range ops {
		if err := op.validate(layers); err != nil {
			return fmt.Errorf("ops[%d] (%s): %w", i, op.Op, err)
		}
	}
	return nil
}

func (op *Op) validate(layers map[string]bool) error {
	switch op.Op {
	case OpFillRect, OpStrokeRect, OpClipRect:
		return wantLen("rect", op.Rect, 4)
	case OpLine:
		if err := wantLen("p1", op.P1, 2); err != nil {
			return err
		}
		return wantLen("p2", op.P2, 2)
	case OpPolyline:
		for i, p := range op.Points {
			if err := wantLen(fmt.Sprintf("points[%d]", i), p, 2); err != nil {
				return err
			}
		}
		return nil
	case OpText:
		return wantLen("at", op.At, 2)
	case OpImage:
		if !layers[op.From] {
			return fmt.Errorf("unknown layer %q", op.From)
		}
		return wantLen("at", op.At, 2)
	case OpSave, OpRestore:
		return nil
	case "":
		return errors.New("missing op")
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
}

func wantLen(field string, v []float32, n int) error {
	if len(v) != n {
		return fmt.Errorf("%s needs %d numbers, got %d", field, n, len(v))
	}
	return nil
}

func (op *Op) rect() ink.Rect {
	return ink.R(op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3])
}

func (op *Op) color() ink.Color {
	if op.Color == nil {
		return ink.White
	}
	return ink.Color(*op.Color)
}

func (op *Op) points() []ink.Point {
	pts := make([]ink.Point, len(op.Points))
	for i, p := range op.Points {
		pts[i] = ink.Pt(p[0], p[1])
	}
	return pts
}

func point(v []float32) ink.Point { return ink.Pt(v[0], v[1]) }

func slogger() *slog.Logger { return ink.Logger() }
