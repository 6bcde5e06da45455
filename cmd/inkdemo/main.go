// Command inkdemo renders a scene file, or a built-in demo, to a PNG image.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/scene"
	"github.com/gogpu/ink/surface"
	"github.com/gogpu/ink/text"
)

func main() {
	var (
		width     = flag.Int("width", 800, "image width (built-in demo)")
		height    = flag.Int("height", 600, "image height (built-in demo)")
		sceneFile = flag.String("scene", "", "YAML scene file to render instead of the built-in demo")
		output    = flag.String("output", "demo.png", "output file")
		verbose   = flag.Bool("v", false, "log pipeline activity")
	)
	flag.Parse()

	if *verbose {
		ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	s, err := render(*sceneFile, *width, *height)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := s.PeekPixels().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %s backend)\n", *output, s.Width(), s.Height(), s.Backend().Name())
}

func render(sceneFile string, w, h int) (*surface.Surface, error) {
	if sceneFile != "" {
		return renderScene(sceneFile)
	}

	glyphs, err := text.NewDefault(text.WithSize(18))
	if err != nil {
		return nil, err
	}
	s := surface.MakeAuto(w, h, surface.WithGlyphRenderer(glyphs))
	if !s.Valid() {
		return nil, fmt.Errorf("invalid size %dx%d", w, h)
	}

	badge := makeBadge(glyphs)

	s.BeginFrame()
	c := s.Canvas()
	drawGradientBackground(c, w, h)
	drawShapesDemo(c)
	drawClipDemo(c)
	drawLinesDemo(c)
	drawTextDemo(c, glyphs)
	c.DrawImage(badge, float32(w-badge.Width()-20), float32(h-badge.Height()-20))
	s.EndFrame()
	s.Flush()
	return s, nil
}

func renderScene(path string) (*surface.Surface, error) {
	sc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	glyphs, err := sc.LoadGlyphs()
	if err != nil {
		return nil, err
	}
	s := sc.NewSurface(surface.WithGlyphRenderer(glyphs))
	if err := sc.Render(s); err != nil {
		return nil, err
	}
	return s, nil
}

func drawGradientBackground(c *surface.Canvas, w, h int) {
	// Gradient background (simulated with rectangles)
	steps := 100
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		col := ink.RGB(uint8(255*(0.1+t*0.4)), uint8(255*(0.2+t*0.3)), uint8(255*(0.4+t*0.2)))
		y := float32(float64(h) * t)
		c.FillRect(ink.R(0, y, float32(w), float32(h)/float32(steps)+1), col)
	}
}

func drawShapesDemo(c *surface.Canvas) {
	// Overlapping translucent squares
	c.FillRect(ink.R(90, 90, 120, 120), ink.RGBA(255, 76, 76, 204))
	c.FillRect(ink.R(140, 90, 120, 120), ink.RGBA(76, 255, 76, 204))
	c.FillRect(ink.R(115, 140, 120, 120), ink.RGBA(76, 76, 255, 204))

	// Stroked shapes
	c.FillRect(ink.R(350, 100, 120, 80), ink.RGB(255, 204, 0))
	c.StrokeRect(ink.R(350, 100, 120, 80), ink.White, 4)
}

func drawClipDemo(c *surface.Canvas) {
	c.Save()
	c.ClipRect(ink.R(520, 90, 160, 120))
	for i := 0; i < 12; i++ {
		x := float32(500 + i*20)
		c.DrawLine(ink.Pt(x, 80), ink.Pt(x+60, 220), ink.RGB(255, 255, uint8(i*20)), 3)
	}
	c.Restore()
	c.StrokeRect(ink.R(520, 90, 160, 120), ink.Black, 1)
}

func drawLinesDemo(c *surface.Canvas) {
	// Polygon star
	points := 5
	outerR := 60.0
	innerR := 30.0
	pts := make([]ink.Point, 0, points*2+1)
	for i := 0; i <= points*2; i++ {
		angle := float64(i) * math.Pi / float64(points)
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		pts = append(pts, ink.Pt(
			float32(550+r*math.Cos(angle-math.Pi/2)),
			float32(400+r*math.Sin(angle-math.Pi/2))))
	}
	c.DrawPolyline(pts, ink.RGB(255, 255, 0), 2)

	// Sine wave
	wave := make([]ink.Point, 0, 61)
	for i := 0; i <= 60; i++ {
		x := 150 + float64(i)*5
		wave = append(wave, ink.Pt(float32(x), float32(400+40*math.Sin(float64(i)/6))))
	}
	c.DrawPolyline(wave, ink.RGB(255, 128, 0), 4)
}

func drawTextDemo(c *surface.Canvas, g *text.GlyphCache) {
	const msg = "ink: deferred 2D drawing"
	y := float32(500)
	c.FillRect(ink.R(40, y-6, float32(g.MeasureText(msg)+20), float32(g.LineHeight()+12)), ink.RGBA(0, 0, 0, 128))
	c.DrawText(ink.Pt(50, y), msg, ink.White)
}

// makeBadge draws a small image on its own surface and returns its snapshot.
func makeBadge(g *text.GlyphCache) *ink.Image {
	const label = "OK"
	w := g.MeasureText(label) + 16
	h := g.LineHeight() + 8
	s := surface.MakeRaster(w, h, surface.WithGlyphRenderer(g))
	s.BeginFrame()
	c := s.Canvas()
	c.FillRect(ink.R(0, 0, float32(w), float32(h)), ink.RGB(40, 160, 80))
	c.StrokeRect(ink.R(0, 0, float32(w), float32(h)), ink.White, 2)
	c.DrawText(ink.Pt(8, 4), label, ink.White)
	s.EndFrame()
	s.Flush()
	return s.MakeSnapshot()
}
