package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/orbits-viz/orbits/internal/game"
	"github.com/orbits-viz/orbits/internal/palette"
	"golang.org/x/image/font/basicfont"
)

// fanStepDeg is the angular step between rim vertices of a fan.
const fanStepDeg = 5

// Painter draws scene primitives. Coordinates have their origin at the
// bottom-left of the target image with y pointing up; Painter flips them to
// ebiten's top-left origin.
type Painter struct {
	pixel  *ebiten.Image // white, used as the source for gradient fans
	face   *text.GoXFace
	textOp text.DrawOptions
}

// NewPainter creates a painter with the built-in 7x13 font.
func NewPainter() *Painter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Painter{
		// Sampling the center texel avoids bleeding at the image edge.
		pixel: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

func flipY(dst *ebiten.Image, y float64) float64 {
	return float64(dst.Bounds().Dy()) - y
}

// Disc fills a circle.
func (p *Painter) Disc(dst *ebiten.Image, x, y, r float64, c palette.RGB) {
	p.Glow(dst, x, y, r, c, 1)
}

// Glow fills a translucent circle.
func (p *Painter) Glow(dst *ebiten.Image, x, y, r float64, c palette.RGB, alpha float64) {
	vector.DrawFilledCircle(dst, float32(x), float32(flipY(dst, y)), float32(r), c.NRGBA(alpha), true)
}

// Ring strokes a one-pixel circle outline.
func (p *Painter) Ring(dst *ebiten.Image, x, y, r float64, c palette.RGB) {
	vector.StrokeCircle(dst, float32(x), float32(flipY(dst, y)), float32(r), 1, c.NRGBA(1), true)
}

// RadialFan fills a circle shading from inner at the center to outer at the rim.
func (p *Painter) RadialFan(dst *ebiten.Image, x, y, r float64, inner, outer palette.RGB) {
	const rim = 360/fanStepDeg + 1
	fy := flipY(dst, y)

	vertices := make([]ebiten.Vertex, 0, rim+1)
	vertices = append(vertices, fanVertex(x, fy, inner))
	for i := 0; i < rim; i++ {
		rad := float64(i*fanStepDeg) * math.Pi / 180
		// Screen y points down, so subtract to keep angles counterclockwise.
		vertices = append(vertices, fanVertex(x+math.Cos(rad)*r, fy-math.Sin(rad)*r, outer))
	}

	indices := make([]uint16, 0, (rim-1)*3)
	for i := 1; i < rim; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{}
	dst.DrawTriangles(vertices, indices, p.pixel, op)
}

func fanVertex(x, y float64, c palette.RGB) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: 1,
	}
}

// Sun draws a yellow-to-orange disc wrapped in a translucent glow.
func (p *Painter) Sun(dst *ebiten.Image, x, y, r, glow float64) {
	p.RadialFan(dst, x, y, r, palette.SunCore, palette.SunRim)
	p.Glow(dst, x, y, r+glow, palette.SunGlow, 0.3)
}

// Stars plots each star as a square point of the given size.
func (p *Painter) Stars(dst *ebiten.Image, stars []game.Star, size float64) {
	white := palette.White.NRGBA(1)
	for _, s := range stars {
		x := s.X - size/2
		y := flipY(dst, s.Y) - size/2
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(size), float32(size), white, false)
	}
}

// Text draws s with its baseline at y.
func (p *Painter) Text(dst *ebiten.Image, x, y float64, s string, c palette.RGB) {
	m := p.face.Metrics()
	p.textOp.GeoM.Reset()
	p.textOp.GeoM.Translate(x, flipY(dst, y)-m.HAscent)
	p.textOp.ColorScale.Reset()
	p.textOp.ColorScale.ScaleWithColor(c.NRGBA(1))
	text.Draw(dst, s, p.face, &p.textOp)
}

// TextWidth returns the advance of s in pixels.
func (p *Painter) TextWidth(s string) float64 {
	return text.Advance(s, p.face)
}
